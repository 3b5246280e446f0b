package sheetdata

import (
	"strings"

	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
)

const (
	supportedGameColumns = 11
	placeholderMarker    = "placeholder"
)

// ParseQuickLinks lê linhas "nome, url, tag". Vírgulas no meio pertencem à URL.
func ParseQuickLinks(rows [][]string) []*domain.QuickLink {
	links := make([]*domain.QuickLink, 0, len(rows))
	for _, row := range dataRows(rows) {
		if len(row) < 3 {
			continue
		}

		link := &domain.QuickLink{
			Name: strings.TrimSpace(row[0]),
			URL:  strings.TrimSpace(strings.Join(row[1:len(row)-1], ",")),
			Tag:  strings.TrimSpace(row[len(row)-1]),
		}
		if link.Name == "" || link.URL == "" {
			continue
		}
		links = append(links, link)
	}
	return links
}

// ParseAdminUsers lê linhas "nome, email"
func ParseAdminUsers(rows [][]string) []*domain.AdminUser {
	users := make([]*domain.AdminUser, 0, len(rows))
	for _, row := range dataRows(rows) {
		if len(row) < 2 {
			continue
		}

		user := &domain.AdminUser{
			Name:  strings.TrimSpace(row[0]),
			Email: strings.TrimSpace(strings.Join(row[1:], ",")),
		}
		if user.Name == "" || user.Email == "" {
			continue
		}
		users = append(users, user)
	}
	return users
}

// ParseAllowedEmails usa a segunda coluna, normalizada para minúsculas
func ParseAllowedEmails(rows [][]string) []string {
	emails := make([]string, 0, len(rows))
	for _, row := range dataRows(rows) {
		if len(row) < 2 {
			continue
		}
		email := domain.NormalizeEmail(row[1])
		if !strings.Contains(email, "@") {
			continue
		}
		emails = append(emails, email)
	}
	return emails
}

func ParseSupportedGames(rows [][]string) []*domain.SupportedGame {
	games := make([]*domain.SupportedGame, 0, len(rows))
	for _, row := range dataRows(rows) {
		if len(row) < supportedGameColumns {
			continue
		}

		game := &domain.SupportedGame{
			Name:            row[0],
			HeaderURL:       row[1],
			BuyLink:         row[2],
			GameID:          row[3],
			GuideURL:        row[4],
			RedditPosts:     row[5],
			Website:         row[6],
			TwitterAccounts: row[7],
			Subreddit:       row[8],
			RedditUser:      row[9],
			Discord:         row[10],
		}
		if game.Name == "" {
			continue
		}
		games = append(games, game)
	}
	return games
}

// ParseLocalization devolve as linhas que ainda têm "placeholder" em alguma coluna
// além da chave. A primeira coluna do cabeçalho é a chave.
func ParseLocalization(source string, rows [][]string) []*domain.LocalizationRow {
	result := make([]*domain.LocalizationRow, 0)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return result
	}

	headers := rows[0]
	keyColumn := headers[0]

	for _, row := range rows[1:] {
		values := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				values[header] = row[i]
			} else {
				values[header] = ""
			}
		}

		hasPlaceholder := false
		for i, header := range headers {
			if i == 0 || header == keyColumn {
				continue
			}
			if strings.Contains(strings.ToLower(values[header]), placeholderMarker) {
				hasPlaceholder = true
				break
			}
		}
		if !hasPlaceholder {
			continue
		}

		result = append(result, &domain.LocalizationRow{
			Source: source,
			Key:    values[keyColumn],
			Values: values,
		})
	}

	return result
}

// dataRows ignora o cabeçalho
func dataRows(rows [][]string) [][]string {
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}
