package domain

type QuickLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Tag  string `json:"tag"`
}

type AdminUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SupportedGame struct {
	Name            string `json:"name"`
	HeaderURL       string `json:"headerUrl"`
	BuyLink         string `json:"buyLink"`
	GameID          string `json:"gameId"`
	GuideURL        string `json:"guideUrl"`
	RedditPosts     string `json:"redditPosts"`
	Website         string `json:"website"`
	TwitterAccounts string `json:"twitterAccounts"`
	Subreddit       string `json:"subreddit"`
	RedditUser      string `json:"redditUser"`
	Discord         string `json:"discord"`
}

type LocalizationSource struct {
	Name    string `json:"name"`
	CSVURL  string `json:"csvUrl"`
	EditURL string `json:"editUrl"`
}

// LocalizationRow é uma linha de tradução que ainda contém "placeholder" em algum idioma.
// Values guarda todas as colunas da planilha pelo nome do cabeçalho.
type LocalizationRow struct {
	Source string            `json:"source"`
	Key    string            `json:"key"`
	Values map[string]string `json:"values"`
}

type LocalizationReport struct {
	Rows    []*LocalizationRow    `json:"rows"`
	Sources []*LocalizationSource `json:"sources"`
}

// SpreadsheetLink aponta a página do painel para a planilha que a alimenta
type SpreadsheetLink struct {
	Path      string `json:"path"`
	SheetName string `json:"sheetName"`
	EditURL   string `json:"editUrl"`
}
