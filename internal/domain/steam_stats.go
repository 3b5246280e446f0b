package domain

import "time"

type ReviewSummary struct {
	Total     int    `json:"total"`
	Positive  int    `json:"positive"`
	Negative  int    `json:"negative"`
	Score     int    `json:"score"`
	ScoreDesc string `json:"scoreDesc"`
}

type AppDetails struct {
	Name        string
	HeaderImage string
	Price       string
	IsFree      bool
}

type SteamStats struct {
	AppID          string        `json:"appId"`
	CurrentPlayers *int          `json:"currentPlayers"`
	Reviews        ReviewSummary `json:"reviews"`
	Name           string        `json:"name"`
	HeaderImage    *string       `json:"headerImage"`
	Price          *string       `json:"price"`
	FetchedAt      time.Time     `json:"fetchedAt"`
}

type SteamReview struct {
	ID            string `json:"id"`
	Positive      bool   `json:"positive"`
	Text          string `json:"text"`
	HoursPlayed   int    `json:"hoursPlayed"`
	HoursAtReview int    `json:"hoursAtReview"`
	Posted        int64  `json:"posted"`
	Updated       int64  `json:"updated"`
	VotesUp       int    `json:"votesUp"`
	VotesFunny    int    `json:"votesFunny"`
	SteamDeck     bool   `json:"steamDeck"`
	EarlyAccess   bool   `json:"earlyAccess"`
	Language      string `json:"language"`
}

// ReviewPageSize é o tamanho de página pedido à Steam; uma página cheia indica que há mais
const ReviewPageSize = 20

type ReviewPage struct {
	Reviews []*SteamReview `json:"reviews"`
	Cursor  *string        `json:"cursor"`
	HasMore bool           `json:"hasMore"`
}
