package steamdomain

// PlayerCountResponse representa ISteamUserStats/GetNumberOfCurrentPlayers
type PlayerCountResponse struct {
	Response struct {
		PlayerCount *int `json:"player_count"`
		Result      int  `json:"result"`
	} `json:"response"`
}

// AppReviewsResponse representa /appreviews/{appid}
type AppReviewsResponse struct {
	Success      int          `json:"success"`
	QuerySummary QuerySummary `json:"query_summary"`
	Reviews      []Review     `json:"reviews"`
	Cursor       string       `json:"cursor"`
}

type QuerySummary struct {
	NumReviews      int    `json:"num_reviews"`
	ReviewScore     int    `json:"review_score"`
	ReviewScoreDesc string `json:"review_score_desc"`
	TotalPositive   int    `json:"total_positive"`
	TotalNegative   int    `json:"total_negative"`
	TotalReviews    int    `json:"total_reviews"`
}

type Review struct {
	RecommendationID         string       `json:"recommendationid"`
	Author                   ReviewAuthor `json:"author"`
	Language                 string       `json:"language"`
	Review                   string       `json:"review"`
	TimestampCreated         int64        `json:"timestamp_created"`
	TimestampUpdated         int64        `json:"timestamp_updated"`
	VotedUp                  bool         `json:"voted_up"`
	VotesUp                  int          `json:"votes_up"`
	VotesFunny               int          `json:"votes_funny"`
	PrimarilySteamDeck       bool         `json:"primarily_steam_deck"`
	WrittenDuringEarlyAccess bool         `json:"written_during_early_access"`
}

type ReviewAuthor struct {
	SteamID          string `json:"steamid"`
	PlaytimeForever  int    `json:"playtime_forever"`
	PlaytimeAtReview int    `json:"playtime_at_review"`
}

// AppDetailsResponse representa /api/appdetails, indexado pelo appid
type AppDetailsResponse map[string]AppDetailsEntry

type AppDetailsEntry struct {
	Success bool    `json:"success"`
	Data    AppData `json:"data"`
}

type AppData struct {
	Name          string         `json:"name"`
	HeaderImage   string         `json:"header_image"`
	IsFree        bool           `json:"is_free"`
	PriceOverview *PriceOverview `json:"price_overview"`
}

type PriceOverview struct {
	Currency       string `json:"currency"`
	FinalFormatted string `json:"final_formatted"`
}
