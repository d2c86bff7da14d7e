package domain

// ClientRecommendation is one candidate client with its aggregate similarity
// score across all seed clients.
type ClientRecommendation struct {
	ClientID string `json:"client_id"`
	Score    int    `json:"score"`
}
