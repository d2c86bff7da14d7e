package domain

// UpliftPrediction is a precomputed uplift score for inviting a client to an
// action. Rows are produced offline and ingested, never computed here.
type UpliftPrediction struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ActionID   string  `gorm:"column:action_id;index;not null" json:"action_id"`
	ClientID   string  `gorm:"column:client_id;not null" json:"client_id"`
	UpliftPred float64 `gorm:"column:uplift_pred;not null" json:"uplift_pred"`
}

func (UpliftPrediction) TableName() string {
	return "uplift_predictions"
}

// Invitee is one suggested client for an action.
type Invitee struct {
	ClientID   string  `json:"client_id"`
	UpliftPred float64 `json:"uplift_pred"`
}
