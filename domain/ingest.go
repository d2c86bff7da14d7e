package domain

import (
	"time"

	"gorm.io/datatypes"
)

// IngestEvent records one dataset load (directory reload or zip upload).
type IngestEvent struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	IngestID  string            `gorm:"column:ingest_id;not null" json:"ingest_id"`
	Source    string            `gorm:"column:source;not null" json:"source"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Context   datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
}

func (IngestEvent) TableName() string {
	return "ingest_events"
}

// IngestSummary is returned to the caller after a successful load.
type IngestSummary struct {
	IngestID          string `json:"ingest_id"`
	Source            string `json:"source"`
	Clients           int    `json:"clients"`
	Transactions      int    `json:"transactions"`
	Actions           int    `json:"actions"`
	UpliftPredictions int    `json:"uplift_predictions"`
}
