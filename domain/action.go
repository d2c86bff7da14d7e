package domain

import (
	"time"
)

// Action is one marketing action (event invitation) targeted at a client.
type Action struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ActionID      string    `gorm:"column:action_id;index;not null" json:"action_id"`
	ClientID      string    `gorm:"column:client_id;index;not null" json:"client_id"`
	ActionLabel   string    `gorm:"column:action_label;type:text" json:"action_label"`
	ActionChannel string    `gorm:"column:action_channel;type:text" json:"action_channel"`
	StartDate     time.Time `gorm:"column:action_start_date" json:"action_start_date"`
	EndDate       time.Time `gorm:"column:action_end_date" json:"action_end_date"`
	ClientPresent bool      `gorm:"column:client_is_present" json:"client_is_present"`
	ClientInvited bool      `gorm:"column:client_is_invited" json:"client_is_invited"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"-"`
}

func (Action) TableName() string {
	return "actions"
}
