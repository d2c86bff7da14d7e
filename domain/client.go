package domain

import (
	"time"
)

// CREATE TABLE public.clients (
//     id                          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     client_id                   TEXT NOT NULL,
//     client_country              TEXT,
//     client_nationality          TEXT,
//     client_city                 TEXT,
//     client_gender               TEXT,
//     client_segment              TEXT,
//     client_premium_status       TEXT,
//     client_is_phone_contactable             BOOLEAN,
//     client_is_email_contactable             BOOLEAN,
//     client_is_instant_messaging_contactable BOOLEAN,
//     client_is_contactable                   BOOLEAN,
//     created_at                  TIMESTAMPTZ DEFAULT NOW()
// );

type Client struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	ClientID      string `gorm:"column:client_id;index;not null" json:"client_id"`
	Country       string `gorm:"column:client_country;type:text" json:"client_country"`
	Nationality   string `gorm:"column:client_nationality;type:text" json:"client_nationality"`
	City          string `gorm:"column:client_city;type:text" json:"client_city"`
	Gender        string `gorm:"column:client_gender;type:text" json:"client_gender"`
	Segment       string `gorm:"column:client_segment;type:text" json:"client_segment"`
	PremiumStatus string `gorm:"column:client_premium_status;type:text" json:"client_premium_status"`

	PhoneContactable            bool `gorm:"column:client_is_phone_contactable" json:"client_is_phone_contactable"`
	EmailContactable            bool `gorm:"column:client_is_email_contactable" json:"client_is_email_contactable"`
	InstantMessagingContactable bool `gorm:"column:client_is_instant_messaging_contactable" json:"client_is_instant_messaging_contactable"`
	Contactable                 bool `gorm:"column:client_is_contactable" json:"client_is_contactable"`

	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
}

func (Client) TableName() string {
	return "clients"
}
