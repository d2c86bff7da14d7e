package domain

import (
	"time"
)

type Transaction struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	TransactionID      string    `gorm:"column:transaction_id;index;not null" json:"transaction_id"`
	ClientID           string    `gorm:"column:client_id;index;not null" json:"client_id"`
	TransactionDate    time.Time `gorm:"column:transaction_date" json:"transaction_date"`
	GrossAmountEuro    float64   `gorm:"column:gross_amount_euro;type:numeric" json:"gross_amount_euro"`
	ProductCategory    string    `gorm:"column:product_category;type:text" json:"product_category"`
	ProductSubcategory string    `gorm:"column:product_subcategory;type:text" json:"product_subcategory"`
	ProductStyle       string    `gorm:"column:product_style;type:text" json:"product_style"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
