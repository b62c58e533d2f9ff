package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Promotion is a percentage discount valid from StartDate to EndDate, both inclusive.
type Promotion struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	Code               string          `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description        string          `gorm:"type:text" json:"description"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"discount_percentage"`
	StartDate          datatypes.Date  `gorm:"not null" json:"start_date"`
	EndDate            datatypes.Date  `gorm:"not null" json:"end_date"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
