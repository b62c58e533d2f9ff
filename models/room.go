package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Room struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	RoomNumber    string          `gorm:"size:5;uniqueIndex;not null" json:"room_number"`
	RoomType      string          `gorm:"size:50;not null" json:"room_type"`
	Description   string          `gorm:"type:text" json:"description"`
	PricePerNight decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"price_per_night"`

	// No gorm default here: a default tag would turn an explicit false into true on insert.
	Available bool `gorm:"not null" json:"available"`

	PromotionID *uint      `gorm:"index" json:"promotion_id"`
	Promotion   *Promotion `gorm:"foreignKey:PromotionID;constraint:OnDelete:SET NULL" json:"promotion,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
