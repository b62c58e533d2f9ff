package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Reservation is written once and never updated. A room can be booked at
// most once per check-in date; the composite unique index enforces it.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestID uint   `gorm:"not null;index" json:"guest_id"`
	Guest   *Guest `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"guest,omitempty"`

	RoomID uint  `gorm:"not null;uniqueIndex:idx_reservation_room_check_in,priority:1" json:"room_id"`
	Room   *Room `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"room,omitempty"`

	CheckInDate  datatypes.Date `gorm:"not null;uniqueIndex:idx_reservation_room_check_in,priority:2" json:"check_in_date"`
	CheckOutDate datatypes.Date `gorm:"not null" json:"check_out_date"`

	PromotionID *uint      `gorm:"index" json:"promotion_id"`
	Promotion   *Promotion `gorm:"foreignKey:PromotionID;constraint:OnDelete:SET NULL" json:"promotion,omitempty"`

	// Terms of the promotion as they were when the booking was made.
	PromotionSnapshot datatypes.JSON `json:"promotion_snapshot,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// PromotionSnapshot is the document stored in Reservation.PromotionSnapshot.
type PromotionSnapshot struct {
	PromotionID        uint            `json:"promotion_id"`
	Code               string          `json:"code"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	StartDate          string          `json:"start_date"`
	EndDate            string          `json:"end_date"`
	BasePrice          decimal.Decimal `json:"base_price"`
	NightlyPrice       decimal.Decimal `json:"nightly_price"`
}
