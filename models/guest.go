package models

import (
	"time"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Nullable so staff can register walk-in guests; unique so an account has at most one profile.
	AccountID *uint    `gorm:"uniqueIndex" json:"account_id"`
	Account   *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`

	FirstName   string `gorm:"size:50;not null" json:"first_name"`
	LastName    string `gorm:"size:50;not null" json:"last_name"`
	Email       string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	PhoneNumber string `gorm:"size:15;uniqueIndex;not null" json:"phone_number"`
	Address     string `gorm:"type:text" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

