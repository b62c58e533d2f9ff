package models

import "time"

type Role struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"size:100;uniqueIndex" json:"name"`
	Description string           `gorm:"size:255" json:"description"`
	Permissions []RolePermission `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"permissions"`
	CreatedAt   time.Time        `json:"created_at"`
}

// RoleMember links an account to a role.
type RoleMember struct {
	RoleID    uint `gorm:"primaryKey" json:"role_id"`
	AccountID uint `gorm:"primaryKey;index" json:"account_id"`
}
