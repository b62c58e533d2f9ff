package models

// Permission codenames checked by the service layer.
const (
	PermAddRoom         = "add_room"
	PermViewRoom        = "view_room"
	PermAddGuest        = "add_guest"
	PermViewGuest       = "view_guest"
	PermViewReservation = "view_reservation"
	PermAddPromotion    = "add_promotion"
	PermViewPromotion   = "view_promotion"
)

// AllPermissions lists every codename, in the order they are seeded.
var AllPermissions = []string{
	PermAddRoom,
	PermViewRoom,
	PermAddGuest,
	PermViewGuest,
	PermViewReservation,
	PermAddPromotion,
	PermViewPromotion,
}

// RolePermission grants one codename to a role.
type RolePermission struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	RoleID     uint   `gorm:"not null;uniqueIndex:idx_role_permission" json:"-"`
	Permission string `gorm:"size:50;not null;uniqueIndex:idx_role_permission" json:"permission"`
}
