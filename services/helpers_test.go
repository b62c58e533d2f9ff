package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-reservations/config"
	"hotel-reservations/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDatabase("sqlite", filepath.Join(t.TempDir(), "hotel.db"), "silent")
	if err != nil {
		t.Fatalf("OpenDatabase: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

// clockAt pins "now" to mid-morning of the given day.
func clockAt(t *testing.T, s string) Clock {
	now := day(t, s).Add(10 * time.Hour)
	return func() time.Time { return now }
}

func staffWith(perms ...string) Identity {
	id := Identity{AccountID: 9000, Username: "staff", IsStaff: true, Permissions: map[string]bool{}}
	for _, p := range perms {
		id.Permissions[p] = true
	}
	return id
}

func mustCreate(t *testing.T, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func seedAccount(t *testing.T, db *gorm.DB, username string) *models.Account {
	t.Helper()
	a := &models.Account{Username: username, PasswordHash: "x"}
	mustCreate(t, db, a)
	return a
}

// seedGuestAccount creates an account with a guest profile and returns the caller identity.
func seedGuestAccount(t *testing.T, db *gorm.DB, username string) (Identity, *models.Guest) {
	t.Helper()
	a := seedAccount(t, db, username)
	g := &models.Guest{
		AccountID:   &a.ID,
		FirstName:   "Test",
		LastName:    username,
		Email:       username + "@example.com",
		PhoneNumber: "555" + username,
	}
	mustCreate(t, db, g)
	return Identity{AccountID: a.ID, Username: username}, g
}

func seedRoom(t *testing.T, db *gorm.DB, number, price string, promoID *uint) *models.Room {
	t.Helper()
	r := &models.Room{
		RoomNumber:    number,
		RoomType:      "Double",
		PricePerNight: decimal.RequireFromString(price),
		Available:     true,
		PromotionID:   promoID,
	}
	mustCreate(t, db, r)
	return r
}

func seedPromotion(t *testing.T, db *gorm.DB, code, pct, start, end string) *models.Promotion {
	t.Helper()
	p := &models.Promotion{
		Code:               code,
		DiscountPercentage: decimal.RequireFromString(pct),
		StartDate:          datatypes.Date(day(t, start)),
		EndDate:            datatypes.Date(day(t, end)),
	}
	mustCreate(t, db, p)
	return p
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}

func asValidation(t *testing.T, err error) *ValidationError {
	t.Helper()
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("err = %v (%T), want *ValidationError", err, err)
	}
	return verr
}
