package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"hotel-reservations/models"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

type GuestInput struct {
	AccountID   *uint // staff only; self-service always uses the caller's account
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string
}

var guestUniqueFields = []uniqueField{
	{column: "email", field: "email", message: "Guest with this Email already exists."},
	{column: "phone_number", field: "phone_number", message: "Guest with this Phone number already exists."},
	{column: "account_id", field: "account_id", message: "Guest with this Account already exists."},
}

// ----------------------------------------------------
// CREATE (add_guest)
// ----------------------------------------------------
func (s *GuestService) Create(ctx context.Context, id Identity, in GuestInput) (*models.Guest, error) {
	log.Printf("➡️ GuestService.Create by=%q email=%q", id.Username, in.Email)

	if err := authorize(id, models.PermAddGuest); err != nil {
		return nil, err
	}

	var guest *models.Guest
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if in.AccountID != nil {
			var count int64
			if err := tx.Model(&models.Account{}).Where("id = ?", *in.AccountID).Count(&count).Error; err != nil {
				return fmt.Errorf("check account: %w", err)
			}
			if count == 0 {
				return NewFieldError("account_id", "Select a valid choice. That choice is not one of the available choices.")
			}
		}
		g, err := createGuest(tx, in)
		guest = g
		return err
	})
	if err != nil {
		log.Printf("⬅️ GuestService.Create error: %v", err)
		return nil, err
	}

	log.Printf("⬅️ GuestService.Create ok id=%d", guest.ID)
	return guest, nil
}

// CreateOwnProfile attaches a guest profile to the caller's own account.
func (s *GuestService) CreateOwnProfile(ctx context.Context, id Identity, in GuestInput) (*models.Guest, error) {
	log.Printf("➡️ GuestService.CreateOwnProfile account=%d", id.AccountID)

	if err := requireLogin(id); err != nil {
		return nil, err
	}
	accountID := id.AccountID
	in.AccountID = &accountID

	var guest *models.Guest
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g, err := createGuest(tx, in)
		guest = g
		return err
	})
	if err != nil {
		log.Printf("⬅️ GuestService.CreateOwnProfile error: %v", err)
		return nil, err
	}
	return guest, nil
}

// ----------------------------------------------------
// READ
// ----------------------------------------------------
func (s *GuestService) List(ctx context.Context, id Identity) ([]models.Guest, error) {
	if err := authorize(id, models.PermViewGuest); err != nil {
		return nil, err
	}
	var guests []models.Guest
	if err := s.DB.WithContext(ctx).Order("guests.id").Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) GetByID(ctx context.Context, id Identity, guestID uint) (*models.Guest, error) {
	if err := authorize(id, models.PermViewGuest); err != nil {
		return nil, err
	}
	var guest models.Guest
	if err := s.DB.WithContext(ctx).First(&guest, guestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load guest %d: %w", guestID, err)
	}
	return &guest, nil
}

// ForAccount returns the guest profile of an account, or ErrGuestProfileRequired.
func (s *GuestService) ForAccount(ctx context.Context, accountID uint) (*models.Guest, error) {
	return guestForAccount(s.DB.WithContext(ctx), accountID)
}

func guestForAccount(db *gorm.DB, accountID uint) (*models.Guest, error) {
	var guest models.Guest
	if err := db.Where("account_id = ?", accountID).First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestProfileRequired
		}
		return nil, fmt.Errorf("load guest for account %d: %w", accountID, err)
	}
	return &guest, nil
}

// createGuest validates in, checks the unique columns up front so every clash
// is reported at once, then inserts. Runs inside the caller's transaction.
func createGuest(tx *gorm.DB, in GuestInput) (*models.Guest, error) {
	verr := &ValidationError{}
	guest := models.Guest{
		AccountID:   in.AccountID,
		FirstName:   requireText(verr, "first_name", in.FirstName),
		LastName:    requireText(verr, "last_name", in.LastName),
		Email:       normalizeEmail(in.Email),
		PhoneNumber: requireText(verr, "phone_number", in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
	}
	if guest.Email == "" {
		verr.Add("email", "This field is required.")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	if err := checkGuestUnique(tx, &guest, verr); err != nil {
		return nil, err
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	if err := tx.Omit("Account").Create(&guest).Error; err != nil {
		return nil, translateConstraint(err, "create guest", guestUniqueFields)
	}
	return &guest, nil
}

type uniqueCheck struct {
	uniqueField
	value interface{}
}

func checkGuestUnique(tx *gorm.DB, g *models.Guest, verr *ValidationError) error {
	checks := []uniqueCheck{
		{guestUniqueFields[0], g.Email},
		{guestUniqueFields[1], g.PhoneNumber},
	}
	if g.AccountID != nil {
		checks = append(checks, uniqueCheck{guestUniqueFields[2], *g.AccountID})
	}

	for _, c := range checks {
		var count int64
		if err := tx.Model(&models.Guest{}).Where(c.column+" = ?", c.value).Count(&count).Error; err != nil {
			return fmt.Errorf("check guest %s: %w", c.column, err)
		}
		if count > 0 {
			verr.Add(c.field, c.message)
			verr.Conflict = true
		}
	}
	return nil
}
