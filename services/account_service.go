package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-reservations/models"
	"hotel-reservations/utils"
)

type AccountService struct {
	DB         *gorm.DB
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

func NewAccountService(db *gorm.DB, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AccountService {
	return &AccountService{DB: db, JWTSecret: jwtSecret, TokenTTL: tokenTTL, BcryptCost: bcryptCost}
}

type SignupInput struct {
	Username    string
	Password    string
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
}

// Session is what a client gets back after signup or login.
type Session struct {
	Account *models.Account   `json:"account"`
	Guest   *models.Guest     `json:"guest,omitempty"`
	Token   utils.AccessToken `json:"access_token"`
	Next    string            `json:"next"`
}

var accountUniqueFields = []uniqueField{
	{column: "username", field: "username", message: "A user with that username already exists."},
}

// ----------------------------------------------------
// SIGNUP: account + guest profile, all or nothing
// ----------------------------------------------------
func (s *AccountService) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	log.Printf("➡️ AccountService.Signup username=%q", in.Username)

	// Every problem is collected before anything is written.
	verr := &ValidationError{}
	username := requireText(verr, "username", in.Username)
	requireText(verr, "first_name", in.FirstName)
	requireText(verr, "last_name", in.LastName)
	phone := requireText(verr, "phone_number", in.PhoneNumber)
	email := normalizeEmail(in.Email)
	if email == "" {
		verr.Add("email", "This field is required.")
	}
	malformed := verr.HasErrors()

	// Hash outside the transaction; bcrypt is slow.
	hash, err := utils.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := models.Account{Username: username, PasswordHash: hash}
	var guest *models.Guest
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if username != "" {
			var count int64
			if err := tx.Model(&models.Account{}).Where("username = ?", username).Count(&count).Error; err != nil {
				return fmt.Errorf("check username: %w", err)
			}
			if count > 0 {
				verr.Add(accountUniqueFields[0].field, accountUniqueFields[0].message)
				verr.Conflict = true
			}
		}
		probe := models.Guest{Email: email, PhoneNumber: phone}
		if err := checkGuestUnique(tx, &probe, verr); err != nil {
			return err
		}
		if malformed {
			// Bad input is a 400 even when some values also clash.
			verr.Conflict = false
		}
		if err := verr.Err(); err != nil {
			return err
		}

		if err := tx.Create(&account).Error; err != nil {
			return translateConstraint(err, "create account", accountUniqueFields)
		}
		g, err := createGuest(tx, GuestInput{
			AccountID:   &account.ID,
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			Email:       in.Email,
			PhoneNumber: in.PhoneNumber,
			Address:     in.Address,
		})
		if err != nil {
			return err
		}
		guest = g
		return nil
	})
	if err != nil {
		log.Printf("⬅️ AccountService.Signup error: %v", err)
		return nil, err
	}

	// Signed in straight away, like any other login.
	session, err := s.issue(ctx, &account)
	if err != nil {
		return nil, err
	}
	session.Guest = guest

	log.Printf("⬅️ AccountService.Signup ok account=%d guest=%d", account.ID, guest.ID)
	return session, nil
}

// ----------------------------------------------------
// LOGIN
// ----------------------------------------------------
func (s *AccountService) Login(ctx context.Context, username, password string) (*Session, error) {
	log.Printf("➡️ AccountService.Login username=%q", username)

	var account models.Account
	err := s.DB.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load account: %w", err)
	}
	if !utils.VerifyPassword(account.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	session, err := s.issue(ctx, &account)
	if err != nil {
		return nil, err
	}
	if g, err := guestForAccount(s.DB.WithContext(ctx), account.ID); err == nil {
		session.Guest = g
	}
	log.Printf("⬅️ AccountService.Login ok account=%d", account.ID)
	return session, nil
}

func (s *AccountService) issue(ctx context.Context, account *models.Account) (*Session, error) {
	now := time.Now()
	if err := s.DB.WithContext(ctx).Model(account).Update("last_login_at", now).Error; err != nil {
		log.Printf("⚠️ AccountService: could not record last login for %d: %v", account.ID, err)
	}
	token, err := utils.NewAccessToken(s.JWTSecret, account.ID, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	id := Identity{AccountID: account.ID, IsStaff: account.IsStaff}
	return &Session{Account: account, Token: token, Next: id.LandingPath()}, nil
}

// ----------------------------------------------------
// IDENTITY
// ----------------------------------------------------

// Authenticate verifies a bearer token and loads the caller behind it.
func (s *AccountService) Authenticate(ctx context.Context, rawToken string) (Identity, error) {
	accountID, err := utils.ParseAccessToken(s.JWTSecret, rawToken)
	if err != nil {
		return Anonymous, ErrUnauthenticated
	}
	return s.LoadIdentity(ctx, accountID)
}

// LoadIdentity reads an account and the permissions granted through its roles.
func (s *AccountService) LoadIdentity(ctx context.Context, accountID uint) (Identity, error) {
	db := s.DB.WithContext(ctx)

	var account models.Account
	if err := db.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Anonymous, ErrUnauthenticated
		}
		return Anonymous, fmt.Errorf("load account %d: %w", accountID, err)
	}

	var perms []string
	err := db.Model(&models.RolePermission{}).
		Joins("JOIN role_members ON role_members.role_id = role_permissions.role_id").
		Where("role_members.account_id = ?", accountID).
		Distinct().
		Pluck("role_permissions.permission", &perms).Error
	if err != nil {
		return Anonymous, fmt.Errorf("load permissions for %d: %w", accountID, err)
	}

	id := Identity{
		AccountID:   account.ID,
		Username:    account.Username,
		IsStaff:     account.IsStaff,
		IsSuperuser: account.IsSuperuser,
		Permissions: make(map[string]bool, len(perms)),
	}
	for _, p := range perms {
		id.Permissions[p] = true
	}
	return id, nil
}
