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

// RoleService manages roles and who holds them. Only superusers may use it.
type RoleService struct {
	DB *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{DB: db}
}

type RoleView struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Permissions map[string]bool `json:"permissions"`
	MemberIDs   []uint          `json:"member_ids"`
}

func requireSuperuser(id Identity) error {
	if !id.Authenticated() {
		return ErrUnauthenticated
	}
	if !id.IsSuperuser {
		return ErrForbidden
	}
	return nil
}

func (s *RoleService) List(ctx context.Context, id Identity) ([]RoleView, error) {
	if err := requireSuperuser(id); err != nil {
		return nil, err
	}
	db := s.DB.WithContext(ctx)

	var roles []models.Role
	if err := db.Preload("Permissions").Order("id").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	var members []models.RoleMember
	if err := db.Order("account_id").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("list role members: %w", err)
	}
	byRole := map[uint][]uint{}
	for _, m := range members {
		byRole[m.RoleID] = append(byRole[m.RoleID], m.AccountID)
	}

	views := make([]RoleView, 0, len(roles))
	for _, role := range roles {
		// Every known codename is listed so clients can render a full grid.
		perms := make(map[string]bool, len(models.AllPermissions))
		for _, p := range models.AllPermissions {
			perms[p] = false
		}
		for _, p := range role.Permissions {
			perms[p.Permission] = true
		}
		ids := byRole[role.ID]
		if ids == nil {
			ids = []uint{}
		}
		views = append(views, RoleView{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
			Permissions: perms,
			MemberIDs:   ids,
		})
	}
	return views, nil
}

// SetPermissions replaces the permissions of a role.
func (s *RoleService) SetPermissions(ctx context.Context, id Identity, roleID uint, perms []string) error {
	log.Printf("➡️ RoleService.SetPermissions role=%d perms=%v", roleID, perms)
	if err := requireSuperuser(id); err != nil {
		return err
	}

	known := make(map[string]bool, len(models.AllPermissions))
	for _, p := range models.AllPermissions {
		known[p] = true
	}
	verr := &ValidationError{}
	wanted := make([]models.RolePermission, 0, len(perms))
	seen := map[string]bool{}
	for _, p := range perms {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		if !known[p] {
			verr.Add("permissions", fmt.Sprintf("Unknown permission %q.", p))
			continue
		}
		seen[p] = true
		wanted = append(wanted, models.RolePermission{RoleID: roleID, Permission: p})
	}
	if err := verr.Err(); err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.mustExist(tx, roleID); err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
			return fmt.Errorf("clear permissions: %w", err)
		}
		if len(wanted) > 0 {
			if err := tx.Create(&wanted).Error; err != nil {
				return fmt.Errorf("set permissions: %w", err)
			}
		}
		return nil
	})
}

// AddMember grants a role to an account. Granting twice is a no-op.
func (s *RoleService) AddMember(ctx context.Context, id Identity, roleID, accountID uint) error {
	log.Printf("➡️ RoleService.AddMember role=%d account=%d", roleID, accountID)
	if err := requireSuperuser(id); err != nil {
		return err
	}
	db := s.DB.WithContext(ctx)
	if err := s.mustExist(db, roleID); err != nil {
		return err
	}
	var count int64
	if err := db.Model(&models.Account{}).Where("id = ?", accountID).Count(&count).Error; err != nil {
		return fmt.Errorf("check account: %w", err)
	}
	if count == 0 {
		return NewFieldError("account_id", "Select a valid choice. That choice is not one of the available choices.")
	}

	member := models.RoleMember{RoleID: roleID, AccountID: accountID}
	if err := db.Where(member).FirstOrCreate(&member).Error; err != nil {
		return fmt.Errorf("add role member: %w", err)
	}
	return nil
}

func (s *RoleService) mustExist(db *gorm.DB, roleID uint) error {
	var role models.Role
	if err := db.First(&role, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load role %d: %w", roleID, err)
	}
	return nil
}
