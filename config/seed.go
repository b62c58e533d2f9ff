package config

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"hotel-reservations/models"
	"hotel-reservations/utils"
)

// AdministratorRole holds every permission and is granted to the seeded admin.
const AdministratorRole = "administrator"

// SeedDatabase makes sure the administrator role carries every permission
// and, when ADMIN_PASSWORD is set, that an administrator account exists.
// It is safe to run on every start.
func SeedDatabase(db *gorm.DB, c Config) error {
	// ---------------- Roles ----------------
	role := models.Role{Name: AdministratorRole}
	if err := db.Where(models.Role{Name: AdministratorRole}).
		Attrs(models.Role{Description: "Hotel staff with full access"}).
		FirstOrCreate(&role).Error; err != nil {
		return fmt.Errorf("seed role: %w", err)
	}

	for _, perm := range models.AllPermissions {
		rp := models.RolePermission{RoleID: role.ID, Permission: perm}
		if err := db.Where(rp).FirstOrCreate(&rp).Error; err != nil {
			return fmt.Errorf("seed permission %s: %w", perm, err)
		}
	}

	// ---------------- Admin ----------------
	if c.AdminPassword == "" {
		log.Println("ℹ️  ADMIN_PASSWORD not set; skipping administrator account")
		return nil
	}

	var admin models.Account
	err := db.Where("username = ?", c.AdminUsername).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := utils.HashPassword(c.AdminPassword, c.BcryptCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		admin = models.Account{
			Username:     c.AdminUsername,
			PasswordHash: hash,
			IsStaff:      true,
			IsSuperuser:  true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		log.Printf("✅ Default administrator %q seeded", admin.Username)
	case err != nil:
		return fmt.Errorf("load admin: %w", err)
	}

	member := models.RoleMember{RoleID: role.ID, AccountID: admin.ID}
	if err := db.Where(member).FirstOrCreate(&member).Error; err != nil {
		return fmt.Errorf("seed admin role: %w", err)
	}
	return nil
}
