package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yrfilms/studio-backend/internal/config"
	"github.com/yrfilms/studio-backend/internal/models"
)

// EnsureAdmin creates the default admin account on first boot so the CMS
// is reachable before any other user exists.
func EnsureAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ?", cfg.AdminEmail).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Default admin user created: %s", cfg.AdminEmail)
	return nil
}
