package store

import (
	"errors"

	"github.com/ninokhhh/lunacase/internal/model"
	"github.com/ninokhhh/lunacase/pkg/config"
	"github.com/ninokhhh/lunacase/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EnsureDefaultAdmin is the one-time first-run seeding step. If any admin
// account already exists it does nothing. If an account matching the
// configured admin email exists it is promoted; otherwise the account is
// created with the configured credentials. Safe to run on every startup.
func EnsureDefaultAdmin(db *gorm.DB, cfg *config.AdminConfig) error {
	log := logger.GetLogger()

	var admin model.User
	err := db.Where("is_admin = ?", true).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	email := NormalizeEmail(cfg.Email)

	var user model.User
	err = db.Where("email = ?", email).First(&user).Error
	if err == nil {
		if err := db.Model(&user).Update("is_admin", true).Error; err != nil {
			return err
		}
		log.Info("promoted existing account to admin", zap.String("email", email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	created, err := CreateUser(db, cfg.FullName, email, cfg.Password)
	if err != nil {
		return err
	}
	if err := db.Model(created).Update("is_admin", true).Error; err != nil {
		return err
	}

	if cfg.Password == config.DefaultAdminPassword {
		log.Warn("admin account created with the built-in default password; set ADMIN_PASSWORD",
			zap.String("email", email))
	} else {
		log.Info("admin account created", zap.String("email", email))
	}
	return nil
}
