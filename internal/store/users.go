package store

import (
	"errors"
	"strings"

	"github.com/ninokhhh/lunacase/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// NormalizeEmail lowercases and trims an email address. All lookups and
// writes go through this, which makes the unique index on users.email
// case-insensitive in practice.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser registers a new account with a bcrypt password hash.
func CreateUser(db *gorm.DB, fullName, email, password string) (*model.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = NormalizeEmail(email)
	if fullName == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks an email/password pair and returns the account.
// Unknown email and wrong password are indistinguishable to the caller.
func AuthenticateUser(db *gorm.DB, email, password string) (*model.User, error) {
	var user model.User
	err := db.Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUser returns an account by ID.
func GetUser(db *gorm.DB, userID uint) (*model.User, error) {
	var user model.User
	err := db.First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every account, newest first. Read-only; used by the
// admin view.
func ListUsers(db *gorm.DB) ([]model.User, error) {
	var users []model.User
	err := db.Order("created_at DESC, id DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
