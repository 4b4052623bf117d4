package model

import "time"

// User represents a storefront account. Accounts are never deleted in-app;
// emails are stored lowercased so the unique index is effectively
// case-insensitive.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name" gorm:"type:varchar(120);not null"`
	Email        string    `json:"email" gorm:"type:varchar(180);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	IsAdmin      bool      `json:"is_admin" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
