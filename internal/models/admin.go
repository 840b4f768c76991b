package models

import "time"

// Admin represents a store administrator account.
type Admin struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email        string    `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"` // Never serialized
	CreatedAt    time.Time `json:"created_at"`
}
