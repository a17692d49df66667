package models

import (
	"time"

	"github.com/civicworks/civicreport-backend/pkg/enums"
	"github.com/google/uuid"
)

// User represents a citizen or admin account.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"column:name;not null"`
	Email        string         `gorm:"type:text;not null;uniqueIndex:users_email_key"`
	PasswordHash string         `gorm:"column:password_hash;not null"`
	Phone        string         `gorm:"column:phone;not null"`
	Role         enums.UserRole `gorm:"column:role;not null;default:user"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
