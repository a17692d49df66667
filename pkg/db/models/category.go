package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is static reference data for classifying reports.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;not null;uniqueIndex:categories_name_key"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
