package categories

import (
	"github.com/google/uuid"

	"github.com/civicworks/civicreport-backend/pkg/db/models"
)

// CategoryDTO is the transport shape for report categories.
type CategoryDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromModel(c *models.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:   c.ID,
		Name: c.Name,
	}
}
