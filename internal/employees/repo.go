package employees

import (
	"context"

	"github.com/civicworks/civicreport-backend/pkg/db/models"
	"github.com/civicworks/civicreport-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes employee persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an employees repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new employee and returns the persisted model.
func (r *Repository) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

// FindByID loads an employee by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// List returns all employees ordered by creation time, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Employee, error) {
	var rows []models.Employee
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateAvailability flips the employee's availability flag.
func (r *Repository) UpdateAvailability(ctx context.Context, id uuid.UUID, availability enums.EmployeeAvailability) error {
	return r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", id).
		UpdateColumn("availability", availability).Error
}
