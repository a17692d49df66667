package users

import (
	"context"
	"fmt"

	"github.com/civicworks/civicreport-backend/pkg/db/models"
	pkgerrors "github.com/civicworks/civicreport-backend/pkg/errors"
)

// Service exposes admin-facing user directory operations.
type Service interface {
	ListUsers(ctx context.Context) ([]UserDTO, error)
}

type userLister interface {
	List(ctx context.Context) ([]models.User, error)
}

type service struct {
	repo userLister
}

// ServiceParams bundles the dependencies required to build a users service.
type ServiceParams struct {
	Repo userLister
}

// NewService constructs a users service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) ListUsers(ctx context.Context) ([]UserDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users")
	}

	out := make([]UserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}
