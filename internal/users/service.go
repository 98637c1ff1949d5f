package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
	"github.com/angelmondragon/shoptrail-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/shoptrail-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service defines the user-administration behavior needed by the controllers.
type Service interface {
	GetUser(ctx context.Context, id uint) (*UserDTO, error)
	ListUsers(ctx context.Context, limit, offset int) ([]UserDTO, error)
	UpdateRole(ctx context.Context, id uint, role enums.UserRole) (*UserDTO, error)
}

type repository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	UpdateRole(ctx context.Context, id uint, role enums.UserRole) error
}

type service struct {
	repo repository
}

// NewService constructs a user-administration service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) GetUser(ctx context.Context, id uint) (*UserDTO, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(user), nil
}

func (s *service) ListUsers(ctx context.Context, limit, offset int) ([]UserDTO, error) {
	if limit < 0 || offset < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "limit and offset must be non-negative")
	}
	found, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list users")
	}
	out := make([]UserDTO, 0, len(found))
	for i := range found {
		out = append(out, *FromModel(&found[i]))
	}
	return out, nil
}

func (s *service) UpdateRole(ctx context.Context, id uint, role enums.UserRole) (*UserDTO, error) {
	if !role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role").
			WithDetails(map[string]string{"role": string(role)})
	}

	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == role {
		return FromModel(user), nil
	}

	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update role")
	}
	user.Role = role
	return FromModel(user), nil
}

func (s *service) findUser(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find user")
	}
	return user, nil
}
