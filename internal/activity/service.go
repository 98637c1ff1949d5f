package activity

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/shoptrail-backend/pkg/db"
	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shoptrail-backend/pkg/errors"
)

// Service defines the activity-log behavior needed by the controllers.
type Service interface {
	Record(ctx context.Context, req RecordEventDTO) (*EventDTO, error)
	ListForUser(ctx context.Context, userID uint, limit, offset int) ([]EventDTO, error)
}

type repository interface {
	Create(ctx context.Context, dto RecordEventDTO) (*models.CustomerActivity, error)
	ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.CustomerActivity, error)
}

type service struct {
	repo repository
}

// NewService constructs an activity service backed by the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("activity repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Record(ctx context.Context, req RecordEventDTO) (*EventDTO, error) {
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.UserID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user_id is required")
	}
	if req.ProductID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
	}

	event, err := s.repo.Create(ctx, req)
	if err != nil {
		if db.IsConstraintViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown user_id").
				WithDetails(map[string]uint{"user_id": req.UserID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record activity")
	}
	return FromModel(event), nil
}

func (s *service) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]EventDTO, error) {
	if userID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user_id is required")
	}
	if limit < 0 || offset < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "limit and offset must be non-negative")
	}
	events, err := s.repo.ListForUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list activity")
	}
	return FromModels(events), nil
}
