package reports

import (
	"context"
	"fmt"

	"github.com/angelmondragon/shoptrail-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/shoptrail-backend/pkg/errors"
)

const defaultTopProductsLimit = 10

// Service defines the reporting behavior needed by the controllers.
type Service interface {
	MostPurchasedItems(ctx context.Context, limit int) ([]ProductTotal, error)
}

type repository interface {
	MostPurchasedProducts(ctx context.Context, limit int) ([]ProductTotal, error)
}

type service struct {
	repo         repository
	defaultLimit int
}

// NewService constructs a reports service. cfg.TopProductsLimit is the
// report size when the caller does not ask for one; zero falls back to the
// built-in default.
func NewService(repo repository, cfg config.ReportConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reports repository is required")
	}
	limit := cfg.TopProductsLimit
	if limit <= 0 {
		limit = defaultTopProductsLimit
	}
	return &service{repo: repo, defaultLimit: limit}, nil
}

func (s *service) MostPurchasedItems(ctx context.Context, limit int) ([]ProductTotal, error) {
	if limit < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "limit must be non-negative")
	}
	if limit == 0 {
		limit = s.defaultLimit
	}
	rows, err := s.repo.MostPurchasedProducts(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregate purchases")
	}
	return rows, nil
}
