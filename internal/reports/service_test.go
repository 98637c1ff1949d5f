package reports

import (
	"context"
	"testing"

	"github.com/angelmondragon/shoptrail-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/shoptrail-backend/pkg/errors"
)

type stubRepo struct {
	lastLimit int
	rows      []ProductTotal
}

func (s *stubRepo) MostPurchasedProducts(ctx context.Context, limit int) ([]ProductTotal, error) {
	s.lastLimit = limit
	return s.rows, nil
}

func TestServiceAppliesDefaultLimit(t *testing.T) {
	repo := &stubRepo{}
	svc, err := NewService(repo, config.ReportConfig{TopProductsLimit: 10})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	if _, err := svc.MostPurchasedItems(context.Background(), 0); err != nil {
		t.Fatalf("report: %v", err)
	}
	if repo.lastLimit != 10 {
		t.Fatalf("expected default limit 10, got %d", repo.lastLimit)
	}
}

func TestServiceHonorsRequestedLimit(t *testing.T) {
	repo := &stubRepo{}
	svc, err := NewService(repo, config.ReportConfig{TopProductsLimit: 10})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	if _, err := svc.MostPurchasedItems(context.Background(), 25); err != nil {
		t.Fatalf("report: %v", err)
	}
	if repo.lastLimit != 25 {
		t.Fatalf("expected limit 25, got %d", repo.lastLimit)
	}

	if _, err := svc.MostPurchasedItems(context.Background(), 3); err != nil {
		t.Fatalf("report: %v", err)
	}
	if repo.lastLimit != 3 {
		t.Fatalf("expected limit 3, got %d", repo.lastLimit)
	}
}

func TestServiceRejectsNegativeLimit(t *testing.T) {
	svc, err := NewService(&stubRepo{}, config.ReportConfig{})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.MostPurchasedItems(context.Background(), -1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
