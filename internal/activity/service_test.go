package activity

import (
	"context"
	"testing"

	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shoptrail-backend/pkg/errors"
)

type stubRepo struct {
	events []models.CustomerActivity
}

func (s *stubRepo) Create(ctx context.Context, dto RecordEventDTO) (*models.CustomerActivity, error) {
	event := models.CustomerActivity{
		ID:          uint(len(s.events) + 1),
		UID:         dto.UserID,
		ProductID:   dto.ProductID,
		AddToCart:   dto.AddToCart,
		OrderPlaced: dto.OrderPlaced,
	}
	s.events = append(s.events, event)
	return &event, nil
}

func (s *stubRepo) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.CustomerActivity, error) {
	var out []models.CustomerActivity
	for _, e := range s.events {
		if e.UID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestServiceRecordValidatesInput(t *testing.T) {
	svc, err := NewService(&stubRepo{})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	ctx := context.Background()

	cases := []struct {
		name string
		req  RecordEventDTO
	}{
		{"missing user", RecordEventDTO{ProductID: "sku-1"}},
		{"missing product", RecordEventDTO{UserID: 3, ProductID: "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(ctx, tc.req)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestServiceRecordAppendsEvent(t *testing.T) {
	repo := &stubRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	event, err := svc.Record(context.Background(), RecordEventDTO{
		UserID:      3,
		ProductID:   "sku-1",
		OrderPlaced: true,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !event.OrderPlaced || event.UserID != 3 {
		t.Fatalf("unexpected event %+v", event)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected one stored event, got %d", len(repo.events))
	}
}
