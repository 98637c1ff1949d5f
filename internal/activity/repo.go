package activity

import (
	"context"
	"time"

	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes append-only persistence for shopper events.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an activity repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create appends a shopper event. Events are never updated or deleted.
func (r *Repository) Create(ctx context.Context, dto RecordEventDTO) (*models.CustomerActivity, error) {
	at := time.Now().UTC()
	if dto.Timestamp != nil {
		at = dto.Timestamp.UTC()
	}
	event := &models.CustomerActivity{
		Timestamp:   at,
		UID:         dto.UserID,
		ProductID:   dto.ProductID,
		AddToCart:   dto.AddToCart,
		OrderPlaced: dto.OrderPlaced,
	}
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// ListForUser returns the user's events, newest first.
func (r *Repository) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.CustomerActivity, error) {
	var results []models.CustomerActivity
	query := r.db.WithContext(ctx).
		Where("uid = ?", userID).
		Order("timestamp DESC, id DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
