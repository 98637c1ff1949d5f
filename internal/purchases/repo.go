package purchases

import (
	"context"

	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes append-only persistence for purchase lines.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a purchases repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create appends a purchase line. Lines are never updated or deleted.
func (r *Repository) Create(ctx context.Context, dto RecordPurchaseDTO) (*models.Purchase, error) {
	purchase := &models.Purchase{
		InventoryID: dto.InventoryID,
		Quantity:    dto.Quantity,
	}
	if err := r.db.WithContext(ctx).Create(purchase).Error; err != nil {
		return nil, err
	}
	return purchase, nil
}

// CountForInventory returns the number of purchase lines against one catalog entry.
func (r *Repository) CountForInventory(ctx context.Context, inventoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Where("inventory_id = ?", inventoryID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
