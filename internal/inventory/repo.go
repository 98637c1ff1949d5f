package inventory

import (
	"context"

	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes catalog persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an inventory repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new catalog entry and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateItemDTO) (*models.Inventory, error) {
	item := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// FindByProductID retrieves the entry matching the merchant-facing product id.
func (r *Repository) FindByProductID(ctx context.Context, productID string) (*models.Inventory, error) {
	var item models.Inventory
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update overwrites the mutable fields of the entry identified by productID.
func (r *Repository) Update(ctx context.Context, productID string, dto UpdateItemDTO) (*models.Inventory, error) {
	var item models.Inventory
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&item).Error; err != nil {
		return nil, err
	}
	if dto.ProductID != "" {
		item.ProductID = dto.ProductID
	}
	item.ProductName = dto.ProductName
	item.Warehouse = dto.Warehouse
	item.SellerID = dto.SellerID
	if err := r.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByID loads a catalog entry by its numeric id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Inventory, error) {
	var item models.Inventory
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns catalog entries ordered by product name.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]models.Inventory, error) {
	var results []models.Inventory
	query := r.db.WithContext(ctx).Order("product_name ASC, id ASC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
