package reports

import (
	"context"

	"gorm.io/gorm"
)

// Repository runs the aggregation queries behind the reporting endpoints.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reports repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// MostPurchasedProducts sums purchase quantities per product name, highest
// totals first. Products with equal totals are ordered by name so the result
// is stable across runs. Catalog entries with no purchases never appear.
func (r *Repository) MostPurchasedProducts(ctx context.Context, limit int) ([]ProductTotal, error) {
	results := make([]ProductTotal, 0, limit)
	query := r.db.WithContext(ctx).
		Table("purchases").
		Select("inventories.product_name AS product_name, SUM(purchases.quantity) AS total_quantity").
		Joins("JOIN inventories ON inventories.id = purchases.inventory_id").
		Group("inventories.product_name").
		Order("total_quantity DESC, product_name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
