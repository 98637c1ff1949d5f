package models

import "time"

// Inventory represents one catalog entry.
type Inventory struct {
	ID          uint      `gorm:"primaryKey"`
	ProductID   string    `gorm:"column:product_id;type:varchar(50);not null;uniqueIndex:uq_inventories_product_id"`
	ProductName string    `gorm:"column:product_name;type:varchar(100);not null"`
	Warehouse   *string   `gorm:"type:varchar(50)"`
	SellerID    string    `gorm:"column:seller_id;type:varchar(50);not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
