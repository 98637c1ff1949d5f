package models

import "time"

// Purchase represents one completed purchase line. Rows are append-only.
type Purchase struct {
	ID          uint       `gorm:"primaryKey"`
	InventoryID uint       `gorm:"column:inventory_id;not null;index"`
	Inventory   *Inventory `gorm:"foreignKey:InventoryID"`
	Quantity    int        `gorm:"column:quantity;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
}
