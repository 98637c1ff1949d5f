package models

import "time"

// CustomerActivity represents one observed shopper event. Rows are append-only.
//
// ProductID is an opaque string and deliberately not a foreign key into
// inventories; report queries join purchases to inventories, never activity.
type CustomerActivity struct {
	ID          uint      `gorm:"primaryKey"`
	Timestamp   time.Time `gorm:"column:timestamp;not null"`
	UID         uint      `gorm:"column:uid;not null;index"`
	User        *User     `gorm:"foreignKey:UID"`
	ProductID   string    `gorm:"column:product_id;type:varchar(50);not null"`
	AddToCart   bool      `gorm:"column:add_to_cart;not null;default:false"`
	OrderPlaced bool      `gorm:"column:order_placed;not null;default:false"`
}
