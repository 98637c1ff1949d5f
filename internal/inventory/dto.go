package inventory

import (
	"time"

	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
)

// ItemDTO is the transport shape of one catalog entry.
type ItemDTO struct {
	ID          uint      `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Warehouse   *string   `json:"warehouse,omitempty"`
	SellerID    string    `json:"seller_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateItemDTO holds the data required to persist a catalog entry.
type CreateItemDTO struct {
	ProductID   string  `json:"product_id" validate:"required,max=50"`
	ProductName string  `json:"product_name" validate:"required,max=100"`
	Warehouse   *string `json:"warehouse,omitempty" validate:"omitempty,max=50"`
	SellerID    string  `json:"seller_id" validate:"required,max=50"`
}

// UpdateItemDTO replaces the mutable fields of a catalog entry. An empty
// ProductID keeps the current one.
type UpdateItemDTO struct {
	ProductID   string  `json:"product_id,omitempty" validate:"omitempty,max=50"`
	ProductName string  `json:"product_name" validate:"required,max=100"`
	Warehouse   *string `json:"warehouse,omitempty" validate:"omitempty,max=50"`
	SellerID    string  `json:"seller_id" validate:"required,max=50"`
}

func FromModel(m *models.Inventory) *ItemDTO {
	if m == nil {
		return nil
	}
	return &ItemDTO{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Warehouse:   m.Warehouse,
		SellerID:    m.SellerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModels(items []models.Inventory) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out
}

func (c CreateItemDTO) ToModel() *models.Inventory {
	return &models.Inventory{
		ProductID:   c.ProductID,
		ProductName: c.ProductName,
		Warehouse:   c.Warehouse,
		SellerID:    c.SellerID,
	}
}
