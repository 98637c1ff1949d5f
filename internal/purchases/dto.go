package purchases

import (
	"time"

	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
)

// PurchaseDTO is the transport shape of one completed purchase line.
type PurchaseDTO struct {
	ID          uint      `json:"id"`
	InventoryID uint      `json:"inventory_id"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordPurchaseDTO holds the data required to append a purchase line.
type RecordPurchaseDTO struct {
	InventoryID uint `json:"inventory_id" validate:"required,gt=0"`
	Quantity    int  `json:"quantity" validate:"required,gt=0"`
}

func FromModel(m *models.Purchase) *PurchaseDTO {
	if m == nil {
		return nil
	}
	return &PurchaseDTO{
		ID:          m.ID,
		InventoryID: m.InventoryID,
		Quantity:    m.Quantity,
		CreatedAt:   m.CreatedAt,
	}
}
