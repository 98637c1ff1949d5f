package activity

import (
	"time"

	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
)

// EventDTO is the transport shape of one recorded shopper event.
type EventDTO struct {
	ID          uint      `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	UserID      uint      `json:"user_id"`
	ProductID   string    `json:"product_id"`
	AddToCart   bool      `json:"add_to_cart"`
	OrderPlaced bool      `json:"order_placed"`
}

// RecordEventDTO holds the data required to append a shopper event.
type RecordEventDTO struct {
	UserID      uint       `json:"user_id" validate:"required,gt=0"`
	ProductID   string     `json:"product_id" validate:"required,max=50"`
	AddToCart   bool       `json:"add_to_cart"`
	OrderPlaced bool       `json:"order_placed"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

func FromModel(m *models.CustomerActivity) *EventDTO {
	if m == nil {
		return nil
	}
	return &EventDTO{
		ID:          m.ID,
		Timestamp:   m.Timestamp,
		UserID:      m.UID,
		ProductID:   m.ProductID,
		AddToCart:   m.AddToCart,
		OrderPlaced: m.OrderPlaced,
	}
}

func FromModels(events []models.CustomerActivity) []EventDTO {
	out := make([]EventDTO, 0, len(events))
	for i := range events {
		out = append(out, *FromModel(&events[i]))
	}
	return out
}
