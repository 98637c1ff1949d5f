package purchases

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/shoptrail-backend/pkg/db"
	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shoptrail-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service defines the purchase-recording behavior needed by the controllers.
type Service interface {
	Record(ctx context.Context, req RecordPurchaseDTO) (*PurchaseDTO, error)
}

type repository interface {
	Create(ctx context.Context, dto RecordPurchaseDTO) (*models.Purchase, error)
}

type inventoryFinder interface {
	FindByID(ctx context.Context, id uint) (*models.Inventory, error)
}

type service struct {
	repo      repository
	inventory inventoryFinder
}

// NewService constructs a purchases service backed by the provided repos.
func NewService(repo repository, inventory inventoryFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("purchases repository is required")
	}
	if inventory == nil {
		return nil, fmt.Errorf("inventory repository is required")
	}
	return &service{repo: repo, inventory: inventory}, nil
}

func (s *service) Record(ctx context.Context, req RecordPurchaseDTO) (*PurchaseDTO, error) {
	if req.InventoryID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "inventory_id is required")
	}
	if req.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	if _, err := s.inventory.FindByID(ctx, req.InventoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found").
				WithDetails(map[string]uint{"inventory_id": req.InventoryID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find inventory item")
	}

	purchase, err := s.repo.Create(ctx, req)
	if err != nil {
		if db.IsConstraintViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid purchase line")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record purchase")
	}
	return FromModel(purchase), nil
}
