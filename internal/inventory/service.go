package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/shoptrail-backend/pkg/db"
	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/shoptrail-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service defines the catalog behavior needed by the controllers.
type Service interface {
	AddItem(ctx context.Context, req CreateItemDTO) (*ItemDTO, error)
	UpdateItem(ctx context.Context, productID string, req UpdateItemDTO) (*ItemDTO, error)
	GetByProductID(ctx context.Context, productID string) (*ItemDTO, error)
	ListItems(ctx context.Context, limit, offset int) ([]ItemDTO, error)
}

type repository interface {
	Create(ctx context.Context, dto CreateItemDTO) (*models.Inventory, error)
	Update(ctx context.Context, productID string, dto UpdateItemDTO) (*models.Inventory, error)
	FindByProductID(ctx context.Context, productID string) (*models.Inventory, error)
	List(ctx context.Context, limit, offset int) ([]models.Inventory, error)
}

type service struct {
	repo repository
}

// NewService constructs a catalog service backed by the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) AddItem(ctx context.Context, req CreateItemDTO) (*ItemDTO, error) {
	req.ProductID = strings.TrimSpace(req.ProductID)
	req.ProductName = strings.TrimSpace(req.ProductName)
	req.SellerID = strings.TrimSpace(req.SellerID)
	if req.ProductID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
	}
	if req.ProductName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_name is required")
	}
	if req.SellerID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "seller_id is required")
	}

	item, err := s.repo.Create(ctx, req)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product_id already listed").
				WithDetails(map[string]string{"product_id": req.ProductID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create inventory item")
	}
	return FromModel(item), nil
}

func (s *service) UpdateItem(ctx context.Context, productID string, req UpdateItemDTO) (*ItemDTO, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
	}
	req.ProductID = strings.TrimSpace(req.ProductID)
	req.ProductName = strings.TrimSpace(req.ProductName)
	req.SellerID = strings.TrimSpace(req.SellerID)
	if req.ProductName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_name is required")
	}
	if req.SellerID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "seller_id is required")
	}

	item, err := s.repo.Update(ctx, productID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
		}
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "product_id already listed").
				WithDetails(map[string]string{"product_id": req.ProductID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update inventory item")
	}
	return FromModel(item), nil
}

func (s *service) GetByProductID(ctx context.Context, productID string) (*ItemDTO, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
	}
	item, err := s.repo.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "inventory item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find inventory item")
	}
	return FromModel(item), nil
}

func (s *service) ListItems(ctx context.Context, limit, offset int) ([]ItemDTO, error) {
	if limit < 0 || offset < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "limit and offset must be non-negative")
	}
	items, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list inventory items")
	}
	return FromModels(items), nil
}
