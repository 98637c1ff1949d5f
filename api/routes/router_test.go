package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/angelmondragon/shoptrail-backend/internal/inventory"
	"github.com/angelmondragon/shoptrail-backend/internal/reports"
	pkgAuth "github.com/angelmondragon/shoptrail-backend/pkg/auth"
	"github.com/angelmondragon/shoptrail-backend/pkg/auth/session"
	"github.com/angelmondragon/shoptrail-backend/pkg/config"
	"github.com/angelmondragon/shoptrail-backend/pkg/enums"
)

type allowAllSessions struct{}

func (allowAllSessions) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type staticReports struct{}

func (staticReports) MostPurchasedItems(ctx context.Context, limit int) ([]reports.ProductTotal, error) {
	return []reports.ProductTotal{}, nil
}

type staticInventory struct{}

func (staticInventory) AddItem(ctx context.Context, req inventory.CreateItemDTO) (*inventory.ItemDTO, error) {
	return &inventory.ItemDTO{ID: 1, ProductID: req.ProductID}, nil
}

func (staticInventory) UpdateItem(ctx context.Context, productID string, req inventory.UpdateItemDTO) (*inventory.ItemDTO, error) {
	return &inventory.ItemDTO{ID: 1, ProductID: productID}, nil
}

func (staticInventory) GetByProductID(ctx context.Context, productID string) (*inventory.ItemDTO, error) {
	return &inventory.ItemDTO{ID: 1, ProductID: productID}, nil
}

func (staticInventory) ListItems(ctx context.Context, limit, offset int) ([]inventory.ItemDTO, error) {
	return []inventory.ItemDTO{}, nil
}

func testRouterConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "dev", Port: "0"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "shoptrail", ExpirationMinutes: 30},
	}
}

func newTestRouter() http.Handler {
	return NewRouter(RouterParams{
		Config:         testRouterConfig(),
		SessionChecker: allowAllSessions{},
		Reports:        staticReports{},
		Inventory:      staticInventory{},
	})
}

func mintRouterToken(t *testing.T, cfg *config.Config, role enums.UserRole) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID:   4,
		Username: "renu",
		Role:     role,
		JTI:      session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRouterProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter()

	paths := []string{
		"/api/v1/me",
		"/api/v1/activity/",
		"/api/admin/v1/users",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 got %d", path, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("POST /api/v1/inventory/: expected 401 got %d", resp.Code)
	}
}

func TestRouterPublicReadsNeedNoSession(t *testing.T) {
	router := newTestRouter()

	paths := []string{
		"/api/v1/reports/most-purchased-items",
		"/api/v1/inventory/",
		"/api/v1/inventory/sku-1",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestRouterInventoryMutationsAreAdminOnly(t *testing.T) {
	cfg := testRouterConfig()
	router := NewRouter(RouterParams{
		Config:         cfg,
		SessionChecker: allowAllSessions{},
		Inventory:      staticInventory{},
	})

	body := `{"product_id":"sku-9","product_name":"Lamp","seller_id":"s-1"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+mintRouterToken(t, cfg, enums.UserRoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("POST as user: expected 403 got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/inventory/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+mintRouterToken(t, cfg, enums.UserRoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("POST as admin: expected 201 got %d", resp.Code)
	}

	update := `{"product_name":"Lamp v2","seller_id":"s-1"}`
	req = httptest.NewRequest(http.MethodPut, "/api/v1/inventory/sku-9", strings.NewReader(update))
	req.Header.Set("Authorization", "Bearer "+mintRouterToken(t, cfg, enums.UserRoleUser))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("PUT as user: expected 403 got %d", resp.Code)
	}
}

func TestRouterAdminRoutesForbidNonAdmin(t *testing.T) {
	cfg := testRouterConfig()
	router := NewRouter(RouterParams{
		Config:         cfg,
		SessionChecker: allowAllSessions{},
	})

	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID:   4,
		Username: "renu",
		Role:     enums.UserRoleUser,
		JTI:      session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestRouterReportNeedsNoToken(t *testing.T) {
	router := NewRouter(RouterParams{
		Config:         testRouterConfig(),
		SessionChecker: allowAllSessions{},
		Reports:        staticReports{},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/most-purchased-items", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
