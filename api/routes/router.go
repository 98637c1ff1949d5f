package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/shoptrail-backend/api/controllers"
	"github.com/angelmondragon/shoptrail-backend/api/middleware"
	"github.com/angelmondragon/shoptrail-backend/internal/activity"
	"github.com/angelmondragon/shoptrail-backend/internal/auth"
	"github.com/angelmondragon/shoptrail-backend/internal/inventory"
	"github.com/angelmondragon/shoptrail-backend/internal/purchases"
	"github.com/angelmondragon/shoptrail-backend/internal/reports"
	"github.com/angelmondragon/shoptrail-backend/internal/users"
	"github.com/angelmondragon/shoptrail-backend/pkg/auth/session"
	"github.com/angelmondragon/shoptrail-backend/pkg/config"
	"github.com/angelmondragon/shoptrail-backend/pkg/db"
	"github.com/angelmondragon/shoptrail-backend/pkg/logger"
	"github.com/angelmondragon/shoptrail-backend/pkg/metrics"
	"github.com/angelmondragon/shoptrail-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DBPinger        db.Pinger
	RedisClient     *redis.Client
	SessionChecker  session.AccessSessionChecker
	AuthService     auth.Service
	RegisterService auth.RegisterService
	UsersService    users.Service
	Inventory       inventory.Service
	Activity        activity.Service
	Purchases       purchases.Service
	Reports         reports.Service
	HTTPMetrics     *metrics.HTTPMetrics
	MetricsGatherer prometheus.Gatherer
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DBPinger, p.RedisClient))
	})

	if p.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(p.RegisterService, logg))
		r.Post("/login", controllers.AuthLogin(p.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(p.AuthService, cfg.JWT, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public reads: the report and the catalog require no session.
		r.Get("/reports/most-purchased-items", controllers.ReportMostPurchased(p.Reports, logg))

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", controllers.InventoryList(p.Inventory, logg))
			r.Get("/{productID}", controllers.InventoryGet(p.Inventory, logg))

			// Catalog mutations are staff-only.
			r.Group(func(r chi.Router) {
				r.Use(
					middleware.Auth(cfg.JWT, p.SessionChecker, logg),
					middleware.RequireAdmin(logg),
				)
				r.Post("/", controllers.InventoryCreate(p.Inventory, logg))
				r.Put("/{productID}", controllers.InventoryUpdate(p.Inventory, logg))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.SessionChecker, logg))

			r.Get("/me", controllers.Me(p.UsersService, logg))

			r.Route("/activity", func(r chi.Router) {
				r.Get("/", controllers.ActivityListMine(p.Activity, logg))
				r.Post("/", controllers.ActivityRecord(p.Activity, logg))
			})

			r.Post("/purchases", controllers.PurchaseRecord(p.Purchases, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(
			middleware.Auth(cfg.JWT, p.SessionChecker, logg),
			middleware.RequireAdmin(logg),
		)

		r.Get("/", controllers.AdminHome(logg))
		r.Get("/users", controllers.AdminListUsers(p.UsersService, logg))
		r.Patch("/users/{id}/role", controllers.AdminUpdateUserRole(p.UsersService, logg))
		r.Get("/users/{id}/activity", controllers.AdminActivityForUser(p.Activity, logg))
	})

	return r
}
