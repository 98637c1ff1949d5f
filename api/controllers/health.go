package controllers

import (
	"net/http"

	"github.com/angelmondragon/shoptrail-backend/api/responses"
	"github.com/angelmondragon/shoptrail-backend/pkg/config"
	"github.com/angelmondragon/shoptrail-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/shoptrail-backend/pkg/errors"
	"github.com/angelmondragon/shoptrail-backend/pkg/logger"
	"github.com/angelmondragon/shoptrail-backend/pkg/redis"
)

const envHeader = "X-ShopTrail-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when the backing stores answer a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
		}
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
