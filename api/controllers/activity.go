package controllers

import (
	"net/http"

	"github.com/angelmondragon/shoptrail-backend/api/middleware"
	"github.com/angelmondragon/shoptrail-backend/api/responses"
	"github.com/angelmondragon/shoptrail-backend/api/validators"
	"github.com/angelmondragon/shoptrail-backend/internal/activity"
	pkgerrors "github.com/angelmondragon/shoptrail-backend/pkg/errors"
	"github.com/angelmondragon/shoptrail-backend/pkg/logger"
)

type recordActivityRequest struct {
	ProductID   string `json:"product_id" validate:"required,max=50"`
	AddToCart   bool   `json:"add_to_cart"`
	OrderPlaced bool   `json:"order_placed"`
}

// ActivityRecord appends a shopper event for the authenticated user.
func ActivityRecord(svc activity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "activity service unavailable"))
			return
		}

		var body recordActivityRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Record(r.Context(), activity.RecordEventDTO{
			UserID:      middleware.UserIDFromContext(r.Context()),
			ProductID:   body.ProductID,
			AddToCart:   body.AddToCart,
			OrderPlaced: body.OrderPlaced,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// ActivityListMine returns the authenticated user's events, newest first.
func ActivityListMine(svc activity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "activity service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 50, 1, 200)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListForUser(r.Context(), middleware.UserIDFromContext(r.Context()), limit, offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdminActivityForUser returns one user's events for support inspection.
func AdminActivityForUser(svc activity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "activity service unavailable"))
			return
		}

		userID, err := validators.ParseURLUint(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", 50, 1, 200)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListForUser(r.Context(), userID, limit, offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
