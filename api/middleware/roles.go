package middleware

import (
	"net/http"

	"github.com/angelmondragon/shoptrail-backend/api/responses"
	"github.com/angelmondragon/shoptrail-backend/internal/authz"
	"github.com/angelmondragon/shoptrail-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/shoptrail-backend/pkg/errors"
	"github.com/angelmondragon/shoptrail-backend/pkg/logger"
)

// RequireRole rejects requests whose authenticated identity does not hold the
// capability for the given role.
func RequireRole(role enums.UserRole, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caps := capabilitiesFromRequest(r)
			if !caps.Has(authz.RoleNeed(role)) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is RequireRole for the admin role.
func RequireAdmin(logg *logger.Logger) func(http.Handler) http.Handler {
	return RequireRole(enums.UserRoleAdmin, logg)
}

func capabilitiesFromRequest(r *http.Request) authz.NeedSet {
	ctx := r.Context()
	return authz.CapabilitiesForClaims(
		UserIDFromContext(ctx),
		enums.UserRole(RoleFromContext(ctx)),
	)
}
