package authz

import (
	"testing"

	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
	"github.com/angelmondragon/shoptrail-backend/pkg/enums"
)

func TestCapabilitiesForGrantsIdentityAndRole(t *testing.T) {
	user := &models.User{ID: 7, Role: enums.UserRolePM}

	set := CapabilitiesFor(user)

	if !set.Has(UserNeed(7)) {
		t.Fatalf("expected identity need for user 7")
	}
	if !set.Has(RoleNeed(enums.UserRolePM)) {
		t.Fatalf("expected PM role need")
	}
	if set.Has(RoleNeed(enums.UserRoleAdmin)) {
		t.Fatalf("PM must not carry the admin need")
	}
	if set.IsAdmin() {
		t.Fatalf("PM is not admin")
	}
}

func TestCapabilitiesForNilUser(t *testing.T) {
	set := CapabilitiesFor(nil)
	if len(set) != 0 {
		t.Fatalf("expected empty set, got %d needs", len(set))
	}
}

func TestCapabilitiesForClaimsAdmin(t *testing.T) {
	set := CapabilitiesForClaims(1, enums.UserRoleAdmin)
	if !set.IsAdmin() {
		t.Fatalf("expected admin need from admin claims")
	}
}

func TestCapabilitiesSkipInvalidRole(t *testing.T) {
	set := CapabilitiesForClaims(3, enums.UserRole("bogus"))
	if len(set) != 1 {
		t.Fatalf("expected only the identity need, got %d", len(set))
	}
}
