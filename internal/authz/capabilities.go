package authz

import (
	"fmt"

	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
	"github.com/angelmondragon/shoptrail-backend/pkg/enums"
)

// Need is a single capability granted to an identity, e.g. "role:admin" or
// "user:42".
type Need string

// RoleNeed builds the capability granted by holding a role.
func RoleNeed(role enums.UserRole) Need {
	return Need(fmt.Sprintf("role:%s", role))
}

// UserNeed builds the capability that identifies one specific account.
func UserNeed(id uint) Need {
	return Need(fmt.Sprintf("user:%d", id))
}

// NeedSet is the full capability set of an authenticated identity.
type NeedSet map[Need]struct{}

// Has reports whether the set grants the given need.
func (s NeedSet) Has(need Need) bool {
	_, ok := s[need]
	return ok
}

// CapabilitiesFor derives the capability set from a persisted user: the
// identity need plus the need for their single role.
func CapabilitiesFor(user *models.User) NeedSet {
	set := NeedSet{}
	if user == nil {
		return set
	}
	set[UserNeed(user.ID)] = struct{}{}
	if user.Role.IsValid() {
		set[RoleNeed(user.Role)] = struct{}{}
	}
	return set
}

// CapabilitiesForClaims derives the capability set from token claims without
// a DB round trip.
func CapabilitiesForClaims(userID uint, role enums.UserRole) NeedSet {
	set := NeedSet{UserNeed(userID): {}}
	if role.IsValid() {
		set[RoleNeed(role)] = struct{}{}
	}
	return set
}

// IsAdmin reports whether the set grants the admin role need.
func (s NeedSet) IsAdmin() bool {
	return s.Has(RoleNeed(enums.UserRoleAdmin))
}
