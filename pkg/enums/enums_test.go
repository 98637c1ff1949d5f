package enums

import "testing"

func TestUserRoleValidation(t *testing.T) {
	for _, role := range []UserRole{UserRoleUser, UserRolePM, UserRoleRM, UserRoleFrontendDeveloper, UserRoleAdmin} {
		if !role.IsValid() {
			t.Fatalf("expected %q to be valid", role)
		}
	}
	if UserRole("superadmin").IsValid() {
		t.Fatal("unexpected valid role")
	}

	if _, err := ParseUserRole("PM"); err != nil {
		t.Fatalf("parse PM: %v", err)
	}
	if _, err := ParseUserRole("pm"); err == nil {
		t.Fatal("role parsing must be case sensitive")
	}
}

func TestGenderValidation(t *testing.T) {
	for _, g := range []Gender{GenderMale, GenderFemale, GenderOthers} {
		if !g.IsValid() {
			t.Fatalf("expected %q to be valid", g)
		}
	}
	if Gender("other").IsValid() {
		t.Fatal("unexpected valid gender")
	}
	if _, err := ParseGender("Unknown"); err == nil {
		t.Fatal("expected parse error")
	}
}
