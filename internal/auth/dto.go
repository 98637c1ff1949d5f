package auth

import (
	"time"

	"github.com/angelmondragon/shoptrail-backend/internal/users"
	"github.com/angelmondragon/shoptrail-backend/pkg/enums"
)

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the token pair and user produced by a successful login.
type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *users.UserDTO `json:"user"`
}

// RefreshRequest carries the expired access token plus the refresh token to rotate.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse returns the replacement token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterRequest contains the payload required to create an account.
type RegisterRequest struct {
	Username       string        `json:"username" validate:"required,max=80"`
	Email          string        `json:"email" validate:"required,email,max=120"`
	Password       string        `json:"password" validate:"required,min=8"`
	Gender         *enums.Gender `json:"gender,omitempty"`
	Age            *int          `json:"age,omitempty" validate:"omitempty,gt=0"`
	City           *string       `json:"city,omitempty"`
	Birthday       *time.Time    `json:"birthday,omitempty"`
	PhoneNo        *string       `json:"phone_no,omitempty"`
	PrimaryAddress *string       `json:"primary_address,omitempty"`
}

// RegisterResponse echoes the created account without credentials.
type RegisterResponse struct {
	User *users.UserDTO `json:"user"`
}
