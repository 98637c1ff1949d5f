package users

import (
	"time"

	"github.com/angelmondragon/shoptrail-backend/pkg/db/models"
	"github.com/angelmondragon/shoptrail-backend/pkg/enums"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID               uint           `json:"id"`
	Username         string         `json:"username"`
	Email            string         `json:"email"`
	Gender           enums.Gender   `json:"gender"`
	RegistrationDate *time.Time     `json:"registration_date,omitempty"`
	Age              *int           `json:"age,omitempty"`
	City             *string        `json:"city,omitempty"`
	Birthday         *time.Time     `json:"birthday,omitempty"`
	PhoneNo          *string        `json:"phone_no,omitempty"`
	PrimaryAddress   *string        `json:"primary_address,omitempty"`
	Role             enums.UserRole `json:"role"`
	LastLoginAt      *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Username         string
	Email            string
	PasswordHash     string
	Gender           *enums.Gender
	RegistrationDate *time.Time
	Age              *int
	City             *string
	Birthday         *time.Time
	PhoneNo          *string
	PrimaryAddress   *string
	Role             *enums.UserRole
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		Gender:           u.Gender,
		RegistrationDate: u.RegistrationDate,
		Age:              u.Age,
		City:             u.City,
		Birthday:         u.Birthday,
		PhoneNo:          u.PhoneNo,
		PrimaryAddress:   u.PrimaryAddress,
		Role:             u.Role,
		LastLoginAt:      u.LastLoginAt,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	gender := enums.GenderMale
	if c.Gender != nil {
		gender = *c.Gender
	}
	role := enums.UserRoleUser
	if c.Role != nil {
		role = *c.Role
	}

	return &models.User{
		Username:         c.Username,
		Email:            c.Email,
		PasswordHash:     c.PasswordHash,
		Gender:           gender,
		RegistrationDate: c.RegistrationDate,
		Age:              c.Age,
		City:             c.City,
		Birthday:         c.Birthday,
		PhoneNo:          c.PhoneNo,
		PrimaryAddress:   c.PrimaryAddress,
		Role:             role,
	}
}
