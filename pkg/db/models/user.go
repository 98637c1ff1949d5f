package models

import (
	"time"

	"github.com/angelmondragon/shoptrail-backend/pkg/enums"
)

// User represents the canonical identity entity.
type User struct {
	ID               uint           `gorm:"primaryKey"`
	Username         string         `gorm:"type:varchar(80);not null;uniqueIndex:uq_users_username"`
	Email            string         `gorm:"type:varchar(120);not null;uniqueIndex:uq_users_email"`
	PasswordHash     string         `gorm:"column:password_hash;not null"`
	Gender           enums.Gender   `gorm:"type:varchar(10);not null;default:Male;check:check_gender,gender IN ('Male','Female','Others')"`
	RegistrationDate *time.Time     `gorm:"column:registration_date;type:date"`
	Age              *int           `gorm:"column:age"`
	City             *string        `gorm:"type:varchar(50)"`
	Birthday         *time.Time     `gorm:"column:birthday;type:date"`
	PhoneNo          *string        `gorm:"column:phone_no;type:varchar(15)"`
	PrimaryAddress   *string        `gorm:"column:primary_address;type:text"`
	Role             enums.UserRole `gorm:"type:varchar(50);not null;default:user;check:check_role,role IN ('user','PM','RM','FrontendDeveloper','admin')"`
	LastLoginAt      *time.Time     `gorm:"column:last_login_at"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
