package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles assignable to a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a platform account with a credit/reward ledger.
type User struct {
	ID               uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name             string              `gorm:"size:50;not null" json:"name"`
	Email            string              `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password         string              `gorm:"not null" json:"-"`
	Role             string              `gorm:"size:20;default:'user'" json:"role"`
	Bio              string              `gorm:"size:500" json:"bio,omitempty"`
	ProfileImage     string              `gorm:"size:255;default:'default-profile.jpg'" json:"profileImage"`
	Credits          int                 `gorm:"default:0" json:"credits"`
	CreditHistory    []CreditTransaction `gorm:"foreignKey:UserID" json:"creditHistory,omitempty"`
	ProfileCompleted bool                `gorm:"default:false" json:"profileCompleted"`
	LastLoginDate    *time.Time          `json:"lastLoginDate,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
