package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleHost  = "HOST"
	RoleGuest = "GUEST"
)

type User struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username string `gorm:"column:username;uniqueIndex;size:150" json:"username"`
	Email    string `gorm:"column:email;size:254" json:"email"`
	Password string `gorm:"column:password;size:128" json:"-"`

	Profile Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

// Profile is created together with its User in one transaction, never lazily.
type Profile struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"column:user_id;uniqueIndex" json:"user_id"`
	Role   string `gorm:"column:role;size:10;default:GUEST" json:"role"`
}

func (p Profile) IsHost() bool {
	return p.Role == RoleHost
}
