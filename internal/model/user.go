package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Valid 只接受 user / admin 两种角色
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// swagger:model User
type User struct {
	ID            uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username      string    `gorm:"size:100;not null;index" json:"username"`
	Email         string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"size:100;not null" json:"-"`
	Role          UserRole  `gorm:"size:20;not null;default:'user'" json:"role"`
	BehaviorScore int       `gorm:"not null;default:0" json:"behavior_score"`
	CreatedAt     time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
