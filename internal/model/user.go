package model

import (
	"time"
)

// Role 用户角色（封闭枚举，避免出现非法角色值）
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid 校验角色取值
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User 用户模型
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email" gorm:"unique"`
	Login        string    `json:"login" db:"login" gorm:"unique"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
