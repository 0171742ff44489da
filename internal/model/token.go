package model

import (
	"time"
)

// RefreshToken 刷新令牌（服务端持久化，每个用户至多一个活跃记录）
// 令牌本身不落库，只存 SHA-256 哈希
type RefreshToken struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id" gorm:"uniqueIndex:idx_refresh_user"`
	TokenHash string    `json:"-" db:"token_hash" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
