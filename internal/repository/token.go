package repository

import (
	"errors"
	"time"

	"github.com/user/kinoclub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Store 保存刷新令牌哈希，同一用户的旧记录被覆盖
func (r *TokenRepository) Store(userID int, tokenHash string, expiresAt time.Time) error {
	token := &model.RefreshToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token_hash", "expires_at", "created_at"}),
	}).Create(token).Error
}

// FindByHash 根据令牌哈希查找记录
func (r *TokenRepository) FindByHash(tokenHash string) (*model.RefreshToken, error) {
	var token model.RefreshToken
	err := r.db.Where("token_hash = ?", tokenHash).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &token, nil
}

// DeleteByHash 删除指定令牌记录（登出），不存在时不报错
func (r *TokenRepository) DeleteByHash(tokenHash string) error {
	return r.db.Where("token_hash = ?", tokenHash).Delete(&model.RefreshToken{}).Error
}

// DeleteExpired 清理过期令牌，返回删除条数
func (r *TokenRepository) DeleteExpired() (int64, error) {
	res := r.db.Where("expires_at < ?", time.Now()).Delete(&model.RefreshToken{})
	return res.RowsAffected, res.Error
}
