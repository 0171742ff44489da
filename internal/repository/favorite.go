package repository

import (
	"time"

	"github.com/user/kinoclub/internal/model"
	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add 添加收藏
// 重复收藏由 (user_id, kinopoisk_id) 唯一索引拦截，冲突返回 gorm.ErrDuplicatedKey
func (r *FavoriteRepository) Add(userID, kinopoiskID int) (*model.Favorite, error) {
	favorite := &model.Favorite{
		UserID:      userID,
		KinopoiskID: kinopoiskID,
		CreatedAt:   time.Now(),
	}
	if err := r.db.Create(favorite).Error; err != nil {
		return nil, err
	}
	return favorite, nil
}

// Remove 取消收藏，返回是否确有删除
func (r *FavoriteRepository) Remove(userID, kinopoiskID int) (bool, error) {
	res := r.db.Where("user_id = ? AND kinopoisk_id = ?", userID, kinopoiskID).Delete(&model.Favorite{})
	return res.RowsAffected > 0, res.Error
}

// ListByUser 获取用户收藏列表
func (r *FavoriteRepository) ListByUser(userID, limit, offset int) ([]*model.Favorite, error) {
	var favorites []*model.Favorite
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&favorites).Error
	return favorites, err
}
