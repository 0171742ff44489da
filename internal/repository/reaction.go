package repository

import (
	"errors"

	"github.com/user/kinoclub/internal/model"
	"gorm.io/gorm"
)

type ReactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// Find 查找用户对影片的反应记录
func (r *ReactionRepository) Find(userID, movieID int) (*model.Reaction, error) {
	var reaction model.Reaction
	err := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).First(&reaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &reaction, nil
}

// Create 创建反应记录
// 并发重复创建由 (user_id, movie_id) 唯一索引拦截，冲突返回 gorm.ErrDuplicatedKey
func (r *ReactionRepository) Create(userID, movieID int, isLike bool) error {
	reaction := &model.Reaction{
		UserID:  userID,
		MovieID: movieID,
		IsLike:  isLike,
	}
	return r.db.Create(reaction).Error
}

// UpdatePolarity 原地翻转反应方向
func (r *ReactionRepository) UpdatePolarity(id int, isLike bool) error {
	return r.db.Model(&model.Reaction{}).Where("id = ?", id).Update("is_like", isLike).Error
}

// Delete 删除反应记录
func (r *ReactionRepository) Delete(id int) error {
	return r.db.Delete(&model.Reaction{}, id).Error
}

// CountByMovie 统计影片的赞/踩数量
func (r *ReactionRepository) CountByMovie(movieID int, isLike bool) (int64, error) {
	var count int64
	err := r.db.Model(&model.Reaction{}).
		Where("movie_id = ? AND is_like = ?", movieID, isLike).
		Count(&count).Error
	return count, err
}
