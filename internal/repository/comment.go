package repository

import (
	"errors"
	"time"

	"github.com/user/kinoclub/internal/model"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Add 添加评论
func (r *CommentRepository) Add(userID, kinopoiskID int, text string) (*model.Comment, error) {
	comment := &model.Comment{
		UserID:      userID,
		KinopoiskID: kinopoiskID,
		Text:        text,
		CreatedAt:   time.Now(),
	}
	if err := r.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// FindByID 根据 ID 查找评论
func (r *CommentRepository) FindByID(id int) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Delete 删除评论
func (r *CommentRepository) Delete(id int) error {
	return r.db.Delete(&model.Comment{}, id).Error
}

// ListByMovie 获取影片评论列表，按时间正序
func (r *CommentRepository) ListByMovie(kinopoiskID int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.Where("kinopoisk_id = ?", kinopoiskID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
