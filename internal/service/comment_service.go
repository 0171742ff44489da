package service

import (
	"time"

	"github.com/user/kinoclub/internal/model"
	"github.com/user/kinoclub/internal/utils"
)

// CommentStore 评论存储接口，由 repository.CommentRepository 实现
type CommentStore interface {
	Add(userID, kinopoiskID int, text string) (*model.Comment, error)
	FindByID(id int) (*model.Comment, error)
	Delete(id int) error
	ListByMovie(kinopoiskID int) ([]*model.Comment, error)
}

// AuthorStore 作者昵称查询接口，由 repository.UserRepository 实现
type AuthorStore interface {
	FindByID(id int) (*model.User, error)
}

// CommentService 评论服务，列表时为每条评论补充作者昵称
type CommentService struct {
	comments CommentStore
	authors  AuthorStore
	logins   *utils.TTLCache[int, string]
}

func NewCommentService(comments CommentStore, authors AuthorStore) *CommentService {
	return &CommentService{
		comments: comments,
		authors:  authors,
		// 昵称变动不频繁，缓存 10 分钟足够
		logins: utils.NewTTLCache[int, string](1000, 10*time.Minute),
	}
}

// Add 添加评论
func (s *CommentService) Add(userID, kinopoiskID int, text string) (*model.Comment, error) {
	return s.comments.Add(userID, kinopoiskID, text)
}

// FindByID 根据 ID 查找评论
func (s *CommentService) FindByID(id int) (*model.Comment, error) {
	return s.comments.FindByID(id)
}

// Delete 删除评论
func (s *CommentService) Delete(id int) error {
	return s.comments.Delete(id)
}

// ListByMovie 获取影片评论并标注作者昵称
func (s *CommentService) ListByMovie(kinopoiskID int) ([]*model.Comment, error) {
	comments, err := s.comments.ListByMovie(kinopoiskID)
	if err != nil {
		return nil, err
	}

	for _, comment := range comments {
		login, err := s.authorLogin(comment.UserID)
		if err != nil {
			return nil, err
		}
		comment.AuthorLogin = login
	}

	return comments, nil
}

// authorLogin 查作者昵称，优先走 LRU 缓存
func (s *CommentService) authorLogin(userID int) (string, error) {
	if login, ok := s.logins.Get(userID); ok {
		return login, nil
	}

	user, err := s.authors.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		// 作者被删时列表不报错，昵称留空
		return "", nil
	}

	s.logins.Set(userID, user.Login)
	return user.Login, nil
}
