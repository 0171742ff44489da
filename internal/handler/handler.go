package handler

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/user/kinoclub/internal/config"
	"github.com/user/kinoclub/internal/model"
	"github.com/user/kinoclub/internal/repository"
	"github.com/user/kinoclub/internal/service"
)

// UserStore 用户存储接口，由 repository.UserRepository 实现
type UserStore interface {
	Create(email, login, password string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByLogin(login string) (*model.User, error)
	FindByID(id int) (*model.User, error)
	CheckPassword(user *model.User, password string) bool
}

// TokenStore 刷新令牌存储接口，由 repository.TokenRepository 实现
type TokenStore interface {
	Store(userID int, tokenHash string, expiresAt time.Time) error
	FindByHash(tokenHash string) (*model.RefreshToken, error)
	DeleteByHash(tokenHash string) error
}

// FavoriteStore 收藏存储接口，由 repository.FavoriteRepository 实现
type FavoriteStore interface {
	Add(userID, kinopoiskID int) (*model.Favorite, error)
	Remove(userID, kinopoiskID int) (bool, error)
	ListByUser(userID, limit, offset int) ([]*model.Favorite, error)
}

// Handler HTTP 处理器
type Handler struct {
	Config    *config.Config
	Users     UserStore
	Tokens    TokenStore
	Favorites FavoriteStore
	Reactions *service.ReactionService
	Comments  *service.CommentService
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	registerValidations()

	return &Handler{
		Config:    cfg,
		Users:     repos.User,
		Tokens:    repos.Token,
		Favorites: repos.Favorite,
		Reactions: service.NewReactionService(repos.Reaction),
		Comments:  service.NewCommentService(repos.Comment, repos.User),
	}
}

// registerValidations 注册自定义校验规则
// movieid: 外部影片 ID 必须是正整数
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("movieid", func(fl validator.FieldLevel) bool {
			return fl.Field().Int() > 0
		})
	}
}
