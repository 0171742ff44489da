package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/kinoclub/internal/handler"
	"github.com/user/kinoclub/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ==================== 用户与会话 ====================
	user := api.Group("/user")
	{
		user.POST("/registration", h.Registration)
		user.POST("/login", h.Login)
		user.POST("/refresh", h.Refresh)
		user.POST("/logout", h.Logout)
		user.GET("/auth", middleware.RequireAuth(h.Config.AppSecret), h.Check)
	}

	// ==================== 收藏（需要登录）====================
	favorites := api.Group("/favorites")
	favorites.Use(middleware.RequireAuth(h.Config.AppSecret))
	{
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("", h.RemoveFavorite)
		favorites.GET("", h.ListFavorites)
	}

	// ==================== 评论 ====================
	comments := api.Group("/comments")
	{
		comments.POST("", middleware.RequireAuth(h.Config.AppSecret), h.AddComment)
		comments.DELETE("/:id", middleware.RequireAuth(h.Config.AppSecret), h.RemoveComment)
		comments.GET("/:kinopoiskId", h.ListComments)
	}

	// ==================== 赞/踩 ====================
	likes := api.Group("/likes")
	{
		likes.POST("/like", middleware.RequireAuth(h.Config.AppSecret), h.Like)
		likes.POST("/dislike", middleware.RequireAuth(h.Config.AppSecret), h.Dislike)
		likes.GET("/:movieId", middleware.OptionalAuth(h.Config.AppSecret), h.GetReactions)
	}
}
