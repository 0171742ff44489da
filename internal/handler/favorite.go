package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/kinoclub/internal/middleware"
	"github.com/user/kinoclub/internal/utils"
	"gorm.io/gorm"
)

type favoriteRequest struct {
	KinopoiskID int `json:"kinopoiskId" binding:"required,movieid"`
}

// AddFavorite 添加收藏
func (h *Handler) AddFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "无效的影片 ID")
		return
	}

	userID := middleware.GetUserID(c)
	favorite, err := h.Favorites.Add(userID, req.KinopoiskID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		utils.BadRequest(c, "影片已在收藏中")
		return
	}
	if err != nil {
		log.Printf("[Favorite] 添加收藏失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.SuccessWithMessage(c, "影片已加入收藏", favorite)
}

// RemoveFavorite 取消收藏
func (h *Handler) RemoveFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "无效的影片 ID")
		return
	}

	userID := middleware.GetUserID(c)
	removed, err := h.Favorites.Remove(userID, req.KinopoiskID)
	if err != nil {
		log.Printf("[Favorite] 取消收藏失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if !removed {
		utils.NotFound(c, "影片不在收藏中")
		return
	}

	utils.SuccessWithMessage(c, "影片已移出收藏", nil)
}

// ListFavorites 获取收藏列表
func (h *Handler) ListFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	favorites, err := h.Favorites.ListByUser(userID, limit, offset)
	if err != nil {
		log.Printf("[Favorite] 查询收藏列表失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, favorites)
}
