package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/kinoclub/internal/middleware"
	"github.com/user/kinoclub/internal/service"
	"github.com/user/kinoclub/internal/utils"
)

type reactionRequest struct {
	MovieID int `json:"movieId" binding:"required,movieid"`
}

// Like 点赞（重复点击撤销，反向点击翻转）
func (h *Handler) Like(c *gin.Context) {
	h.setReaction(c, true)
}

// Dislike 点踩
func (h *Handler) Dislike(c *gin.Context) {
	h.setReaction(c, false)
}

func (h *Handler) setReaction(c *gin.Context, like bool) {
	var req reactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "无效的影片 ID")
		return
	}

	userID := middleware.GetUserID(c)
	summary, err := h.Reactions.SetReaction(userID, req.MovieID, like)
	if errors.Is(err, service.ErrInvalidMovieID) {
		utils.BadRequest(c, "无效的影片 ID")
		return
	}
	if err != nil {
		log.Printf("[Reaction] 切换态度失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, summary)
}

// GetReactions 获取影片的赞/踩汇总，带上当前用户的态度（未登录为 none）
func (h *Handler) GetReactions(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("movieId"))
	if err != nil || movieID <= 0 {
		utils.BadRequest(c, "无效的影片 ID")
		return
	}

	summary, err := h.Reactions.GetSummary(movieID, middleware.GetUserIDPtr(c))
	if err != nil {
		log.Printf("[Reaction] 查询汇总失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, summary)
}
