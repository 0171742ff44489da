package handler

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/kinoclub/internal/middleware"
	"github.com/user/kinoclub/internal/model"
	"github.com/user/kinoclub/internal/utils"
)

type commentRequest struct {
	KinopoiskID int    `json:"kinopoiskId" binding:"required,movieid"`
	Text        string `json:"text" binding:"required"`
}

// AddComment 添加评论
func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "无效的影片 ID 或评论内容为空")
		return
	}

	userID := middleware.GetUserID(c)
	comment, err := h.Comments.Add(userID, req.KinopoiskID, req.Text)
	if err != nil {
		log.Printf("[Comment] 添加评论失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, comment)
}

// RemoveComment 删除评论，仅作者本人或管理员可删
func (h *Handler) RemoveComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "无效的评论 ID")
		return
	}

	comment, err := h.Comments.FindByID(id)
	if err != nil {
		log.Printf("[Comment] 查询评论失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if comment == nil {
		utils.NotFound(c, "评论不存在")
		return
	}

	userID := middleware.GetUserID(c)
	if comment.UserID != userID && middleware.GetRole(c) != model.RoleAdmin {
		utils.Forbidden(c, "")
		return
	}

	if err := h.Comments.Delete(id); err != nil {
		log.Printf("[Comment] 删除评论失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.SuccessWithMessage(c, "评论已删除", nil)
}

// ListComments 获取影片评论列表（公开接口）
func (h *Handler) ListComments(c *gin.Context) {
	kinopoiskID, err := strconv.Atoi(c.Param("kinopoiskId"))
	if err != nil || kinopoiskID <= 0 {
		utils.BadRequest(c, "无效的影片 ID")
		return
	}

	comments, err := h.Comments.ListByMovie(kinopoiskID)
	if err != nil {
		log.Printf("[Comment] 查询评论列表失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, comments)
}
