package handler

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/kinoclub/internal/middleware"
	"github.com/user/kinoclub/internal/model"
	"github.com/user/kinoclub/internal/utils"
	"gorm.io/gorm"
)

type registrationRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type authResponse struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken,omitempty"`
}

// Registration 用户注册
func (h *Handler) Registration(c *gin.Context) {
	var req registrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "邮箱、昵称和密码均为必填，密码至少 6 个字符")
		return
	}

	// 邮箱和昵称都要求唯一
	if existing, _ := h.Users.FindByEmail(req.Email); existing != nil {
		utils.BadRequest(c, "该邮箱已被注册")
		return
	}
	if existing, _ := h.Users.FindByLogin(req.Login); existing != nil {
		utils.BadRequest(c, "该昵称已被占用")
		return
	}

	user, err := h.Users.Create(req.Email, req.Login, req.Password)
	// 并发注册穿过预检查时由唯一索引兜底
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		utils.BadRequest(c, "该邮箱或昵称已被注册")
		return
	}
	if err != nil {
		log.Printf("[User] 注册失败: %v", err)
		utils.InternalServerError(c, "注册失败，请重试")
		return
	}

	h.issueTokenPair(c, user)
}

// Login 用户登录
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "邮箱和密码不能为空")
		return
	}

	user, err := h.Users.FindByEmail(req.Email)
	if err != nil {
		log.Printf("[User] 查询用户失败: %v", err)
		utils.InternalServerError(c, "登录失败，请重试")
		return
	}
	if user == nil {
		utils.NotFound(c, "用户不存在")
		return
	}

	if !h.Users.CheckPassword(user, req.Password) {
		utils.BadRequest(c, "密码错误")
		return
	}

	h.issueTokenPair(c, user)
}

// Refresh 用刷新令牌换取新的令牌对，旧刷新令牌记录被替换
func (h *Handler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		utils.Unauthorized(c, "缺少刷新令牌")
		return
	}

	// 先验签名、有效期和令牌类型，访问令牌不能当刷新令牌用
	claims, err := middleware.ParseToken(req.RefreshToken, h.Config.AppSecret)
	if err != nil || claims.TokenType != middleware.TokenTypeRefresh {
		utils.Unauthorized(c, "刷新令牌无效")
		return
	}

	// 再核对服务端记录，登出或被替换过的令牌拒绝
	record, err := h.Tokens.FindByHash(utils.HashToken(req.RefreshToken))
	if err != nil {
		log.Printf("[User] 查询刷新令牌失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if record == nil || record.UserID != claims.UserID {
		utils.Unauthorized(c, "刷新令牌无效")
		return
	}

	user, err := h.Users.FindByID(claims.UserID)
	if err != nil {
		log.Printf("[User] 查询用户失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if user == nil {
		utils.Unauthorized(c, "用户不存在")
		return
	}

	h.issueTokenPair(c, user)
}

// Logout 登出，删除服务端刷新令牌记录；重复登出不报错
func (h *Handler) Logout(c *gin.Context) {
	var req refreshRequest
	_ = c.ShouldBindJSON(&req)

	if req.RefreshToken != "" {
		if err := h.Tokens.DeleteByHash(utils.HashToken(req.RefreshToken)); err != nil {
			log.Printf("[User] 删除刷新令牌失败: %v", err)
			utils.InternalServerError(c, "")
			return
		}
	}

	utils.SuccessWithMessage(c, "退出成功", nil)
}

// Check 校验当前访问令牌并签发一枚新的访问令牌
func (h *Handler) Check(c *gin.Context) {
	user, err := h.Users.FindByID(middleware.GetUserID(c))
	if err != nil {
		log.Printf("[User] 查询用户失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if user == nil {
		utils.Unauthorized(c, "用户不存在")
		return
	}

	accessToken, err := middleware.GenerateToken(user, h.Config.AppSecret, h.Config.AccessExpiry, middleware.TokenTypeAccess)
	if err != nil {
		log.Printf("[User] 签发访问令牌失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, authResponse{
		User:        user,
		AccessToken: accessToken,
	})
}

// issueTokenPair 签发访问/刷新令牌对并持久化刷新令牌哈希
func (h *Handler) issueTokenPair(c *gin.Context, user *model.User) {
	accessToken, err := middleware.GenerateToken(user, h.Config.AppSecret, h.Config.AccessExpiry, middleware.TokenTypeAccess)
	if err != nil {
		log.Printf("[User] 签发访问令牌失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	refreshToken, err := middleware.GenerateToken(user, h.Config.AppSecret, h.Config.RefreshExpiry, middleware.TokenTypeRefresh)
	if err != nil {
		log.Printf("[User] 签发刷新令牌失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	// 同一用户旧记录被覆盖，保证至多一个活跃刷新令牌
	expiresAt := time.Now().Add(h.Config.RefreshExpiry)
	if err := h.Tokens.Store(user.ID, utils.HashToken(refreshToken), expiresAt); err != nil {
		log.Printf("[User] 保存刷新令牌失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, authResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
