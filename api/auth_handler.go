package api

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mbeoliero/leadgen/domain/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup 注册
func (h *AuthHandler) Signup(ctx context.Context, c *app.RequestContext) {
	var req SignupRequest
	if err := c.BindAndValidate(&req); err != nil {
		abortDetail(c, consts.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.auth.Signup(ctx, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			abortDetail(c, consts.StatusBadRequest, "An account with this email already exists. Please log in instead.")
			return
		}
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(consts.StatusOK, utils.H{"message": "User created"})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 登录，返回访问令牌
func (h *AuthHandler) Login(ctx context.Context, c *app.RequestContext) {
	var req LoginRequest
	if err := c.BindAndValidate(&req); err != nil {
		abortDetail(c, consts.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	token, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			abortDetail(c, consts.StatusBadRequest, "Invalid credentials")
			return
		}
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(consts.StatusOK, utils.H{"access_token": token})
}

type ResetRequest struct {
	Email string `json:"email" binding:"required"`
}

// RequestPasswordReset always responds with the same message so account
// existence is never revealed.
func (h *AuthHandler) RequestPasswordReset(ctx context.Context, c *app.RequestContext) {
	var req ResetRequest
	if err := c.BindAndValidate(&req); err != nil {
		abortDetail(c, consts.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.auth.RequestPasswordReset(ctx, req.Email); err != nil {
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(consts.StatusOK, utils.H{"message": "If this email exists, a reset link has been sent."})
}

type ConfirmResetRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ConfirmPasswordReset 使用重置令牌设置新密码
func (h *AuthHandler) ConfirmPasswordReset(ctx context.Context, c *app.RequestContext) {
	var req ConfirmResetRequest
	if err := c.BindAndValidate(&req); err != nil {
		abortDetail(c, consts.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.auth.ConfirmPasswordReset(ctx, req.Token, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrResetTokenInvalid) {
			abortDetail(c, consts.StatusBadRequest, "Invalid or expired token")
			return
		}
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(consts.StatusOK, utils.H{"message": "Password successfully reset"})
}

// SendResetLink 已登录用户请求重置链接
func (h *AuthHandler) SendResetLink(ctx context.Context, c *app.RequestContext) {
	if err := h.auth.SendResetLink(ctx, currentUser(c)); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortDetail(c, consts.StatusNotFound, "User not found")
			return
		}
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(consts.StatusOK, utils.H{"message": "Reset link sent to your email"})
}

// Me 查询当前用户资料
func (h *AuthHandler) Me(ctx context.Context, c *app.RequestContext) {
	user, err := h.auth.Me(ctx, currentUser(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortDetail(c, consts.StatusNotFound, "User not found")
			return
		}
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}

	// PasswordHash is json:"-"; nothing sensitive leaves here
	c.JSON(consts.StatusOK, user)
}

type UpdateProfileRequest struct {
	FullName *string `json:"fullName"`
	Company  *string `json:"company"`
}

// UpdateProfile 更新资料，仅更新请求中出现的字段
func (h *AuthHandler) UpdateProfile(ctx context.Context, c *app.RequestContext) {
	var req UpdateProfileRequest
	if err := c.BindAndValidate(&req); err != nil {
		abortDetail(c, consts.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.auth.UpdateProfile(ctx, currentUser(c), req.FullName, req.Company); err != nil {
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(consts.StatusOK, utils.H{"message": "Profile updated"})
}
