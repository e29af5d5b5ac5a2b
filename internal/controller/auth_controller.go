package controller

import (
	"errors"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/service"
	"paw_match_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	IsRelease   bool // 是否为生产环境
}

func NewAuthController(authService *service.AuthService, isRelease bool) *AuthController {
	return &AuthController{
		AuthService: authService,
		IsRelease:   isRelease,
	}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register godoc
// @Summary 注册新用户
// @Description 使用邮箱和密码注册账号
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "注册信息"
// @Success 201 {object} object "创建成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 409 {object} util.ErrorResponse "邮箱已被注册"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /v1/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := c.AuthService.Register(user); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Conflict(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err, c.IsRelease)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID, "email": user.Email, "name": user.Name})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 邮箱密码登录，返回 JWT
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录信息"
// @Success 200 {object} object "登录成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "凭证无效"
// @Router /v1/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Error(ctx, 401, "invalid credentials")
		return
	}

	util.OK(ctx, gin.H{"token": token, "user": user})
}

// Me godoc
// @Summary 当前用户
// @Description 返回当前登录用户信息
// @Tags 认证
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} util.ErrorResponse "未登录"
// @Router /v1/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.OK(ctx, user)
}
