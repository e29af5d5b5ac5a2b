package controller

import (
	"errors"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/service"
	"paw_match_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
	IsRelease      bool
}

func NewProfileController(profileService *service.ProfileService, isRelease bool) *ProfileController {
	return &ProfileController{
		ProfileService: profileService,
		IsRelease:      isRelease,
	}
}

// swagger:model ProfileRequest
type ProfileRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`
	Neighborhood    string `json:"neighborhood"`
	IsWalker        bool   `json:"is_walker"`
}

// GetMine godoc
// @Summary 获取本人资料
// @Tags 资料
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 404 {object} util.ErrorResponse "资料不存在"
// @Router /v1/profiles/me [get]
func (c *ProfileController) GetMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	profile, err := c.ProfileService.Get(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err, c.IsRelease)
		}
		return
	}
	util.OK(ctx, profile)
}

// Get godoc
// @Summary 查看他人公开资料
// @Tags 资料
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "用户 ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} util.ErrorResponse "资料不存在"
// @Router /v1/profiles/{id} [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))

	profile, err := c.ProfileService.Get(userID)
	if err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err, c.IsRelease)
		}
		return
	}
	util.OK(ctx, profile)
}

// Upsert godoc
// @Summary 创建或更新本人资料
// @Description 资料不存在时创建返回 201，已存在时覆盖返回 200
// @Tags 资料
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ProfileRequest true "资料内容"
// @Success 200 {object} model.Profile "更新成功"
// @Success 201 {object} model.Profile "创建成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Router /v1/profiles [post]
func (c *ProfileController) Upsert(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile := &model.Profile{
		UserID:          claims.UserID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		Neighborhood:    req.Neighborhood,
		IsWalker:        req.IsWalker,
	}

	created, err := c.ProfileService.Upsert(profile)
	if err != nil {
		util.LogInternalError(ctx, err, c.IsRelease)
		return
	}

	stored, err := c.ProfileService.Get(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err, c.IsRelease)
		return
	}
	if created {
		util.Created(ctx, stored)
		return
	}
	util.OK(ctx, stored)
}
