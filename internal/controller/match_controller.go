package controller

import (
	"errors"
	"net/http"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/service"
	"paw_match_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MatchController struct {
	MatchService *service.MatchService
	IsRelease    bool
}

func NewMatchController(matchService *service.MatchService, isRelease bool) *MatchController {
	return &MatchController{
		MatchService: matchService,
		IsRelease:    isRelease,
	}
}

// swagger:model MatchRequest
type MatchRequest struct {
	Dog1ID string `json:"dog1_id" binding:"required,uuid"`
	Dog2ID string `json:"dog2_id" binding:"required,uuid"`
}

// swagger:model MatchStatusRequest
type MatchStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected blocked"`
}

// Request godoc
// @Summary 发起匹配意向
// @Description 己方狗对另一只狗表达意向。对方已先发起时两条意向合并为 matched 并返回 200，
// @Description 否则新建 pending 记录返回 201。这对狗已有记录时返回 409 并带回已有记录。
// @Tags 匹配
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body MatchRequest true "狗对"
// @Success 200 {object} model.Match "双向意向达成"
// @Success 201 {object} model.Match "等待对方回应"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 403 {object} util.ErrorResponse "不拥有任何一方"
// @Failure 404 {object} util.ErrorResponse "狗不存在"
// @Failure 409 {object} object "已有匹配记录"
// @Router /v1/matches [post]
func (c *MatchController) Request(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req MatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	match, merged, err := c.MatchService.RequestMatch(claims.UserID, req.Dog1ID, req.Dog2ID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMatchExists):
			// 冲突响应带回已有记录，客户端可以直接跳转到该匹配
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error(), "match": match})
		case errors.Is(err, util.ErrSelfMatch):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrDogNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx, "you do not own either dog in this pair")
		default:
			util.LogInternalError(ctx, err, c.IsRelease)
		}
		return
	}

	if merged {
		util.OK(ctx, match)
		return
	}
	util.Created(ctx, match)
}

// List godoc
// @Summary 我的匹配列表
// @Description 名下任意一只狗参与的全部匹配，按更新时间倒序
// @Tags 匹配
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} model.Match
// @Router /v1/matches [get]
func (c *MatchController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	matches, err := c.MatchService.ListMatches(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err, c.IsRelease)
		return
	}
	util.OK(ctx, matches)
}

// UpdateStatus godoc
// @Summary 更新匹配状态
// @Description 按状态机推进：pending 可拒绝或拉黑，matched 可接受、拒绝或拉黑，
// @Description blocked 为终态。不允许的迁移返回 400。
// @Tags 匹配
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "匹配 ID"
// @Param   body body MatchStatusRequest true "目标状态"
// @Success 200 {object} model.Match
// @Failure 400 {object} util.ErrorResponse "不允许的状态迁移"
// @Failure 403 {object} util.ErrorResponse "不是匹配参与方"
// @Failure 404 {object} util.ErrorResponse "匹配不存在"
// @Router /v1/matches/{id} [patch]
func (c *MatchController) UpdateStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req MatchStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	match, err := c.MatchService.UpdateStatus(claims.UserID, ctx.Param("id"), model.MatchStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMatchNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidTransition):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err, c.IsRelease)
		}
		return
	}
	util.OK(ctx, match)
}
