package controller

import (
	"errors"
	"time"

	"paw_match_backend/internal/service"
	"paw_match_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlaydateController struct {
	PlaydateService *service.PlaydateService
	IsRelease       bool
}

func NewPlaydateController(playdateService *service.PlaydateService, isRelease bool) *PlaydateController {
	return &PlaydateController{
		PlaydateService: playdateService,
		IsRelease:       isRelease,
	}
}

// swagger:model PlaydateRequest
type PlaydateRequest struct {
	MatchID       string    `json:"match_id" binding:"required,uuid"`
	ScheduledTime time.Time `json:"scheduled_time" binding:"required"`
	Latitude      *float64  `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude     *float64  `json:"longitude" binding:"required,min=-180,max=180"`
	LocationName  string    `json:"location_name" binding:"required"`
	Notes         string    `json:"notes"`
}

// swagger:model PlaydateUpdateRequest
type PlaydateUpdateRequest struct {
	ScheduledTime *time.Time `json:"scheduled_time"`
	Latitude      *float64   `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude     *float64   `json:"longitude" binding:"omitempty,min=-180,max=180"`
	LocationName  *string    `json:"location_name"`
	Notes         *string    `json:"notes"`
	Status        *string    `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
}

// Create godoc
// @Summary 创建约玩
// @Description 在一条匹配下安排线下约玩，匹配双方都可以发起
// @Tags 约玩
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body PlaydateRequest true "约玩信息"
// @Success 201 {object} model.Playdate
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 403 {object} util.ErrorResponse "不是匹配参与方"
// @Failure 404 {object} util.ErrorResponse "匹配不存在"
// @Router /v1/playdates [post]
func (c *PlaydateController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req PlaydateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	p, err := c.PlaydateService.Create(claims.UserID, service.PlaydateInput{
		MatchID:       req.MatchID,
		ScheduledTime: req.ScheduledTime,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		LocationName:  req.LocationName,
		Notes:         req.Notes,
	})
	if err != nil {
		c.writePlaydateError(ctx, err)
		return
	}
	util.Created(ctx, p)
}

// List godoc
// @Summary 我的约玩列表
// @Tags 约玩
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} model.Playdate
// @Router /v1/playdates [get]
func (c *PlaydateController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	playdates, err := c.PlaydateService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err, c.IsRelease)
		return
	}
	util.OK(ctx, playdates)
}

// Get godoc
// @Summary 查看约玩详情
// @Tags 约玩
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "约玩 ID"
// @Success 200 {object} model.Playdate
// @Failure 403 {object} util.ErrorResponse "不是匹配参与方"
// @Failure 404 {object} util.ErrorResponse "约玩不存在"
// @Router /v1/playdates/{id} [get]
func (c *PlaydateController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	p, err := c.PlaydateService.Get(claims.UserID, ctx.Param("id"))
	if err != nil {
		c.writePlaydateError(ctx, err)
		return
	}
	util.OK(ctx, p)
}

// Update godoc
// @Summary 修改约玩
// @Description 部分字段更新，匹配双方均可修改（包括把状态改为 completed 或 cancelled）
// @Tags 约玩
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "约玩 ID"
// @Param   body body PlaydateUpdateRequest true "要修改的字段"
// @Success 200 {object} model.Playdate
// @Failure 403 {object} util.ErrorResponse "不是匹配参与方"
// @Failure 404 {object} util.ErrorResponse "约玩不存在"
// @Router /v1/playdates/{id} [patch]
func (c *PlaydateController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req PlaydateUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.ScheduledTime != nil {
		fields["scheduled_time"] = *req.ScheduledTime
	}
	if req.Latitude != nil {
		fields["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		fields["longitude"] = *req.Longitude
	}
	if req.LocationName != nil {
		fields["location_name"] = *req.LocationName
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if len(fields) == 0 {
		util.BadRequest(ctx, "no fields to update")
		return
	}

	p, err := c.PlaydateService.Update(claims.UserID, ctx.Param("id"), fields)
	if err != nil {
		c.writePlaydateError(ctx, err)
		return
	}
	util.OK(ctx, p)
}

func (c *PlaydateController) writePlaydateError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrPlaydateNotFound), errors.Is(err, util.ErrMatchNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err, c.IsRelease)
	}
}
