package controller

import (
	"errors"

	"paw_match_backend/internal/service"
	"paw_match_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	RatingService *service.RatingService
	IsRelease     bool
}

func NewRatingController(ratingService *service.RatingService, isRelease bool) *RatingController {
	return &RatingController{
		RatingService: ratingService,
		IsRelease:     isRelease,
	}
}

// swagger:model RatingRequest
type RatingRequest struct {
	PlaydateID string `json:"playdate_id" binding:"required,uuid"`
	RatedDogID string `json:"rated_dog_id" binding:"required,uuid"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Review     string `json:"review" binding:"max=2000"`
}

// swagger:model RatingUpdateRequest
type RatingUpdateRequest struct {
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Review *string `json:"review" binding:"omitempty,max=2000"`
}

// Create godoc
// @Summary 评价约玩中对方的狗
// @Description 约玩必须已完成，被评的狗属于该匹配，评价人拥有匹配中的另一只狗。
// @Description 同一约玩对同一只狗只能评一次，重复返回 409。
// @Tags 评价
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body RatingRequest true "评价内容"
// @Success 201 {object} model.Rating
// @Failure 400 {object} util.ErrorResponse "请求参数错误或约玩未完成"
// @Failure 403 {object} util.ErrorResponse "无评价资格"
// @Failure 404 {object} util.ErrorResponse "约玩不存在"
// @Failure 409 {object} util.ErrorResponse "已评价过"
// @Router /v1/ratings [post]
func (c *RatingController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req RatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	r, err := c.RatingService.Create(claims.UserID, service.RatingInput{
		PlaydateID: req.PlaydateID,
		RatedDogID: req.RatedDogID,
		Rating:     req.Rating,
		Review:     req.Review,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPlaydateNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrPlaydateNotCompleted), errors.Is(err, util.ErrDogNotInPlaydate):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyRated):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err, c.IsRelease)
		}
		return
	}
	util.Created(ctx, r)
}

// ListForDog godoc
// @Summary 某只狗收到的全部评价
// @Tags 评价
// @Produce  json
// @Security BearerAuth
// @Param   dogId path string true "狗 ID"
// @Success 200 {array} model.Rating
// @Router /v1/ratings/dog/{dogId} [get]
func (c *RatingController) ListForDog(ctx *gin.Context) {
	ratings, err := c.RatingService.ListForDog(ctx.Param("dogId"))
	if err != nil {
		util.LogInternalError(ctx, err, c.IsRelease)
		return
	}
	util.OK(ctx, ratings)
}

// Update godoc
// @Summary 修改自己的评价
// @Tags 评价
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "评价 ID"
// @Param   body body RatingUpdateRequest true "要修改的字段"
// @Success 200 {object} model.Rating
// @Failure 403 {object} util.ErrorResponse "不是评价人"
// @Failure 404 {object} util.ErrorResponse "评价不存在"
// @Router /v1/ratings/{id} [patch]
func (c *RatingController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req RatingUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Review != nil {
		fields["review"] = *req.Review
	}
	if len(fields) == 0 {
		util.BadRequest(ctx, "no fields to update")
		return
	}

	r, err := c.RatingService.Update(claims.UserID, ctx.Param("id"), fields)
	if err != nil {
		c.writeRatingError(ctx, err)
		return
	}
	util.OK(ctx, r)
}

// Delete godoc
// @Summary 删除自己的评价
// @Tags 评价
// @Security BearerAuth
// @Param   id path string true "评价 ID"
// @Success 204 "删除成功"
// @Failure 403 {object} util.ErrorResponse "不是评价人"
// @Failure 404 {object} util.ErrorResponse "评价不存在"
// @Router /v1/ratings/{id} [delete]
func (c *RatingController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.RatingService.Delete(claims.UserID, ctx.Param("id")); err != nil {
		c.writeRatingError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

func (c *RatingController) writeRatingError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrRatingNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err, c.IsRelease)
	}
}
