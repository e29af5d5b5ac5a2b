package controller

import (
	"errors"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/service"
	"paw_match_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DogController struct {
	DogService *service.DogService
	IsRelease  bool
}

func NewDogController(dogService *service.DogService, isRelease bool) *DogController {
	return &DogController{
		DogService: dogService,
		IsRelease:  isRelease,
	}
}

// swagger:model DogRequest
type DogRequest struct {
	Name        string   `json:"name" binding:"required"`
	Breed       string   `json:"breed" binding:"required"`
	Age         *int     `json:"age" binding:"required,min=0,max=30"`
	Size        string   `json:"size" binding:"required,oneof=small medium large giant"`
	Temperament []string `json:"temperament"`
	EnergyLevel int      `json:"energy_level" binding:"required,min=1,max=5"`
	Bio         string   `json:"bio"`
	ImageURLs   []string `json:"image_urls"`
	IsFixed     *bool    `json:"is_fixed" binding:"required"`
	Vaccination string   `json:"vaccination_status" binding:"omitempty,oneof=up_to_date not_up_to_date not_applicable"`
}

// swagger:model DogUpdateRequest
type DogUpdateRequest struct {
	Name        *string  `json:"name"`
	Breed       *string  `json:"breed"`
	Age         *int     `json:"age" binding:"omitempty,min=0,max=30"`
	Size        *string  `json:"size" binding:"omitempty,oneof=small medium large giant"`
	Temperament []string `json:"temperament"`
	EnergyLevel *int     `json:"energy_level" binding:"omitempty,min=1,max=5"`
	Bio         *string  `json:"bio"`
	ImageURLs   []string `json:"image_urls"`
	IsFixed     *bool    `json:"is_fixed"`
	Vaccination *string  `json:"vaccination_status" binding:"omitempty,oneof=up_to_date not_up_to_date not_applicable"`
}

// Create godoc
// @Summary 登记一只狗
// @Description 在当前用户名下新增一条狗档案，要求已建立资料
// @Tags 狗
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body DogRequest true "狗信息"
// @Success 201 {object} model.Dog
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 404 {object} util.ErrorResponse "尚未建立资料"
// @Router /v1/dogs [post]
func (c *DogController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req DogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	dog := &model.Dog{
		OwnerID:     claims.UserID,
		Name:        req.Name,
		Breed:       req.Breed,
		Age:         *req.Age,
		Size:        model.DogSize(req.Size),
		Temperament: req.Temperament,
		EnergyLevel: req.EnergyLevel,
		Bio:         req.Bio,
		ImageURLs:   req.ImageURLs,
		IsFixed:     *req.IsFixed,
	}
	if req.Vaccination != "" {
		dog.Vaccination = model.VaccinationStatus(req.Vaccination)
	}

	if err := c.DogService.Create(dog); err != nil {
		if errors.Is(err, util.ErrProfileNotFound) {
			util.NotFound(ctx, "create a profile before adding dogs")
		} else {
			util.LogInternalError(ctx, err, c.IsRelease)
		}
		return
	}
	util.Created(ctx, dog)
}

// ListMine godoc
// @Summary 我的狗列表
// @Tags 狗
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} model.Dog
// @Router /v1/dogs [get]
func (c *DogController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	dogs, err := c.DogService.ListByOwner(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err, c.IsRelease)
		return
	}
	util.OK(ctx, dogs)
}

// Get godoc
// @Summary 查看狗档案
// @Description 狗档案对所有登录用户可见，带主人公开资料
// @Tags 狗
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "狗 ID"
// @Success 200 {object} model.Dog
// @Failure 404 {object} util.ErrorResponse "狗不存在"
// @Router /v1/dogs/{id} [get]
func (c *DogController) Get(ctx *gin.Context) {
	dog, err := c.DogService.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrDogNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err, c.IsRelease)
		}
		return
	}
	util.OK(ctx, dog)
}

// Update godoc
// @Summary 修改狗档案
// @Description 仅主人可修改，未提供的字段保持不变
// @Tags 狗
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "狗 ID"
// @Param   body body DogUpdateRequest true "要修改的字段"
// @Success 200 {object} model.Dog
// @Failure 403 {object} util.ErrorResponse "不是主人"
// @Failure 404 {object} util.ErrorResponse "狗不存在"
// @Router /v1/dogs/{id} [patch]
func (c *DogController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req DogUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Breed != nil {
		fields["breed"] = *req.Breed
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Size != nil {
		fields["size"] = *req.Size
	}
	if req.Temperament != nil {
		fields["temperament"] = req.Temperament
	}
	if req.EnergyLevel != nil {
		fields["energy_level"] = *req.EnergyLevel
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.ImageURLs != nil {
		fields["image_urls"] = req.ImageURLs
	}
	if req.IsFixed != nil {
		fields["is_fixed"] = *req.IsFixed
	}
	if req.Vaccination != nil {
		fields["vaccination_status"] = *req.Vaccination
	}
	if len(fields) == 0 {
		util.BadRequest(ctx, "no fields to update")
		return
	}

	dog, err := c.DogService.Update(claims.UserID, ctx.Param("id"), fields)
	if err != nil {
		c.writeDogError(ctx, err)
		return
	}
	util.OK(ctx, dog)
}

// Delete godoc
// @Summary 删除狗档案
// @Tags 狗
// @Security BearerAuth
// @Param   id path string true "狗 ID"
// @Success 204 "删除成功"
// @Failure 403 {object} util.ErrorResponse "不是主人"
// @Failure 404 {object} util.ErrorResponse "狗不存在"
// @Router /v1/dogs/{id} [delete]
func (c *DogController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	if err := c.DogService.Delete(claims.UserID, ctx.Param("id")); err != nil {
		c.writeDogError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

func (c *DogController) writeDogError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrDogNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err, c.IsRelease)
	}
}
