package controller

import (
	"errors"

	"paw_match_backend/internal/service"
	"paw_match_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	MessageService *service.MessageService
	IsRelease      bool
}

func NewMessageController(messageService *service.MessageService, isRelease bool) *MessageController {
	return &MessageController{
		MessageService: messageService,
		IsRelease:      isRelease,
	}
}

// swagger:model SendMessageRequest
type SendMessageRequest struct {
	MatchID string `json:"match_id" binding:"required,uuid"`
	Content string `json:"content" binding:"required,max=2000"`
}

// swagger:model MarkReadRequest
type MarkReadRequest struct {
	MessageIDs []string `json:"message_ids" binding:"required,min=1,dive,uuid"`
}

// Send godoc
// @Summary 发送消息
// @Description 仅 matched 状态的匹配可以收发消息，新消息始终未读
// @Tags 消息
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body SendMessageRequest true "消息内容"
// @Success 201 {object} model.Message
// @Failure 400 {object} util.ErrorResponse "请求参数错误或匹配不处于 matched 状态"
// @Failure 404 {object} util.ErrorResponse "匹配不存在或无权访问"
// @Router /v1/messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	msg, err := c.MessageService.Send(claims.UserID, req.MatchID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMatchNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrMatchNotActive):
			util.BadRequest(ctx, "messages are only allowed in matched state")
		default:
			util.LogInternalError(ctx, err, c.IsRelease)
		}
		return
	}
	util.Created(ctx, msg)
}

// Fetch godoc
// @Summary 拉取匹配内全部消息
// @Description 按时间升序返回。副作用：对方发来的未读消息全部置为已读。
// @Tags 消息
// @Produce  json
// @Security BearerAuth
// @Param   matchId path string true "匹配 ID"
// @Success 200 {array} model.Message
// @Failure 404 {object} util.ErrorResponse "匹配不存在或无权访问"
// @Router /v1/messages/match/{matchId} [get]
func (c *MessageController) Fetch(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	msgs, err := c.MessageService.Fetch(claims.UserID, ctx.Param("matchId"))
	if err != nil {
		if errors.Is(err, util.ErrMatchNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err, c.IsRelease)
		}
		return
	}
	util.OK(ctx, msgs)
}

// MarkRead godoc
// @Summary 批量标记已读
// @Description 幂等：已读的消息不再变化。批次里任何一条不属于请求者参与的匹配则整体拒绝。
// @Tags 消息
// @Accept  json
// @Security BearerAuth
// @Param   body body MarkReadRequest true "消息 ID 列表"
// @Success 204 "标记成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 403 {object} util.ErrorResponse "批次包含无权访问的消息"
// @Router /v1/messages/mark-read [post]
func (c *MessageController) MarkRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req MarkReadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MessageService.MarkRead(claims.UserID, req.MessageIDs); err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err, c.IsRelease)
		}
		return
	}
	util.NoContent(ctx)
}

// Conversations godoc
// @Summary 会话列表
// @Description 每条匹配一条摘要：对方用户与狗、最后一条消息、未读数。没有消息的匹配也会出现。
// @Tags 消息
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} model.ConversationSummary
// @Router /v1/messages/conversations [get]
func (c *MessageController) Conversations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	convs, err := c.MessageService.Conversations(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err, c.IsRelease)
		return
	}
	util.OK(ctx, convs)
}
