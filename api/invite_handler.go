package api

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mbeoliero/leadgen/domain/service"
	"github.com/mbeoliero/leadgen/internal/dispatcher"
)

type InviteHandler struct {
	invites *service.InviteService
}

func NewInviteHandler(invites *service.InviteService) *InviteHandler {
	return &InviteHandler{invites: invites}
}

type SendInviteRequest struct {
	LeadId        uint64 `json:"leadId" binding:"required"`
	EditedMessage string `json:"editedMessage" binding:"required"`
}

// SendInvite 发送一条连接邀请；上游错误按原状态码透传
func (h *InviteHandler) SendInvite(ctx context.Context, c *app.RequestContext) {
	var req SendInviteRequest
	if err := c.BindAndValidate(&req); err != nil {
		abortDetail(c, consts.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	body, err := h.invites.Send(ctx, req.LeadId, req.EditedMessage)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSendInProgress):
			abortDetail(c, consts.StatusBadRequest, "Another invitation is being sent. Please try after some time.")
		case errors.Is(err, service.ErrLeadNotSendable):
			abortDetail(c, consts.StatusBadRequest, "Lead not in sendable state")
		default:
			var upstream *dispatcher.UpstreamError
			if errors.As(err, &upstream) {
				abortDetail(c, upstream.StatusCode, upstream.Body)
				return
			}
			abortDetail(c, consts.StatusInternalServerError, err.Error())
		}
		return
	}

	// pass the upstream JSON through when it parses, wrap plain text otherwise
	var parsed map[string]any
	if sonic.UnmarshalString(body, &parsed) == nil {
		c.JSON(consts.StatusOK, parsed)
		return
	}
	c.JSON(consts.StatusOK, utils.H{"message": body})
}
