package api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mbeoliero/leadgen/domain/repo"
)

// listCap bounds the lead listing endpoints.
const listCap = 10000

type LeadHandler struct {
	leadRepo    repo.LeadRepo
	profileRepo repo.ProfileRepo
}

func NewLeadHandler() *LeadHandler {
	return &LeadHandler{
		leadRepo:    repo.GetLeadRepo(),
		profileRepo: repo.GetProfileRepo(),
	}
}

// GetAllProfiles 查询全部抓取档案
func (h *LeadHandler) GetAllProfiles(ctx context.Context, c *app.RequestContext) {
	profiles, err := h.profileRepo.ListAll(ctx, listCap)
	if err != nil {
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(consts.StatusOK, profiles)
}

// GetApprovedLeads 查询审核通过的线索
func (h *LeadHandler) GetApprovedLeads(ctx context.Context, c *app.RequestContext) {
	leads, err := h.leadRepo.ListAll(ctx, listCap)
	if err != nil {
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(consts.StatusOK, leads)
}

// GetReadyLeads 查询可发送邀请的线索
func (h *LeadHandler) GetReadyLeads(ctx context.Context, c *app.RequestContext) {
	leads, err := h.leadRepo.ListReady(ctx, listCap)
	if err != nil {
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(consts.StatusOK, leads)
}

// GetDashboardStats 仪表盘统计
func (h *LeadHandler) GetDashboardStats(ctx context.Context, c *app.RequestContext) {
	totalLeads, err := h.profileRepo.Count(ctx)
	if err != nil {
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}
	approved, err := h.leadRepo.Count(ctx)
	if err != nil {
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}
	sent, err := h.leadRepo.CountSent(ctx)
	if err != nil {
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(consts.StatusOK, utils.H{
		"totalLeads":    totalLeads,
		"approvedLeads": approved,
		"invitesSent":   sent,
	})
}
