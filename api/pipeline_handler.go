package api

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mbeoliero/leadgen/domain/entity"
	"github.com/mbeoliero/leadgen/domain/service"
	"github.com/mbeoliero/leadgen/internal/dispatcher"
	"github.com/mbeoliero/leadgen/internal/scheduler"
)

type PipelineHandler struct {
	schedules  *service.ScheduleService
	scheduler  *scheduler.Scheduler
	dispatcher *dispatcher.Dispatcher
}

func NewPipelineHandler(schedules *service.ScheduleService, sched *scheduler.Scheduler, disp *dispatcher.Dispatcher) *PipelineHandler {
	return &PipelineHandler{
		schedules:  schedules,
		scheduler:  sched,
		dispatcher: disp,
	}
}

// StartPipeline 手动触发流水线；已在跑则报错
func (h *PipelineHandler) StartPipeline(ctx context.Context, c *app.RequestContext) {
	if err := h.dispatcher.TriggerPipeline(ctx); err != nil {
		if errors.Is(err, dispatcher.ErrPipelineBusy) {
			abortDetail(c, consts.StatusBadRequest, "Pipeline already running")
			return
		}
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(consts.StatusOK, utils.H{"message": "Pipeline started"})
}

type CreateScheduleRequest struct {
	Type  string `json:"type" binding:"required"`
	RunAt string `json:"runAt"`
	Cron  string `json:"cron"`
}

// CreateSchedule 创建调度并立即注册定时器
func (h *PipelineHandler) CreateSchedule(ctx context.Context, c *app.RequestContext) {
	var req CreateScheduleRequest
	if err := c.BindAndValidate(&req); err != nil {
		abortDetail(c, consts.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	schedule, err := h.schedules.Create(ctx, currentUser(c), req.Type, req.RunAt, req.Cron)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidScheduleType):
			abortDetail(c, consts.StatusBadRequest, "Invalid schedule type")
		case errors.Is(err, service.ErrInvalidRunAt), errors.Is(err, service.ErrInvalidCron):
			abortDetail(c, consts.StatusBadRequest, err.Error())
		default:
			abortDetail(c, consts.StatusInternalServerError, err.Error())
		}
		return
	}

	if err = h.scheduler.Register(ctx, schedule); err != nil {
		abortDetail(c, consts.StatusInternalServerError, "failed to register schedule: "+err.Error())
		return
	}

	c.JSON(consts.StatusOK, utils.H{
		"message":     "Schedule created",
		"schedule_id": strconv.FormatUint(schedule.Id, 10),
	})
}

type scheduleView struct {
	Id    string `json:"_id"`
	Type  string `json:"type"`
	RunAt string `json:"runAt,omitempty"`
	Cron  string `json:"cron,omitempty"`
}

// ListSchedules 列出调用者仍会触发的调度
func (h *PipelineHandler) ListSchedules(ctx context.Context, c *app.RequestContext) {
	schedules, err := h.schedules.ListUpcoming(ctx, currentUser(c))
	if err != nil {
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}

	views := make([]scheduleView, 0, len(schedules))
	for _, s := range schedules {
		v := scheduleView{
			Id:   strconv.FormatUint(s.Id, 10),
			Type: s.ScheduleType.String(),
		}
		if s.ScheduleType == entity.ScheduleTypeOneTime {
			v.RunAt = time.UnixMilli(s.RunAt).UTC().Format(time.RFC3339)
		} else {
			v.Cron = s.CronExpr
		}
		views = append(views, v)
	}

	c.JSON(consts.StatusOK, views)
}

// DeleteSchedule 软删除调度并注销定时器
func (h *PipelineHandler) DeleteSchedule(ctx context.Context, c *app.RequestContext) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortDetail(c, consts.StatusNotFound, "Schedule not found")
		return
	}

	if err = h.schedules.Delete(ctx, currentUser(c), id); err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			abortDetail(c, consts.StatusNotFound, "Schedule not found")
			return
		}
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}

	// an in-flight fire cannot be recalled, only future fires are cancelled
	h.scheduler.Unregister(ctx, id)

	c.JSON(consts.StatusOK, utils.H{"message": "Schedule deleted"})
}

// GetStatus 轮询最新一次执行状态
func (h *PipelineHandler) GetStatus(ctx context.Context, c *app.RequestContext) {
	latest, err := h.schedules.LatestRun(ctx)
	if err != nil {
		abortDetail(c, consts.StatusInternalServerError, err.Error())
		return
	}

	if latest == nil {
		c.JSON(consts.StatusOK, utils.H{"jobType": nil, "status": entity.RunStatusIdle})
		return
	}

	c.JSON(consts.StatusOK, utils.H{"jobType": latest.JobType, "status": latest.Status})
}
