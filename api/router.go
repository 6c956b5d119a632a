package api

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"

	"github.com/mbeoliero/leadgen/domain/service"
	"github.com/mbeoliero/leadgen/infra/config"
	"github.com/mbeoliero/leadgen/internal/dispatcher"
	"github.com/mbeoliero/leadgen/internal/scheduler"
)

type Deps struct {
	Auth       *service.AuthService
	Schedules  *service.ScheduleService
	Invites    *service.InviteService
	Scheduler  *scheduler.Scheduler
	Dispatcher *dispatcher.Dispatcher
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(h *server.Hertz, cfg *config.Config, deps *Deps) {
	h.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := NewAuthHandler(deps.Auth)
	pipelineHandler := NewPipelineHandler(deps.Schedules, deps.Scheduler, deps.Dispatcher)
	inviteHandler := NewInviteHandler(deps.Invites)
	leadHandler := NewLeadHandler()

	// 健康检查
	h.GET("/health", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(consts.StatusOK, utils.H{"message": "ok"})
	})

	// 无需认证
	auth := h.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/request-password-reset", authHandler.RequestPasswordReset)
		auth.POST("/confirm-password-reset", authHandler.ConfirmPasswordReset)
	}

	// 以下路由需要 Bearer 认证
	authed := h.Group("/", AuthMiddleware(deps.Auth))
	{
		authed.GET("/auth/me", authHandler.Me)
		authed.PUT("/auth/update-profile", authHandler.UpdateProfile)
		authed.POST("/user/send-reset-link", authHandler.SendResetLink)

		pipeline := authed.Group("/pipeline")
		{
			pipeline.POST("/start", pipelineHandler.StartPipeline)
			pipeline.POST("/schedule", pipelineHandler.CreateSchedule)
			pipeline.GET("/schedules", pipelineHandler.ListSchedules)
			pipeline.DELETE("/schedule/:id", pipelineHandler.DeleteSchedule)
			pipeline.GET("/status", pipelineHandler.GetStatus)
		}

		authed.POST("/invite/send", inviteHandler.SendInvite)

		authed.GET("/dashboard/stats", leadHandler.GetDashboardStats)

		leads := authed.Group("/leads")
		{
			leads.GET("/all", leadHandler.GetAllProfiles)
			leads.GET("/approved", leadHandler.GetApprovedLeads)
			leads.GET("/ready", leadHandler.GetReadyLeads)
		}
	}
}
