package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/route"

	"github.com/mbeoliero/leadgen/api"
	"github.com/mbeoliero/leadgen/domain/service"
	"github.com/mbeoliero/leadgen/infra/config"
	"github.com/mbeoliero/leadgen/infra/email"
	"github.com/mbeoliero/leadgen/infra/mysql"
	"github.com/mbeoliero/leadgen/infra/redis"
	"github.com/mbeoliero/leadgen/internal/dispatcher"
	"github.com/mbeoliero/leadgen/internal/scheduler"
	"github.com/mbeoliero/leadgen/pkg/log"
)

func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	ctx := context.TODO()

	if err = mysql.Init(); err != nil {
		log.CtxError(ctx, "failed to init mysql: %v", err)
		panic(err)
	}
	log.CtxInfo(ctx, "mysql initialized")

	if err = redis.Init(); err != nil {
		log.CtxError(ctx, "failed to init redis: %v", err)
		panic(err)
	}
	log.CtxInfo(ctx, "redis initialized")

	disp := dispatcher.New(cfg.Webhook)

	sched, err := scheduler.NewScheduler(cfg.Scheduler, disp)
	if err != nil {
		log.CtxError(ctx, "failed to create scheduler: %v", err)
		panic(err)
	}
	sched.Start()

	// 接收外部流量前必须先恢复持久化的调度
	if err = sched.ReconcileOnStartup(ctx); err != nil {
		log.CtxError(ctx, "failed to reconcile schedules: %v", err)
		panic(err)
	}
	log.CtxInfo(ctx, "scheduler started")

	resetTokens := redis.NewResetTokenStore(redis.GetClient(), "leadgen", cfg.Auth.ResetTokenTtl)
	mail := email.NewResendSender(cfg.Email)
	deps := &api.Deps{
		Auth:       service.NewAuthService(cfg.Auth, resetTokens, mail),
		Schedules:  service.NewScheduleService(),
		Invites:    service.NewInviteService(disp),
		Scheduler:  sched,
		Dispatcher: disp,
	}

	h := server.New(server.WithHostPorts(fmt.Sprintf(":%d", cfg.Server.Port)))
	api.RegisterRoutes(h, cfg, deps)
	log.CtxInfo(ctx, "server starting on port %d", cfg.Server.Port)

	closed := []route.CtxCallback{
		sched.Stop,
		func(ctx context.Context) {
			log.CtxInfo(ctx, "start to close mysql and redis")
			_ = mysql.Close()
			_ = redis.Close()
		},
	}
	h.OnShutdown = append(h.OnShutdown, closed...)

	if err = h.Run(); err != nil {
		log.CtxError(ctx, "server error: %v", err)
		panic(err)
	}

	log.CtxInfo(ctx, "server stopped")
}
