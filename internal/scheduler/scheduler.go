package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/mbeoliero/leadgen/domain/entity"
	"github.com/mbeoliero/leadgen/domain/repo"
	"github.com/mbeoliero/leadgen/infra/config"
	"github.com/mbeoliero/leadgen/pkg/log"
)

var ErrInvalidTriggerSpec = errors.New("invalid trigger spec")

// Trigger is the scheduled-fire entry point of the dispatcher.
type Trigger interface {
	TriggerScheduled(ctx context.Context) error
}

// Scheduler is the in-memory timer registry. The schedule store is the source
// of truth; this registry is a derived cache rebuilt by ReconcileOnStartup.
// Each schedule id maps to at most one live gocron job.
type Scheduler struct {
	cfg        config.SchedulerConfig
	cron       gocron.Scheduler
	trigger    Trigger
	mu         sync.RWMutex
	loadedJobs map[uint64]gocron.Job // schedule id -> gocron Job
	started    atomic.Bool
}

func NewScheduler(cfg config.SchedulerConfig, trigger Trigger) (*Scheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		cfg:        cfg,
		cron:       cron,
		trigger:    trigger,
		loadedJobs: make(map[uint64]gocron.Job),
	}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.started.Store(true)
}

// Register arms a timer for the schedule, replacing any existing registration
// with the same id. Both creation and startup reconciliation call it, so
// re-registration must be idempotent. A one-time run_at already in the past
// fires immediately rather than being rejected.
func (s *Scheduler) Register(ctx context.Context, schedule *entity.Schedule) error {
	var jobDef gocron.JobDefinition
	switch schedule.ScheduleType {
	case entity.ScheduleTypeOneTime:
		if schedule.RunAt <= 0 {
			return fmt.Errorf("%w: one-time schedule %d has no run_at", ErrInvalidTriggerSpec, schedule.Id)
		}
		runAt := time.UnixMilli(schedule.RunAt)
		if runAt.After(time.Now()) {
			jobDef = gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(runAt))
		} else {
			jobDef = gocron.OneTimeJob(gocron.OneTimeJobStartImmediately())
		}
	case entity.ScheduleTypeRecurring:
		if schedule.CronExpr == "" {
			return fmt.Errorf("%w: recurring schedule %d has no cron expression", ErrInvalidTriggerSpec, schedule.Id)
		}
		jobDef = gocron.CronJob(schedule.CronExpr, false)
	default:
		return fmt.Errorf("%w: unknown schedule type %d", ErrInvalidTriggerSpec, schedule.ScheduleType)
	}

	// The task carries only the schedule id; the record is re-fetched at fire
	// time so a fire never acts on stale data.
	id := schedule.Id
	job, err := s.cron.NewJob(
		jobDef,
		gocron.NewTask(func() {
			defer func() {
				if r := recover(); r != nil {
					log.CtxError(context.Background(), "schedule fire panic, scheduleId: %d, err: %v", id, r)
				}
			}()

			fireCtx, cancel := context.WithTimeout(context.Background(), s.cfg.DispatchTimeout)
			defer cancel()

			s.onFire(fireCtx, id)
		}),
		gocron.WithName(strconv.FormatUint(id, 10)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTriggerSpec, err)
	}

	s.mu.Lock()
	if old, exists := s.loadedJobs[id]; exists {
		if rmErr := s.cron.RemoveJob(old.ID()); rmErr != nil {
			log.CtxWarn(ctx, "failed to remove replaced job, scheduleId: %d, err: %v", id, rmErr)
		}
	}
	s.loadedJobs[id] = job
	s.mu.Unlock()

	log.CtxInfo(ctx, "registered schedule, scheduleId: %d, type: %s", id, schedule.ScheduleType)
	return nil
}

// Unregister removes the timer entry if present. Absence is not an error.
func (s *Scheduler) Unregister(ctx context.Context, id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.loadedJobs[id]
	if !exists {
		return
	}
	delete(s.loadedJobs, id)
	if err := s.cron.RemoveJob(job.ID()); err != nil {
		log.CtxWarn(ctx, "failed to remove job, scheduleId: %d, err: %v", id, err)
	}
}

// onFire runs on the firing job's own goroutine, so a slow dispatch for one
// schedule never delays another schedule's fire.
func (s *Scheduler) onFire(ctx context.Context, id uint64) {
	schedule, err := repo.GetScheduleRepo().FindById(ctx, id)
	if err != nil {
		log.CtxError(ctx, "fetch schedule on fire failed, scheduleId: %d, err: %v", id, err)
		return
	}
	if schedule == nil || !schedule.IsActive {
		// deleted between arm and fire; drop the stale registration
		log.CtxWarn(ctx, "schedule no longer active, dropping registration, scheduleId: %d", id)
		s.Unregister(ctx, id)
		return
	}

	if err = s.trigger.TriggerScheduled(ctx); err != nil {
		// surfaced, not retried; a one-time schedule is still consumed below
		log.CtxError(ctx, "scheduled dispatch failed, scheduleId: %d, err: %v", id, err)
	}

	if schedule.ScheduleType == entity.ScheduleTypeOneTime {
		if err = repo.GetScheduleRepo().SetActive(ctx, id, false); err != nil {
			log.CtxError(ctx, "deactivate one-time schedule failed, scheduleId: %d, err: %v", id, err)
		}
		s.Unregister(ctx, id)
	}

	log.CtxInfo(ctx, "schedule fired, scheduleId: %d, type: %s", id, schedule.ScheduleType)
}

// ReconcileOnStartup re-arms every active schedule from the store. Must run
// before the HTTP server accepts traffic. Recovery is capped by
// scheduler.reconcile_limit (default 100).
func (s *Scheduler) ReconcileOnStartup(ctx context.Context) error {
	schedules, err := repo.GetScheduleRepo().ListActive(ctx, s.cfg.ReconcileLimit)
	if err != nil {
		return fmt.Errorf("list active schedules failed: %w", err)
	}

	for _, schedule := range schedules {
		if err = s.Register(ctx, schedule); err != nil {
			log.CtxWarn(ctx, "skipping schedule on startup, scheduleId: %d, err: %v", schedule.Id, err)
		}
	}

	log.CtxInfo(ctx, "reconciled %d active schedules", len(schedules))
	return nil
}

// Registered reports whether the schedule currently has a live timer.
func (s *Scheduler) Registered(id uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.loadedJobs[id]
	return exists
}

func (s *Scheduler) Stop(ctx context.Context) {
	if !s.started.Load() {
		return
	}
	s.started.Store(false)

	done := make(chan struct{})
	go func() {
		_ = s.cron.Shutdown()
		close(done)
	}()

	if _, ok := ctx.Deadline(); ok {
		select {
		case <-done:
		case <-ctx.Done():
		}
		return
	}
	<-done
}
