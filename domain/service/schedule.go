package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mbeoliero/leadgen/domain/entity"
	"github.com/mbeoliero/leadgen/domain/repo"
	"github.com/mbeoliero/leadgen/pkg/id_gen"
)

var (
	ErrInvalidScheduleType = errors.New("invalid schedule type")
	ErrInvalidRunAt        = errors.New("invalid run_at timestamp")
	ErrInvalidCron         = errors.New("invalid cron expression")
	ErrScheduleNotFound    = errors.New("schedule not found")

	// cronParser 校验标准五段 cron 表达式（分 时 日 月 周）
	cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
)

// ParseCron validates a 5-field cron expression.
func ParseCron(expr string) (cron.Schedule, error) {
	return cronParser.Parse(expr)
}

// listLimit caps owner listings, mirroring the startup reconcile cap.
const listLimit = 100

type ScheduleService struct {
	scheduleRepo repo.ScheduleRepo
	runRepo      repo.PipelineRunRepo
}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{
		scheduleRepo: repo.GetScheduleRepo(),
		runRepo:      repo.GetPipelineRunRepo(),
	}
}

// Create validates and persists a schedule. The caller registers the returned
// schedule into the scheduler; persistence is the source of truth, the timer
// registry is derived.
func (s *ScheduleService) Create(ctx context.Context, owner string, typeStr string, runAtISO string, cronExpr string) (*entity.Schedule, error) {
	scheduleType, ok := entity.ParseScheduleType(typeStr)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScheduleType, typeStr)
	}

	schedule := &entity.Schedule{
		UserEmail:    owner,
		ScheduleType: scheduleType,
		IsActive:     true,
	}

	switch scheduleType {
	case entity.ScheduleTypeOneTime:
		runAt, err := time.Parse(time.RFC3339, runAtISO)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRunAt, err)
		}
		schedule.RunAt = runAt.UnixMilli()
	case entity.ScheduleTypeRecurring:
		if _, err := cronParser.Parse(cronExpr); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCron, err)
		}
		schedule.CronExpr = cronExpr
	}

	id, err := id_gen.NextId(ctx)
	if err != nil {
		return nil, err
	}
	schedule.Id = uint64(id)

	if err = s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// ListUpcoming 查询调用者仍会触发的调度：周期性的，或触发时间未到的一次性调度
func (s *ScheduleService) ListUpcoming(ctx context.Context, owner string) ([]*entity.Schedule, error) {
	return s.scheduleRepo.ListUpcomingByOwner(ctx, owner, time.Now().UnixMilli(), listLimit)
}

// Delete soft-deletes the schedule. A schedule that does not exist or belongs
// to someone else is reported identically as not found.
func (s *ScheduleService) Delete(ctx context.Context, owner string, id uint64) error {
	schedule, err := s.scheduleRepo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if schedule == nil || schedule.UserEmail != owner {
		return ErrScheduleNotFound
	}
	return s.scheduleRepo.SetActive(ctx, id, false)
}

// LatestRun returns the most recent pipeline run, or nil when none exists.
func (s *ScheduleService) LatestRun(ctx context.Context) (*entity.PipelineRun, error) {
	return s.runRepo.FindLatest(ctx)
}
