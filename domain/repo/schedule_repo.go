package repo

import (
	"context"

	"github.com/mbeoliero/leadgen/domain/entity"
)

// ScheduleRepo persists pipeline trigger schedules. Schedules are only ever
// soft-deleted (is_active = false), never removed.
type ScheduleRepo interface {
	// Create 创建调度
	Create(ctx context.Context, schedule *entity.Schedule) error

	// FindById returns nil (no error) when the schedule does not exist.
	FindById(ctx context.Context, id uint64) (*entity.Schedule, error)

	// ListActive returns up to limit active schedules, used by the startup
	// reconcile pass.
	ListActive(ctx context.Context, limit int) ([]*entity.Schedule, error)

	// ListUpcomingByOwner returns the owner's active schedules that can still
	// fire: recurring ones, or one-time ones with run_at after now (milli).
	ListUpcomingByOwner(ctx context.Context, owner string, now int64, limit int) ([]*entity.Schedule, error)

	// SetActive 更新激活状态
	SetActive(ctx context.Context, id uint64, active bool) error
}

var scheduleRepo ScheduleRepo

func SetScheduleRepo(r ScheduleRepo) {
	scheduleRepo = r
}

func GetScheduleRepo() ScheduleRepo {
	return scheduleRepo
}
