package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mbeoliero/leadgen/domain/entity"
	"github.com/mbeoliero/leadgen/domain/repo"
	"github.com/mbeoliero/leadgen/pkg/generic"
)

type scheduleRepo struct {
	db *gorm.DB
}

var getScheduleRepo = generic.Once(func() repo.ScheduleRepo {
	return &scheduleRepo{db: GetDB()}
})

func (r *scheduleRepo) Create(ctx context.Context, schedule *entity.Schedule) error {
	return gorm.G[entity.Schedule](r.db).Create(ctx, schedule)
}

func (r *scheduleRepo) FindById(ctx context.Context, id uint64) (*entity.Schedule, error) {
	s, err := gorm.G[*entity.Schedule](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *scheduleRepo) ListActive(ctx context.Context, limit int) ([]*entity.Schedule, error) {
	return gorm.G[*entity.Schedule](r.db).
		Where("is_active = ?", true).
		Order("created_at").
		Limit(limit).
		Find(ctx)
}

func (r *scheduleRepo) ListUpcomingByOwner(ctx context.Context, owner string, now int64, limit int) ([]*entity.Schedule, error) {
	return gorm.G[*entity.Schedule](r.db).
		Where("user_email = ? AND is_active = ?", owner, true).
		Where("schedule_type = ? OR run_at > ?", entity.ScheduleTypeRecurring, now).
		Order("created_at").
		Limit(limit).
		Find(ctx)
}

func (r *scheduleRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	_, err := gorm.G[*entity.Schedule](r.db).Where("id = ?", id).Update(ctx, entity.FieldIsActive, active)
	return err
}
