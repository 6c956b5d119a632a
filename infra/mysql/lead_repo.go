package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mbeoliero/leadgen/domain/entity"
	"github.com/mbeoliero/leadgen/domain/repo"
	"github.com/mbeoliero/leadgen/pkg/generic"
)

type leadRepo struct {
	db *gorm.DB
}

var getLeadRepo = generic.Once(func() repo.LeadRepo {
	return &leadRepo{db: GetDB()}
})

func (r *leadRepo) FindSendable(ctx context.Context, id uint64) (*entity.Lead, error) {
	lead, err := gorm.G[*entity.Lead](r.db).
		Where("id = ? AND connection_status = ? AND connection_sent IS NULL", id, entity.ConnectionStatusWaitingForReview).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return lead, nil
}

func (r *leadRepo) ExistsSending(ctx context.Context) (bool, error) {
	count, err := gorm.G[entity.Lead](r.db).
		Where("connection_status = ?", entity.ConnectionStatusSending).
		Count(ctx, "*")
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *leadRepo) ListAll(ctx context.Context, limit int) ([]*entity.Lead, error) {
	return gorm.G[*entity.Lead](r.db).Order("id").Limit(limit).Find(ctx)
}

func (r *leadRepo) ListReady(ctx context.Context, limit int) ([]*entity.Lead, error) {
	return gorm.G[*entity.Lead](r.db).
		Where("connection_status = ? AND connection_sent IS NULL", entity.ConnectionStatusWaitingForReview).
		Order("id").
		Limit(limit).
		Find(ctx)
}

func (r *leadRepo) Count(ctx context.Context) (int64, error) {
	return gorm.G[entity.Lead](r.db).Count(ctx, "*")
}

func (r *leadRepo) CountSent(ctx context.Context) (int64, error) {
	return gorm.G[entity.Lead](r.db).Where("connection_sent = ?", 1).Count(ctx, "*")
}

type profileRepo struct {
	db *gorm.DB
}

var getProfileRepo = generic.Once(func() repo.ProfileRepo {
	return &profileRepo{db: GetDB()}
})

func (r *profileRepo) ListAll(ctx context.Context, limit int) ([]*entity.Profile, error) {
	return gorm.G[*entity.Profile](r.db).Order("id").Limit(limit).Find(ctx)
}

func (r *profileRepo) Count(ctx context.Context) (int64, error) {
	return gorm.G[entity.Profile](r.db).Count(ctx, "*")
}
