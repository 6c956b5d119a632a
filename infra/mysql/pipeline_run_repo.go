package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mbeoliero/leadgen/domain/entity"
	"github.com/mbeoliero/leadgen/domain/repo"
	"github.com/mbeoliero/leadgen/pkg/generic"
)

type pipelineRunRepo struct {
	db *gorm.DB
}

var getPipelineRunRepo = generic.Once(func() repo.PipelineRunRepo {
	return &pipelineRunRepo{db: GetDB()}
})

func (r *pipelineRunRepo) Create(ctx context.Context, run *entity.PipelineRun) error {
	return gorm.G[entity.PipelineRun](r.db).Create(ctx, run)
}

func (r *pipelineRunRepo) FindLatest(ctx context.Context) (*entity.PipelineRun, error) {
	run, err := gorm.G[*entity.PipelineRun](r.db).Order("id DESC").First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return run, nil
}
