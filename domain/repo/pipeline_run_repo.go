package repo

import (
	"context"

	"github.com/mbeoliero/leadgen/domain/entity"
)

// PipelineRunRepo 流水线执行记录仓储接口。记录由外部自动化写入，
// 本服务只读最新一条判断是否在跑。
type PipelineRunRepo interface {
	// Create 创建执行记录
	Create(ctx context.Context, run *entity.PipelineRun) error

	// FindLatest returns the most recently created run (highest id), or nil
	// when no run exists yet.
	FindLatest(ctx context.Context) (*entity.PipelineRun, error)
}

var pipelineRunRepo PipelineRunRepo

func SetPipelineRunRepo(r PipelineRunRepo) {
	pipelineRunRepo = r
}

func GetPipelineRunRepo() PipelineRunRepo {
	return pipelineRunRepo
}
