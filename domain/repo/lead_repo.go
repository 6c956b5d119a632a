package repo

import (
	"context"

	"github.com/mbeoliero/leadgen/domain/entity"
)

// LeadRepo 审核通过线索仓储接口
type LeadRepo interface {
	// FindSendable returns the lead only if it is in the sendable state
	// (waiting_for_review, invite not yet sent); nil otherwise.
	FindSendable(ctx context.Context, id uint64) (*entity.Lead, error)

	// ExistsSending reports whether any lead is currently in the "sending"
	// state. This is the global invite send lock.
	ExistsSending(ctx context.Context) (bool, error)

	// ListAll 查询全部审核通过的线索
	ListAll(ctx context.Context, limit int) ([]*entity.Lead, error)

	// ListReady 查询可发送的线索
	ListReady(ctx context.Context, limit int) ([]*entity.Lead, error)

	// Count 统计审核通过数量
	Count(ctx context.Context) (int64, error)

	// CountSent 统计已发出邀请数量
	CountSent(ctx context.Context) (int64, error)
}

// ProfileRepo 抓取档案仓储接口
type ProfileRepo interface {
	// ListAll 查询全部抓取档案
	ListAll(ctx context.Context, limit int) ([]*entity.Profile, error)

	// Count 统计抓取档案数量
	Count(ctx context.Context) (int64, error)
}

var (
	leadRepo    LeadRepo
	profileRepo ProfileRepo
)

func SetLeadRepo(r LeadRepo) {
	leadRepo = r
}

func GetLeadRepo() LeadRepo {
	return leadRepo
}

func SetProfileRepo(r ProfileRepo) {
	profileRepo = r
}

func GetProfileRepo() ProfileRepo {
	return profileRepo
}
