package repo

import (
	"context"

	"github.com/mbeoliero/leadgen/domain/entity"
)

// UserRepo 用户仓储接口
type UserRepo interface {
	// Create 创建用户
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns nil (no error) when the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdatePassword 更新密码哈希
	UpdatePassword(ctx context.Context, email string, passwordHash string) error

	// UpdateProfile updates only the provided fields (column -> value).
	UpdateProfile(ctx context.Context, email string, fields map[string]any) error
}

var userRepo UserRepo

func SetUserRepo(r UserRepo) {
	userRepo = r
}

func GetUserRepo() UserRepo {
	return userRepo
}
