package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mbeoliero/leadgen/domain/entity"
	"github.com/mbeoliero/leadgen/domain/repo"
	"github.com/mbeoliero/leadgen/pkg/generic"
)

type userRepo struct {
	db *gorm.DB
}

var getUserRepo = generic.Once(func() repo.UserRepo {
	return &userRepo{db: GetDB()}
})

func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	return gorm.G[entity.User](r.db).Create(ctx, user)
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := gorm.G[*entity.User](r.db).Where("email = ?", email).First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	_, err := gorm.G[*entity.User](r.db).Where("email = ?", email).Update(ctx, entity.FieldPassword, passwordHash)
	return err
}

func (r *userRepo) UpdateProfile(ctx context.Context, email string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ?", email).
		Updates(fields).Error
}
