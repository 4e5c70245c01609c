package repository

import (
	"context"
	"errors"

	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsWithRole(ctx context.Context, role model.Role) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

// FindByUsername returns (nil, nil) when no user has that exact username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsWithRole(ctx context.Context, role model.Role) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("role = ?", role).Count(&count).Error
	return count > 0, err
}
