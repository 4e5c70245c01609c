package repository

import (
	"context"

	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(ctx context.Context, result *model.Result) error
	FindAllWithUsername(ctx context.Context) ([]model.ResultWithUsername, error)
	FindByUserID(ctx context.Context, userID uint) ([]model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(ctx context.Context, result *model.Result) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(result).Error
	})
}

// FindAllWithUsername lists every result, newest first, with the owner's username.
func (r *resultRepository) FindAllWithUsername(ctx context.Context) ([]model.ResultWithUsername, error) {
	var rows []model.ResultWithUsername
	err := r.db.WithContext(ctx).Model(&model.Result{}).
		Select("results.*, users.username AS username").
		Joins("JOIN users ON users.id = results.user_id").
		Order("results.timestamp DESC").
		Order("results.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *resultRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.WithContext(ctx).
		Where("results.user_id = ?", userID).
		Order("results.timestamp DESC").
		Order("results.id DESC").
		Find(&results).Error
	return results, err
}
