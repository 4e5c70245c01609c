package repository

import (
	"context"

	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindAll(ctx context.Context) ([]model.Question, error)    // topic ASC, id ASC
	FindForExam(ctx context.Context) ([]model.Question, error) // id ASC
	FindByIDs(ctx context.Context, ids []uint) ([]model.Question, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
}

func (r *questionRepository) FindAll(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Order("topic ASC").Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindForExam(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Delete soft-deletes the question and reports how many rows changed.
// Zero rows is not an error.
func (r *questionRepository) Delete(ctx context.Context, id uint) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Question{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
