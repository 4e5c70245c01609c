package service

import (
	"context"
	"time"

	"github.com/anamikapanwar73/proctored-exam-system/internal/dto"
	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/anamikapanwar73/proctored-exam-system/internal/repository"
	"github.com/rs/zerolog/log"
)

type StudentExamService interface {
	ListExamQuestions(ctx context.Context) ([]dto.ExamQuestionView, error)
	SubmitExam(ctx context.Context, userID uint, answers map[uint]string) (score int, totalQuestions int, err error)
	ListStudentResults(ctx context.Context, userID uint) ([]dto.ResultView, error)
}

type studentExamService struct {
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
	now          func() time.Time
}

func NewStudentExamService(questionRepo repository.QuestionRepository, resultRepo repository.ResultRepository) StudentExamService {
	return &studentExamService{questionRepo: questionRepo, resultRepo: resultRepo, now: time.Now}
}

// ListExamQuestions returns every question without its correct option.
// Questions whose options cannot be decoded are left out.
func (s *studentExamService) ListExamQuestions(ctx context.Context) ([]dto.ExamQuestionView, error) {
	questions, err := s.questionRepo.FindForExam(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListExamQuestions: repository error")
		return nil, storeError("list exam questions", err)
	}

	views := make([]dto.ExamQuestionView, 0, len(questions))
	for i := range questions {
		options, err := questions[i].Options()
		if err != nil {
			log.Error().Err(err).Uint("questionID", questions[i].ID).Msg("ListExamQuestions: cannot decode options, skipping question")
			continue
		}
		views = append(views, dto.ExamQuestionView{
			ID:           questions[i].ID,
			QuestionText: questions[i].QuestionText,
			Options:      options,
		})
	}
	return views, nil
}

// SubmitExam scores answers against the questions that still exist and
// records a Result. The score is returned even if recording fails.
func (s *studentExamService) SubmitExam(ctx context.Context, userID uint, answers map[uint]string) (int, int, error) {
	if len(answers) == 0 {
		return 0, 0, nil
	}

	ids := make([]uint, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	questions, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitExam: failed to load questions")
		return 0, 0, storeError("load submitted questions", err)
	}

	score, total := scoreAnswers(questions, answers)
	if skipped := len(answers) - total; skipped > 0 {
		log.Warn().Uint("userID", userID).Int("skipped", skipped).Msg("SubmitExam: answers for unknown questions ignored")
	}

	result := model.Result{
		UserID:         userID,
		Score:          score,
		TotalQuestions: total,
		Timestamp:      s.now().UTC(),
	}
	if err := s.resultRepo.Create(ctx, &result); err != nil {
		log.Error().Err(err).
			Uint("userID", userID).
			Int("score", score).
			Int("totalQuestions", total).
			Msg("SubmitExam: failed to save result, returning score anyway")
	}
	return score, total, nil
}

func (s *studentExamService) ListStudentResults(ctx context.Context, userID uint) ([]dto.ResultView, error) {
	results, err := s.resultRepo.FindByUserID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListStudentResults: repository error")
		return nil, storeError("list student results", err)
	}
	views := make([]dto.ResultView, 0, len(results))
	for i := range results {
		views = append(views, resultView(&results[i], ""))
	}
	return views, nil
}
