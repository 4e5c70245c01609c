package service

import (
	"context"

	"github.com/anamikapanwar73/proctored-exam-system/internal/dto"
	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/anamikapanwar73/proctored-exam-system/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type AdminExamService interface {
	AddQuestion(ctx context.Context, text string, options []string, correctOption, topic string) error
	ListAllQuestions(ctx context.Context) ([]dto.QuestionView, error)
	DeleteQuestion(ctx context.Context, id uint) error
	ListAllResults(ctx context.Context) ([]dto.ResultView, error)
}

type adminExamService struct {
	questionRepo repository.QuestionRepository
	resultRepo   repository.ResultRepository
}

func NewAdminExamService(questionRepo repository.QuestionRepository, resultRepo repository.ResultRepository) AdminExamService {
	return &adminExamService{questionRepo: questionRepo, resultRepo: resultRepo}
}

func (s *adminExamService) AddQuestion(ctx context.Context, text string, options []string, correctOption, topic string) error {
	if topic == "" {
		topic = model.DefaultTopic
	}
	raw, err := model.EncodeOptions(options)
	if err != nil {
		return storeError("encode options", err)
	}
	question := model.Question{
		QuestionText:  text,
		OptionsJSON:   raw,
		CorrectOption: correctOption,
		Topic:         topic,
	}
	if err := s.questionRepo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("AddQuestion: failed to insert question")
		return storeError("add question", err)
	}
	log.Info().Uint("questionID", question.ID).Str("topic", topic).Msg("Question added")
	return nil
}

func (s *adminExamService) ListAllQuestions(ctx context.Context) ([]dto.QuestionView, error) {
	questions, err := s.questionRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListAllQuestions: repository error")
		return nil, storeError("list questions", err)
	}

	views := make([]dto.QuestionView, 0, len(questions))
	for i := range questions {
		var view dto.QuestionView
		copier.Copy(&view, &questions[i])
		options, err := questions[i].Options()
		if err != nil {
			log.Warn().Err(err).Uint("questionID", questions[i].ID).Msg("ListAllQuestions: stored options are not a JSON array")
			view.OptionsRaw = string(questions[i].OptionsJSON)
		} else {
			view.Options = options
		}
		views = append(views, view)
	}
	return views, nil
}

// DeleteQuestion is idempotent: deleting a missing id succeeds.
func (s *adminExamService) DeleteQuestion(ctx context.Context, id uint) error {
	affected, err := s.questionRepo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("DeleteQuestion: repository error")
		return storeError("delete question", err)
	}
	if affected == 0 {
		log.Info().Uint("questionID", id).Msg("DeleteQuestion: no question with that id")
	}
	return nil
}

func (s *adminExamService) ListAllResults(ctx context.Context) ([]dto.ResultView, error) {
	rows, err := s.resultRepo.FindAllWithUsername(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListAllResults: repository error")
		return nil, storeError("list results", err)
	}
	views := make([]dto.ResultView, 0, len(rows))
	for i := range rows {
		views = append(views, resultView(&rows[i].Result, rows[i].Username))
	}
	return views, nil
}

func resultView(r *model.Result, username string) dto.ResultView {
	var view dto.ResultView
	copier.Copy(&view, r)
	view.Username = username
	view.Passed = Passed(r.Score, r.TotalQuestions)
	return view
}
