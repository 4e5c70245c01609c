package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anamikapanwar73/proctored-exam-system/config"
	"github.com/anamikapanwar73/proctored-exam-system/internal/dto"
	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// draftOptionCount matches the four option fields of the admin form.
const draftOptionCount = 4

var ErrDraftUnavailable = errors.New("question drafting is not configured")

// QuestionDraftService proposes a multiple-choice question for a topic. The
// draft is only shown to the admin; nothing is stored.
type QuestionDraftService interface {
	Available() bool
	DraftQuestion(ctx context.Context, topic string) (*dto.QuestionDraft, error)
}

type geminiQuestionService struct {
	model *genai.GenerativeModel
}

func NewGeminiQuestionService(cfg *config.Config) (QuestionDraftService, error) {
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question drafting is disabled.")
		return &geminiQuestionService{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	m := client.GenerativeModel(cfg.Gemini.Model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.7)
	return &geminiQuestionService{model: m}, nil
}

func (s *geminiQuestionService) Available() bool {
	return s.model != nil
}

const draftPrompt = `You write questions for a multiple-choice exam.
Write one question about the topic below with exactly 4 answer options, exactly one of which is correct.
Respond with ONLY a JSON object of the form:
{"question_text": "...", "options": ["...", "...", "...", "..."], "correct_option": "<one of the options, copied exactly>", "topic": "<short topic label>"}

Topic: %s`

func (s *geminiQuestionService) DraftQuestion(ctx context.Context, topic string) (*dto.QuestionDraft, error) {
	if !s.Available() {
		return nil, ErrDraftUnavailable
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrValidation)
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(draftPrompt, topic)))
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("DraftQuestion: Gemini request failed")
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	var sb strings.Builder
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	draft, err := parseQuestionDraft(sb.String(), topic)
	if err != nil {
		log.Warn().Err(err).Str("topic", topic).Msg("DraftQuestion: unusable model output")
		return nil, err
	}
	return draft, nil
}

// parseQuestionDraft decodes the model's JSON (optionally wrapped in a code
// fence) and normalizes it to exactly four options.
func parseQuestionDraft(raw, fallbackTopic string) (*dto.QuestionDraft, error) {
	var draft dto.QuestionDraft
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	draft.QuestionText = strings.TrimSpace(draft.QuestionText)
	if draft.QuestionText == "" {
		return nil, errors.New("draft has no question text")
	}

	options := make([]string, 0, draftOptionCount)
	for _, o := range draft.Options {
		if o = strings.TrimSpace(o); o != "" && len(options) < draftOptionCount {
			options = append(options, o)
		}
	}
	if len(options) < 2 {
		return nil, errors.New("draft has fewer than two options")
	}
	for len(options) < draftOptionCount {
		options = append(options, "")
	}
	draft.Options = options
	draft.CorrectOption = strings.TrimSpace(draft.CorrectOption)

	if strings.TrimSpace(draft.Topic) == "" {
		draft.Topic = fallbackTopic
	}
	if draft.Topic == "" {
		draft.Topic = model.DefaultTopic
	}
	return &draft, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
