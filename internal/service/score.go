package service

import "github.com/anamikapanwar73/proctored-exam-system/internal/model"

// PassThreshold is the fraction of correct answers needed to pass.
const PassThreshold = 0.5

// Percentage returns score/total as a percentage, 0 when nothing was scored.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// Passed reports whether an attempt met the pass threshold. An attempt with
// no scored questions never passes.
func Passed(score, total int) bool {
	return total > 0 && float64(score) >= PassThreshold*float64(total)
}

// scoreAnswers counts questions found and answers that exactly match the
// stored correct option. Answers for questions not in the slice are ignored.
func scoreAnswers(questions []model.Question, answers map[uint]string) (score, total int) {
	for _, q := range questions {
		total++
		if submitted, ok := answers[q.ID]; ok && submitted == q.CorrectOption {
			score++
		}
	}
	return score, total
}
