package student

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnswers(t *testing.T) {
	form := url.Values{
		"question_1":   {"B"},
		"question_22":  {"Paris", "Rome"},
		"question_abc": {"ignored"},
		"question_":    {"ignored"},
		"question_-3":  {"ignored"},
		"username":     {"alice"},
		"question_4":   {},
	}
	assert.Equal(t, map[uint]string{1: "B", 22: "Paris"}, parseAnswers(form))
}

func TestParseAnswersEmpty(t *testing.T) {
	assert.Empty(t, parseAnswers(url.Values{}))
}

func TestParseAnswersOnlyCanonicalIDs(t *testing.T) {
	form := url.Values{
		"question_7":   {"right"},
		"question_007": {"wrong"},
		"question_+7":  {"wrong"},
		"question_07":  {"wrong"},
	}
	for i := 0; i < 20; i++ {
		assert.Equal(t, map[uint]string{7: "right"}, parseAnswers(form))
	}
}
