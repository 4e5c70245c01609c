package dto

// AddQuestionForm mirrors the admin "add question" form. The correct option
// is free text and is not checked against the four choices.
type AddQuestionForm struct {
	QuestionText  string `form:"question_text" binding:"required"`
	OptionA       string `form:"option_a"`
	OptionB       string `form:"option_b"`
	OptionC       string `form:"option_c"`
	OptionD       string `form:"option_d"`
	CorrectOption string `form:"correct_option"`
	Topic         string `form:"topic"`
}

func (f AddQuestionForm) Options() []string {
	return []string{f.OptionA, f.OptionB, f.OptionC, f.OptionD}
}

type DraftQuestionForm struct {
	Topic string `form:"topic" binding:"required"`
}

// QuestionView is a question as shown on the admin dashboard.
type QuestionView struct {
	ID            uint
	QuestionText  string
	Options       []string
	OptionsRaw    string // set when the stored options could not be decoded
	CorrectOption string
	Topic         string
}

// ExamQuestionView is a question as presented to a student; it never
// carries the correct option.
type ExamQuestionView struct {
	ID           uint
	QuestionText string
	Options      []string
}

// QuestionDraft is a generated question proposed to an admin for review.
type QuestionDraft struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
	Topic         string   `json:"topic"`
}
