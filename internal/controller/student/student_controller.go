package student

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/anamikapanwar73/proctored-exam-system/internal/controller/common"
	"github.com/anamikapanwar73/proctored-exam-system/internal/dto"
	"github.com/anamikapanwar73/proctored-exam-system/internal/middleware"
	"github.com/anamikapanwar73/proctored-exam-system/internal/service"
	"github.com/anamikapanwar73/proctored-exam-system/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const answerFieldPrefix = "question_"

type StudentController struct {
	examService service.StudentExamService
}

func NewStudentController(examService service.StudentExamService) *StudentController {
	return &StudentController{examService: examService}
}

// Dashboard godoc
// @Summary (Student) Dashboard
// @Description The caller's own results, newest first, each marked Passed or Needs Review.
// @Tags Student
// @Produce html
// @Success 200
// @Failure 302 "Not signed in as student"
// @Failure 500 "Store failure"
// @Router /student [get]
func (c *StudentController) Dashboard(ctx *gin.Context) {
	identity := middleware.CurrentIdentity(ctx)
	results, err := c.examService.ListStudentResults(ctx.Request.Context(), identity.UserID)
	if err != nil {
		common.RenderError(ctx, http.StatusInternalServerError, "Failed to load your results.")
		return
	}
	ctx.HTML(http.StatusOK, view.StudentDashboard, common.Page(ctx, "Student Dashboard", gin.H{
		"Results": results,
	}))
}

// TakeExam godoc
// @Summary (Student) Exam form
// @Description One radio group per question, named question_<id>. Correct options are never sent.
// @Tags Student
// @Produce html
// @Success 200
// @Failure 500 "Store failure"
// @Router /take_exam [get]
func (c *StudentController) TakeExam(ctx *gin.Context) {
	questions, err := c.examService.ListExamQuestions(ctx.Request.Context())
	if err != nil {
		common.RenderError(ctx, http.StatusInternalServerError, "Failed to load the exam.")
		return
	}
	ctx.HTML(http.StatusOK, view.TakeExamPage, common.Page(ctx, "Take Exam", gin.H{
		"Questions": questions,
	}))
}

// SubmitExam godoc
// @Summary (Student) Submit answers
// @Description Scores every question_<id> field against the stored correct option and records the result.
// @Tags Student
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 200 "Result page with score and percentage"
// @Failure 500 "Store failure"
// @Router /submit_exam [post]
func (c *StudentController) SubmitExam(ctx *gin.Context) {
	identity := middleware.CurrentIdentity(ctx)
	if err := ctx.Request.ParseForm(); err != nil {
		log.Warn().Err(err).Uint("userID", identity.UserID).Msg("SubmitExam: failed to parse form")
	}
	answers := parseAnswers(ctx.Request.PostForm)

	score, total, err := c.examService.SubmitExam(ctx.Request.Context(), identity.UserID, answers)
	if err != nil {
		common.RenderError(ctx, http.StatusInternalServerError, "Failed to score your exam. Please try again.")
		return
	}
	log.Info().Uint("userID", identity.UserID).Int("score", score).Int("totalQuestions", total).Msg("Exam submitted")

	ctx.HTML(http.StatusOK, view.ExamResultPage, common.Page(ctx, "Exam Results", gin.H{
		"Outcome": dto.ExamOutcome{
			Score:          score,
			TotalQuestions: total,
			Percentage:     service.Percentage(score, total),
			Passed:         service.Passed(score, total),
		},
	}))
}

// parseAnswers keeps fields named question_<id>. Ids that are not numbers,
// or not written in canonical form (question_007), are dropped.
func parseAnswers(form map[string][]string) map[uint]string {
	answers := make(map[uint]string)
	for key, values := range form {
		rest, ok := strings.CutPrefix(key, answerFieldPrefix)
		if !ok || len(values) == 0 {
			continue
		}
		id, err := strconv.ParseUint(rest, 10, 64)
		if err != nil || strconv.FormatUint(id, 10) != rest {
			continue
		}
		answers[uint(id)] = values[0]
	}
	return answers
}
