package admin

import (
	"errors"
	"fmt"
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

type AdminController struct {
	examService  service.AdminExamService
	draftService service.QuestionDraftService
	cookies      *common.Cookies
}

func NewAdminController(examService service.AdminExamService, draftService service.QuestionDraftService, cookies *common.Cookies) *AdminController {
	return &AdminController{examService: examService, draftService: draftService, cookies: cookies}
}

// Dashboard godoc
// @Summary (Admin) Dashboard
// @Description Lists every question (by topic, then id) and every result (newest first).
// @Tags Admin
// @Produce html
// @Success 200
// @Failure 302 "Not signed in as admin"
// @Failure 500 "Store failure"
// @Router /admin [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	c.renderDashboard(ctx, c.cookies.PopFlash(ctx), nil)
}

func (c *AdminController) renderDashboard(ctx *gin.Context, message string, draft *dto.QuestionDraft) {
	questions, err := c.examService.ListAllQuestions(ctx.Request.Context())
	if err != nil {
		common.RenderError(ctx, http.StatusInternalServerError, "Failed to load questions.")
		return
	}
	results, err := c.examService.ListAllResults(ctx.Request.Context())
	if err != nil {
		common.RenderError(ctx, http.StatusInternalServerError, "Failed to load results.")
		return
	}

	ctx.HTML(http.StatusOK, view.AdminDashboardPage, common.Page(ctx, "Admin Dashboard", gin.H{
		"Message":        message,
		"Questions":      questions,
		"Results":        results,
		"DraftAvailable": c.draftService.Available(),
		"Draft":          draft,
	}))
}

// AddQuestion godoc
// @Summary (Admin) Add a question
// @Description The correct option is stored as typed and is not checked against the four choices.
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param question_text formData string true "Question text"
// @Param option_a formData string false "Option A"
// @Param option_b formData string false "Option B"
// @Param option_c formData string false "Option C"
// @Param option_d formData string false "Option D"
// @Param correct_option formData string false "Exact text of the correct option"
// @Param topic formData string false "Topic, defaults to General"
// @Success 302 "Redirect to /admin with a status message"
// @Router /admin/add_question [post]
func (c *AdminController) AddQuestion(ctx *gin.Context) {
	var form dto.AddQuestionForm
	if err := ctx.ShouldBind(&form); err != nil || strings.TrimSpace(form.QuestionText) == "" {
		log.Warn().Err(err).Msg("Admin AddQuestion: invalid form")
		c.redirectWithFlash(ctx, "Question text is required.")
		return
	}

	err := c.examService.AddQuestion(ctx.Request.Context(), form.QuestionText, form.Options(), form.CorrectOption, form.Topic)
	if err != nil {
		c.redirectWithFlash(ctx, "Error adding question. Check server logs.")
		return
	}
	c.redirectWithFlash(ctx, "Question added successfully!")
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Description Deleting an id that does not exist still succeeds.
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param question_id formData int true "Question ID"
// @Success 302 "Redirect to /admin with a status message"
// @Router /admin/delete_question [post]
func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.ParseUint(strings.TrimSpace(ctx.PostForm("question_id")), 10, 64)
	if err != nil {
		c.redirectWithFlash(ctx, "Invalid question ID.")
		return
	}

	if err := c.examService.DeleteQuestion(ctx.Request.Context(), uint(id)); err != nil {
		c.redirectWithFlash(ctx, fmt.Sprintf("Error deleting question ID %d.", id))
		return
	}
	c.redirectWithFlash(ctx, fmt.Sprintf("Question ID %d deleted successfully.", id))
}

// DraftQuestion godoc
// @Summary (Admin) Draft a question with Gemini
// @Description Generates a question for the topic and pre-fills the add form. Nothing is saved until the admin submits it.
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Produce html
// @Param topic formData string true "Topic"
// @Success 200 "Dashboard with the draft pre-filled"
// @Failure 302 "Redirect to /admin with an error message"
// @Router /admin/draft_question [post]
func (c *AdminController) DraftQuestion(ctx *gin.Context) {
	var form dto.DraftQuestionForm
	if err := ctx.ShouldBind(&form); err != nil {
		c.redirectWithFlash(ctx, "Enter a topic to draft a question.")
		return
	}

	draft, err := c.draftService.DraftQuestion(ctx.Request.Context(), form.Topic)
	if errors.Is(err, service.ErrDraftUnavailable) {
		c.redirectWithFlash(ctx, "Question drafting is not configured.")
		return
	}
	if err != nil {
		c.redirectWithFlash(ctx, "Could not draft a question. Check server logs.")
		return
	}
	c.renderDashboard(ctx, "Draft ready. Review it and click Add Question to save.", draft)
}

func (c *AdminController) redirectWithFlash(ctx *gin.Context, message string) {
	c.cookies.SetFlash(ctx, message)
	ctx.Redirect(http.StatusFound, middleware.AdminHome)
}
