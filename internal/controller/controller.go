package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/anamikapanwar73/proctored-exam-system/database"
	adminctrl "github.com/anamikapanwar73/proctored-exam-system/internal/controller/admin"
	authctrl "github.com/anamikapanwar73/proctored-exam-system/internal/controller/auth"
	studentctrl "github.com/anamikapanwar73/proctored-exam-system/internal/controller/student"
	"github.com/anamikapanwar73/proctored-exam-system/internal/dto"
	"github.com/anamikapanwar73/proctored-exam-system/internal/middleware"
	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/anamikapanwar73/proctored-exam-system/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Controller struct {
	auth     *authctrl.AuthController
	admin    *adminctrl.AdminController
	student  *studentctrl.StudentController
	sessions session.Store
	db       *gorm.DB
}

func NewController(
	auth *authctrl.AuthController,
	admin *adminctrl.AdminController,
	student *studentctrl.StudentController,
	sessions session.Store,
	db *gorm.DB,
) *Controller {
	return &Controller{auth: auth, admin: admin, student: student, sessions: sessions, db: db}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", ctrl.HealthHandler)

	pages := router.Group("/")
	pages.Use(middleware.LoadIdentity(ctrl.sessions))
	{
		pages.GET("", ctrl.auth.Index)
		pages.GET("/login", ctrl.auth.LoginPage)
		pages.POST("/login", ctrl.auth.Login)
		pages.GET("/register", ctrl.auth.RegisterPage)
		pages.POST("/register", ctrl.auth.Register)
		pages.GET("/logout", ctrl.auth.Logout)

		admin := pages.Group("/admin", middleware.RequireRole(model.RoleAdmin))
		admin.GET("", ctrl.admin.Dashboard)
		admin.POST("/add_question", ctrl.admin.AddQuestion)
		admin.POST("/delete_question", ctrl.admin.DeleteQuestion)
		admin.POST("/draft_question", ctrl.admin.DraftQuestion)

		student := pages.Group("", middleware.RequireRole(model.RoleStudent))
		student.GET("/student", ctrl.student.Dashboard)
		student.GET("/take_exam", ctrl.student.TakeExam)
		student.POST("/submit_exam", ctrl.student.SubmitExam)
	}
}

// HealthHandler godoc
// @Summary Health check
// @Description Reports whether the database answers a ping.
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, ctrl.db); err != nil {
		log.Warn().Err(err).Msg("Health check: database unreachable")
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "ok"})
}
