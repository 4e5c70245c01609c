package main

import (
	"context"
	"net/http"
	"time"

	"github.com/anamikapanwar73/proctored-exam-system/config"
	"github.com/anamikapanwar73/proctored-exam-system/database"
	_ "github.com/anamikapanwar73/proctored-exam-system/docs" // Swagger docs
	"github.com/anamikapanwar73/proctored-exam-system/internal/controller"
	adminctrl "github.com/anamikapanwar73/proctored-exam-system/internal/controller/admin"
	authctrl "github.com/anamikapanwar73/proctored-exam-system/internal/controller/auth"
	"github.com/anamikapanwar73/proctored-exam-system/internal/controller/common"
	studentctrl "github.com/anamikapanwar73/proctored-exam-system/internal/controller/student"
	"github.com/anamikapanwar73/proctored-exam-system/internal/logger"
	"github.com/anamikapanwar73/proctored-exam-system/internal/repository"
	"github.com/anamikapanwar73/proctored-exam-system/internal/service"
	"github.com/anamikapanwar73/proctored-exam-system/internal/session"
	"github.com/anamikapanwar73/proctored-exam-system/internal/view"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Proctored Exam System
// @version 1.0
// @description Server-rendered exam administration: admins author multiple-choice questions and review results, students register, sit the exam and track their scores.
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(appOptions())

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func appOptions() fx.Option {
	return fx.Options(
		fx.NopLogger,

		// Core
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			session.NewStore,
			common.NewCookies,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewResultRepository,
		),

		// Services
		fx.Provide(
			func(userRepo repository.UserRepository, cfg *config.Config) service.AuthService {
				return service.NewAuthService(userRepo, cfg.PasswordCost)
			},
			service.NewAdminExamService,
			service.NewStudentExamService,
			service.NewGeminiQuestionService,
		),

		// Controllers
		fx.Provide(
			authctrl.NewAuthController,
			adminctrl.NewAdminController,
			studentctrl.NewStudentController,
			controller.NewController,
		),

		fx.Invoke(BootstrapDatabase),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

func NewGinEngine(cfg *config.Config) (*gin.Engine, error) {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(corsConfig(cfg.Server.CORSAllowedOrigins)))

	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	// Credentials are only allowed for an explicit origin list.
	if allowsAnyOrigin(origins) {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	}
	return c
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return len(origins) == 0
}

// BootstrapDatabase migrates the schema and seeds the default admin. An
// unreachable database is logged and the step skipped so the server still
// comes up.
func BootstrapDatabase(db *gorm.DB, authService service.AuthService, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := database.Ping(ctx, db); err != nil {
		log.Error().Err(err).Str("driver", cfg.Database.Driver).Msg("Database unreachable, skipping migrations and admin seed")
		return nil
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	if _, err := authService.EnsureDefaultAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Error().Err(err).Msg("Failed to seed default admin")
	}
	return nil
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ctrl *controller.Controller,
) {
	ctrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}
