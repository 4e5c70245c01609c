package auth

import (
	"errors"
	"net/http"

	"github.com/anamikapanwar73/proctored-exam-system/internal/controller/common"
	"github.com/anamikapanwar73/proctored-exam-system/internal/dto"
	"github.com/anamikapanwar73/proctored-exam-system/internal/middleware"
	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/anamikapanwar73/proctored-exam-system/internal/service"
	"github.com/anamikapanwar73/proctored-exam-system/internal/session"
	"github.com/anamikapanwar73/proctored-exam-system/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const invalidLoginMessage = "Invalid username or password."

type AuthController struct {
	authService service.AuthService
	sessions    session.Store
	cookies     *common.Cookies
}

func NewAuthController(authService service.AuthService, sessions session.Store, cookies *common.Cookies) *AuthController {
	return &AuthController{authService: authService, sessions: sessions, cookies: cookies}
}

// Index godoc
// @Summary Landing redirect
// @Description Sends admins to /admin, students to /student and everyone else to /login.
// @Tags Auth
// @Success 302
// @Router / [get]
func (c *AuthController) Index(ctx *gin.Context) {
	target := middleware.LoginPath
	if identity := middleware.CurrentIdentity(ctx); identity != nil {
		target = middleware.HomeFor(identity.Role)
	}
	ctx.Redirect(http.StatusFound, target)
}

// LoginPage godoc
// @Summary Login form
// @Tags Auth
// @Produce html
// @Success 200
// @Router /login [get]
func (c *AuthController) LoginPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, view.LoginPage, common.Page(ctx, "Login", nil))
}

// Login godoc
// @Summary Sign in
// @Description Verifies the credentials and sets the session cookie. Unknown users and wrong passwords get the same message.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302 "Redirect to the role's dashboard"
// @Failure 401 "Login form with an error message"
// @Failure 500 "Store failure"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var form dto.CredentialsForm
	if err := ctx.ShouldBind(&form); err != nil {
		log.Warn().Err(err).Msg("Login: failed to bind form")
	}

	user, err := c.authService.VerifyLogin(ctx.Request.Context(), form.Username, form.Password)
	if err != nil {
		log.Error().Err(err).Str("username", form.Username).Msg("Login: service error")
		common.RenderError(ctx, http.StatusInternalServerError, "Sign-in is temporarily unavailable. Please try again later.")
		return
	}
	if user == nil {
		ctx.HTML(http.StatusUnauthorized, view.LoginPage, common.Page(ctx, "Login", gin.H{
			"Message":  invalidLoginMessage,
			"Username": form.Username,
		}))
		return
	}

	if !c.startSession(ctx, user) {
		common.RenderError(ctx, http.StatusInternalServerError, "Could not start your session. Please try again.")
		return
	}
	log.Info().Uint("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	ctx.Redirect(http.StatusFound, middleware.HomeFor(user.Role))
}

// RegisterPage godoc
// @Summary Student registration form
// @Tags Auth
// @Produce html
// @Success 200
// @Router /register [get]
func (c *AuthController) RegisterPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, view.RegisterPage, common.Page(ctx, "Student Registration", nil))
}

// Register godoc
// @Summary Register a student
// @Description Creates a student account and signs it in.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302 "Redirect to /student"
// @Failure 400 "Missing username or password"
// @Failure 409 "Username already exists"
// @Failure 500 "Store failure"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var form dto.CredentialsForm
	if err := ctx.ShouldBind(&form); err != nil {
		log.Warn().Err(err).Msg("Register: failed to bind form")
	}

	user, err := c.authService.RegisterStudent(ctx.Request.Context(), form.Username, form.Password)
	if err != nil {
		status, message := registrationFailure(err)
		ctx.HTML(status, view.RegisterPage, common.Page(ctx, "Student Registration", gin.H{
			"Message":  message,
			"Username": form.Username,
		}))
		return
	}

	log.Info().Uint("userID", user.ID).Str("username", user.Username).Msg("Student registered")
	if !c.startSession(ctx, user) {
		ctx.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}
	ctx.Redirect(http.StatusFound, middleware.StudentHome)
}

func registrationFailure(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		return http.StatusBadRequest, "Username and password are required."
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, "Password is too long."
	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict, "Username already exists. Please choose another."
	default:
		log.Error().Err(err).Msg("Register: service error")
		return http.StatusInternalServerError, "Registration failed. Please try again later."
	}
}

// Logout godoc
// @Summary Sign out
// @Tags Auth
// @Success 302 "Redirect to /login"
// @Router /logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	if token, err := ctx.Cookie(session.CookieName); err == nil && token != "" {
		if err := c.sessions.Revoke(ctx.Request.Context(), token); err != nil {
			log.Warn().Err(err).Msg("Logout: failed to revoke session")
		}
	}
	c.cookies.ClearSession(ctx)
	ctx.Redirect(http.StatusFound, middleware.LoginPath)
}

func (c *AuthController) startSession(ctx *gin.Context, user *model.User) bool {
	token, err := c.sessions.Issue(ctx.Request.Context(), session.IdentityOf(user))
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("startSession: failed to issue session")
		return false
	}
	c.cookies.SetSession(ctx, token)
	return true
}
