package common

import (
	"net/http"
	"time"

	"github.com/anamikapanwar73/proctored-exam-system/config"
	"github.com/anamikapanwar73/proctored-exam-system/internal/middleware"
	"github.com/anamikapanwar73/proctored-exam-system/internal/session"
	"github.com/anamikapanwar73/proctored-exam-system/internal/view"
	"github.com/gin-gonic/gin"
)

const flashCookie = "exam_flash"

// Page builds template data with the fields every layout needs.
func Page(ctx *gin.Context, title string, data gin.H) gin.H {
	page := gin.H{"Title": title, "Identity": middleware.CurrentIdentity(ctx)}
	for k, v := range data {
		page[k] = v
	}
	return page
}

// RenderError shows the generic error page.
func RenderError(ctx *gin.Context, status int, message string) {
	ctx.HTML(status, view.ErrorPage, Page(ctx, "Error", gin.H{"Message": message}))
}

// Cookies writes and clears the session and flash cookies.
type Cookies struct {
	ttl    time.Duration
	secure bool
}

func NewCookies(cfg *config.Config) *Cookies {
	return &Cookies{ttl: cfg.Session.TTL, secure: cfg.Session.CookieSecure}
}

func (c *Cookies) SetSession(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(session.CookieName, token, int(c.ttl.Seconds()), "/", "", c.secure, true)
}

func (c *Cookies) ClearSession(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(session.CookieName, "", -1, "/", "", c.secure, true)
}

// SetFlash stores a one-shot message shown after the next redirect.
func (c *Cookies) SetFlash(ctx *gin.Context, message string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(flashCookie, message, 60, "/", "", c.secure, true)
}

// PopFlash returns the pending message, if any, and clears it.
func (c *Cookies) PopFlash(ctx *gin.Context) string {
	message, err := ctx.Cookie(flashCookie)
	if err != nil || message == "" {
		return ""
	}
	ctx.SetCookie(flashCookie, "", -1, "/", "", c.secure, true)
	return message
}
