package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/anamikapanwar73/proctored-exam-system/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	admin := &session.Identity{UserID: 1, Username: "admin", Role: model.RoleAdmin}
	student := &session.Identity{UserID: 2, Username: "alice", Role: model.RoleStudent}
	stranger := &session.Identity{UserID: 3, Username: "ghost", Role: model.Role("auditor")}

	tests := []struct {
		name     string
		identity *session.Identity
		required model.Role
		outcome  Outcome
		redirect string
	}{
		{"anonymous on admin route", nil, model.RoleAdmin, DeniedAnonymous, LoginPath},
		{"anonymous on student route", nil, model.RoleStudent, DeniedAnonymous, LoginPath},
		{"student on admin route", student, model.RoleAdmin, DeniedWrongRole, StudentHome},
		{"admin on student route", admin, model.RoleStudent, DeniedWrongRole, LoginPath},
		{"unknown role", stranger, model.RoleStudent, DeniedWrongRole, LoginPath},
		{"admin on admin route", admin, model.RoleAdmin, Allowed, ""},
		{"student on student route", student, model.RoleStudent, Allowed, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Check(tt.identity, tt.required)
			assert.Equal(t, tt.outcome, d.Outcome)
			assert.Equal(t, tt.redirect, d.Redirect)
			if tt.outcome == Allowed {
				assert.Equal(t, tt.identity, d.Identity)
			}
		})
	}
}

func TestHomeFor(t *testing.T) {
	assert.Equal(t, AdminHome, HomeFor(model.RoleAdmin))
	assert.Equal(t, StudentHome, HomeFor(model.RoleStudent))
	assert.Equal(t, LoginPath, HomeFor(""))
}

func newGuardedRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LoadIdentity(store))
	r.GET("/admin", RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "admin:"+CurrentIdentity(c).Username)
	})
	r.GET("/student", RequireRole(model.RoleStudent), func(c *gin.Context) {
		c.String(http.StatusOK, "student:"+CurrentIdentity(c).Username)
	})
	return r
}

func request(t *testing.T, r http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRole(t *testing.T) {
	store := session.NewJWTStore("test-secret", time.Hour)
	r := newGuardedRouter(store)
	ctx := context.Background()

	studentToken, err := store.Issue(ctx, session.Identity{UserID: 7, Username: "alice", Role: model.RoleStudent})
	require.NoError(t, err)
	adminToken, err := store.Issue(ctx, session.Identity{UserID: 1, Username: "admin", Role: model.RoleAdmin})
	require.NoError(t, err)

	w := request(t, r, "/admin", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))

	w = request(t, r, "/admin", studentToken)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, StudentHome, w.Header().Get("Location"))

	w = request(t, r, "/student", adminToken)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))

	w = request(t, r, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin:admin", w.Body.String())

	w = request(t, r, "/student", studentToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "student:alice", w.Body.String())
}

func TestRequireRoleRejectsTamperedToken(t *testing.T) {
	store := session.NewJWTStore("test-secret", time.Hour)
	other := session.NewJWTStore("another-secret", time.Hour)
	forged, err := other.Issue(context.Background(), session.Identity{UserID: 1, Username: "admin", Role: model.RoleAdmin})
	require.NoError(t, err)

	w := request(t, newGuardedRouter(store), "/admin", forged)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}
