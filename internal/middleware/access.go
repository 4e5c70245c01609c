package middleware

import (
	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/anamikapanwar73/proctored-exam-system/internal/session"
)

const (
	LoginPath   = "/login"
	AdminHome   = "/admin"
	StudentHome = "/student"
)

type Outcome int

const (
	Allowed Outcome = iota
	DeniedAnonymous
	DeniedWrongRole
)

func (o Outcome) String() string {
	switch o {
	case Allowed:
		return "allowed"
	case DeniedAnonymous:
		return "denied_anonymous"
	case DeniedWrongRole:
		return "denied_wrong_role"
	}
	return "unknown"
}

// Decision is the result of a role check. Redirect is empty when the request
// may proceed.
type Decision struct {
	Outcome  Outcome
	Identity *session.Identity
	Redirect string
}

// Check decides whether identity may use a route that requires role.
// A student on someone else's page is sent back to their own dashboard;
// any other mismatch goes to the login page.
func Check(identity *session.Identity, required model.Role) Decision {
	if identity == nil {
		return Decision{Outcome: DeniedAnonymous, Redirect: LoginPath}
	}
	if identity.Role != required {
		redirect := LoginPath
		if identity.Role == model.RoleStudent {
			redirect = StudentHome
		}
		return Decision{Outcome: DeniedWrongRole, Identity: identity, Redirect: redirect}
	}
	return Decision{Outcome: Allowed, Identity: identity}
}

// HomeFor is where a freshly authenticated user lands.
func HomeFor(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return AdminHome
	case model.RoleStudent:
		return StudentHome
	}
	return LoginPath
}
