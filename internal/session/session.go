package session

import (
	"context"
	"fmt"

	"github.com/anamikapanwar73/proctored-exam-system/config"
	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// CookieName is the cookie carrying the session token.
const CookieName = "exam_session"

// Identity is the authenticated caller, resolved once per request.
type Identity struct {
	UserID   uint       `json:"user_id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

func IdentityOf(user *model.User) Identity {
	return Identity{UserID: user.ID, Username: user.Username, Role: user.Role}
}

// Store issues and resolves opaque session tokens.
type Store interface {
	Issue(ctx context.Context, id Identity) (string, error)
	// Resolve returns (nil, nil) for unknown, expired or tampered tokens.
	Resolve(ctx context.Context, token string) (*Identity, error)
	Revoke(ctx context.Context, token string) error
}

// NewStore builds the store selected by SESSION_STORE.
func NewStore(cfg *config.Config) (Store, error) {
	switch cfg.Session.Store {
	case "jwt", "":
		return NewJWTStore(cfg.Session.Secret, cfg.Session.TTL), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Using redis session store")
		return NewRedisStore(client, cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.Session.Store)
	}
}
