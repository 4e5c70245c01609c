package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

type claims struct {
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTStore keeps the identity inside an HMAC-signed token. Revoke is a no-op;
// logging out relies on the cookie being cleared.
type JWTStore struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTStore(secret string, ttl time.Duration) *JWTStore {
	return &JWTStore{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *JWTStore) Issue(_ context.Context, id Identity) (string, error) {
	now := s.now()
	c := claims{
		Username: id.Username,
		Role:     id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatUint(uint64(id.UserID), 10),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

func (s *JWTStore) Resolve(_ context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, nil
	}
	userID, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return nil, nil
	}
	return &Identity{UserID: uint(userID), Username: c.Username, Role: c.Role}, nil
}

func (s *JWTStore) Revoke(context.Context, string) error {
	return nil
}
