package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/anamikapanwar73/proctored-exam-system/internal/model"
	"github.com/anamikapanwar73/proctored-exam-system/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	VerifyLogin(ctx context.Context, username, password string) (*model.User, error)
	RegisterStudent(ctx context.Context, username, password string) (*model.User, error)
	EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error)
}

type authService struct {
	userRepo  repository.UserRepository
	cost      int
	dummyHash []byte
}

func NewAuthService(userRepo repository.UserRepository, cost int) AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	// Compared against when the username is unknown so both failure paths do
	// the same amount of work.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	return &authService{userRepo: userRepo, cost: cost, dummyHash: dummy}
}

func (s *authService) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("FindUserByUsername: repository error")
		return nil, storeError("find user", err)
	}
	return user, nil
}

// VerifyLogin returns the user only when the password matches. Unknown
// usernames and wrong passwords both yield (nil, nil).
func (s *authService) VerifyLogin(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}
	return user, nil
}

func (s *authService) RegisterStudent(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	existing, err := s.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}
	return s.createUser(ctx, username, password, model.RoleStudent)
}

// EnsureDefaultAdmin creates an admin account when none exists and reports
// whether it did.
func (s *authService) EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error) {
	exists, err := s.userRepo.ExistsWithRole(ctx, model.RoleAdmin)
	if err != nil {
		return false, storeError("check admin", err)
	}
	if exists {
		return false, nil
	}
	if _, err := s.createUser(ctx, username, password, model.RoleAdmin); err != nil {
		return false, err
	}
	log.Info().Str("username", username).Msg("Default admin created")
	return true, nil
}

func (s *authService) createUser(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: password must be at most 72 bytes", ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{Username: username, PasswordHash: string(hash), Role: role}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		log.Error().Err(err).Str("username", username).Msg("createUser: failed to insert user")
		return nil, storeError("create user", err)
	}
	return user, nil
}
