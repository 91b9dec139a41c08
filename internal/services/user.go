package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"attendancehub/internal/domain"
)

type userService struct {
	userRepo       domain.UserRepository
	contextTimeout time.Duration
	logger         *slog.Logger
}

// NewUserService creates a UserService backed by userRepo.
func NewUserService(userRepo domain.UserRepository, timeout time.Duration, logger *slog.Logger) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		contextTimeout: timeout,
		logger:         logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, id, orgName, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	id = strings.TrimSpace(id)
	var problems []string
	if !isEmail(id) {
		problems = append(problems, "user_id must be an email address")
	}
	if !alphanumericRegexp.MatchString(orgName) {
		problems = append(problems, "org_name must be alphanumeric")
	}
	if !alphanumericRegexp.MatchString(username) {
		problems = append(problems, "username must be alphanumeric")
	}
	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems...)
	}

	user := domain.NewUser(id, orgName, username, time.Now().UTC())
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("user %s already exists: %w", id, domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("create user: %w", asInvalidInput(err))
	}
	s.logger.Info("user created", "user_id", id)
	return s.GetUser(ctx, id)
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	id = strings.TrimSpace(id)
	if !isEmail(id) {
		return nil, domain.NewValidationError("user_id must be an email address")
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
