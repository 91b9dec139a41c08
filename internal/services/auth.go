package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"attendancehub/internal/domain"
)

type authService struct {
	signer         domain.CredentialSigner
	testIdentities domain.TestIdentities
	provider       domain.IdentityProvider
	contextTimeout time.Duration
	logger         *slog.Logger
}

// NewAuthService creates an AuthService. provider may be nil, in which case only
// test identities can sign in.
func NewAuthService(signer domain.CredentialSigner, testIdentities domain.TestIdentities, provider domain.IdentityProvider, timeout time.Duration, logger *slog.Logger) domain.AuthService {
	return &authService{
		signer:         signer,
		testIdentities: testIdentities,
		provider:       provider,
		contextTimeout: timeout,
		logger:         logger,
	}
}

func (s *authService) SignIn(ctx context.Context, token string) (*domain.SignInResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.NewValidationError("token is required")
	}

	userID, err := s.resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	key, err := s.signer.Sign(userID)
	if err != nil {
		return nil, fmt.Errorf("sign access key: %w", err)
	}
	return &domain.SignInResult{UserID: userID, AccessKey: key}, nil
}

func (s *authService) resolve(ctx context.Context, token string) (string, error) {
	if s.testIdentities != nil {
		if id, ok := s.testIdentities.ResolveTestIdentity(token); ok {
			s.logger.Debug("signed in with test identity", "user_id", id)
			return id, nil
		}
	}
	if s.provider == nil {
		return "", fmt.Errorf("no identity provider configured: %w", domain.ErrAuthMismatch)
	}
	id, err := s.provider.Resolve(ctx, token)
	if err != nil {
		s.logger.Info("identity token rejected", "error", err)
		return "", err
	}
	return normalizeEmail(id), nil
}
