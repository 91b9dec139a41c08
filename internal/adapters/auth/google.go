package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"attendancehub/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenInfoURL is Google's ID token introspection endpoint.
const DefaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

type googleClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

type tokenInfo struct {
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Audience      string `json:"aud"`
}

type googleIdentityProvider struct {
	client       *http.Client
	clientID     string
	tokenInfoURL string
	now          func() time.Time
}

// NewGoogleIdentityProvider returns an IdentityProvider for Google sign-in ID tokens.
// Tokens are checked locally for shape, audience and expiry before the
// tokeninfo round trip. An empty clientID skips the audience check.
func NewGoogleIdentityProvider(client *http.Client, clientID, tokenInfoURL string) domain.IdentityProvider {
	if client == nil {
		client = http.DefaultClient
	}
	if tokenInfoURL == "" {
		tokenInfoURL = DefaultTokenInfoURL
	}
	return &googleIdentityProvider{
		client:       client,
		clientID:     clientID,
		tokenInfoURL: tokenInfoURL,
		now:          time.Now,
	}
}

func (p *googleIdentityProvider) Resolve(ctx context.Context, token string) (string, error) {
	claims := &googleClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parse id token: %v: %w", err, domain.ErrAuthMismatch)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(p.now()) {
		return "", fmt.Errorf("id token expired: %w", domain.ErrAuthMismatch)
	}
	if p.clientID != "" && !slices.Contains(claims.Audience, p.clientID) {
		return "", fmt.Errorf("id token audience mismatch: %w", domain.ErrAuthMismatch)
	}

	info, err := p.fetchTokenInfo(ctx, token)
	if err != nil {
		return "", err
	}
	if p.clientID != "" && info.Audience != p.clientID {
		return "", fmt.Errorf("tokeninfo audience mismatch: %w", domain.ErrAuthMismatch)
	}
	if info.EmailVerified != "true" {
		return "", fmt.Errorf("email not verified: %w", domain.ErrAuthMismatch)
	}
	email := strings.ToLower(strings.TrimSpace(info.Email))
	if email == "" || email != strings.ToLower(claims.Email) {
		return "", fmt.Errorf("tokeninfo email mismatch: %w", domain.ErrAuthMismatch)
	}
	return email, nil
}

func (p *googleIdentityProvider) fetchTokenInfo(ctx context.Context, token string) (*tokenInfo, error) {
	u := p.tokenInfoURL + "?" + url.Values{"id_token": {token}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call tokeninfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo returned status %d: %w", resp.StatusCode, domain.ErrAuthMismatch)
	}
	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}
	return &info, nil
}
