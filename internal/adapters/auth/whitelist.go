package auth

import (
	"fmt"
	"strings"

	"attendancehub/internal/domain"
)

// DefaultTestIdentities are the built-in test organizers, keyed by token.
var DefaultTestIdentities = map[string]string{
	"test-token1": "organizer1@gmail.com",
	"test-token2": "organizer2@gmail.com",
	"test-token3": "organizer3@gmail.com",
}

// Whitelist maps known test tokens to identities so dev flows skip the identity provider.
type Whitelist struct {
	byToken map[string]string
}

// NewWhitelist copies entries (token -> identity) into a new Whitelist.
func NewWhitelist(entries map[string]string) *Whitelist {
	byToken := make(map[string]string, len(entries))
	for token, id := range entries {
		byToken[token] = id
	}
	return &Whitelist{byToken: byToken}
}

var _ domain.TestIdentities = (*Whitelist)(nil)

func (w *Whitelist) IsTestIdentity(token string) bool {
	_, ok := w.ResolveTestIdentity(token)
	return ok
}

func (w *Whitelist) ResolveTestIdentity(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	id, ok := w.byToken[token]
	return id, ok
}

// ParseWhitelist parses "email=token,email=token" into token -> identity entries.
// An empty string yields DefaultTestIdentities.
func ParseWhitelist(s string) (map[string]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTestIdentities, nil
	}
	out := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, token, ok := strings.Cut(pair, "=")
		id, token = strings.TrimSpace(id), strings.TrimSpace(token)
		if !ok || id == "" || token == "" {
			return nil, fmt.Errorf("malformed test identity %q, want email=token", pair)
		}
		out[token] = id
	}
	return out, nil
}
