package middleware

import (
	"context"
	"net/http"
	"strings"
)

// DefaultCredentialHeader carries the signed access key when no other header is configured.
const DefaultCredentialHeader = "X-Access-Key"

type contextKey string

const credentialKey contextKey = "credential"

// SetCredential returns a context carrying the presented access key.
func SetCredential(ctx context.Context, credential string) context.Context {
	return context.WithValue(ctx, credentialKey, credential)
}

// CredentialFromContext returns the access key presented with the request, or "" if none.
func CredentialFromContext(ctx context.Context) string {
	c, _ := ctx.Value(credentialKey).(string)
	return c
}

// Credential copies the access key from header into the request context.
// It never rejects a request: ownership checks happen in the controllers,
// which know the resource owner.
func Credential(header string, next http.Handler) http.Handler {
	if header == "" {
		header = DefaultCredentialHeader
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c := strings.TrimSpace(r.Header.Get(header)); c != "" {
			r = r.WithContext(SetCredential(r.Context(), c))
		}
		next.ServeHTTP(w, r)
	})
}
