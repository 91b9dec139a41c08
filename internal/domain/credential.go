package domain

import "context"

// CredentialSigner derives and checks the access key bound to an identity.
type CredentialSigner interface {
	Sign(subject string) (string, error)
	Verify(signature, subject string) bool
}

// TestIdentities resolves allow-listed test tokens without contacting the identity provider.
type TestIdentities interface {
	IsTestIdentity(token string) bool
	ResolveTestIdentity(token string) (string, bool)
}

// IdentityProvider resolves an external sign-in token to an email identity.
type IdentityProvider interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// AccessGate checks a presented credential against a resource owner.
type AccessGate interface {
	// VerifyRequest returns ErrAuthMissing when credential is empty and
	// ErrAuthMismatch when it was not issued for ownerID.
	VerifyRequest(credential, ownerID string) error
}

// SignInResult is returned after a successful sign-in.
// swagger:model SignInResult
type SignInResult struct {
	UserID    string `json:"user_id"`
	AccessKey string `json:"access_key"`
}

// AuthService exchanges an identity token for an access key.
type AuthService interface {
	SignIn(ctx context.Context, token string) (*SignInResult, error)
}
