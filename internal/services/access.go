package services

import (
	"strings"

	"attendancehub/internal/domain"
)

type accessGate struct {
	signer domain.CredentialSigner
}

// NewAccessGate returns an AccessGate that checks credentials with signer.
func NewAccessGate(signer domain.CredentialSigner) domain.AccessGate {
	return &accessGate{signer: signer}
}

func (g *accessGate) VerifyRequest(credential, ownerID string) error {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return domain.ErrAuthMissing
	}
	if isBlank(ownerID) || !g.signer.Verify(credential, ownerID) {
		return domain.ErrAuthMismatch
	}
	return nil
}
