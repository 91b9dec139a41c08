package controllers

import (
	"log/slog"
	"net/http"

	"attendancehub/internal/delivery/http/helpers"
	"attendancehub/internal/delivery/http/middleware"
	"attendancehub/internal/domain"
)

// authorizeOwner checks the request credential against ownerID and writes
// 401 or 403 when it does not match. Callers return immediately on false.
func authorizeOwner(w http.ResponseWriter, r *http.Request, logger *slog.Logger, gate domain.AccessGate, ownerID string) bool {
	if err := gate.VerifyRequest(middleware.CredentialFromContext(r.Context()), ownerID); err != nil {
		helpers.WriteDomainError(w, r, logger, err)
		return false
	}
	return true
}
