package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"attendancehub/internal/delivery/http/helpers"
	"attendancehub/internal/domain"
)

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Token string `json:"token"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Token) == "" {
		errs = append(errs, "token is required")
	}
	return errs
}

// LoginSuccessResponse is the success response envelope for POST /login (200).
type LoginSuccessResponse struct {
	Data  *domain.SignInResult `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Exchange an identity token for an access key
// @Description Resolves a Google ID token (or an allow-listed test token) to the user's email and returns the access key to send in the credential header.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Identity token"
// @Success 200 {object} controllers.LoginSuccessResponse "data contains user_id and access_key"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, err := c.Service.SignIn(r.Context(), req.Token)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}
