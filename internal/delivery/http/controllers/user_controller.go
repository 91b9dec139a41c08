package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"attendancehub/internal/delivery/http/helpers"
	"attendancehub/internal/domain"
)

// CreateUserRequest is the request body for POST /users.
type CreateUserRequest struct {
	UserID   string `json:"user_id"`
	OrgName  string `json:"org_name"`
	Username string `json:"username"`
}

// Validate implements Validator.
func (c CreateUserRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.UserID) == "" {
		errs = append(errs, "user_id is required")
	}
	return errs
}

// UserSuccessResponse is the success response envelope for a single user.
type UserSuccessResponse struct {
	Data  *domain.User      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success response envelope for GET /users/{userID}/events (200).
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type UserController struct {
	Logger *slog.Logger
	Users  domain.UserService
	Events domain.EventService
	Gate   domain.AccessGate
}

func NewUserController(logger *slog.Logger, users domain.UserService, events domain.EventService, gate domain.AccessGate) *UserController {
	return &UserController{
		Logger: logger,
		Users:  users,
		Events: events,
		Gate:   gate,
	}
}

// CreateUser godoc
// @Summary Register an organizer account
// @Description Creates the user record for the signed-in identity. The access key must belong to user_id.
// @Tags users
// @Accept json
// @Produce json
// @Security AccessKey
// @Param user body CreateUserRequest true "User data"
// @Success 201 {object} controllers.UserSuccessResponse "data contains the created user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users [post]
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID := strings.TrimSpace(req.UserID)
	if !authorizeOwner(w, r, c.Logger, c.Gate, userID) {
		return
	}
	user, err := c.Users.CreateUser(r.Context(), userID, req.OrgName, req.Username)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, user)
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Security AccessKey
// @Param userID path string true "User ID (email)"
// @Success 200 {object} controllers.UserSuccessResponse "data contains the user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID} [get]
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if !authorizeOwner(w, r, c.Logger, c.Gate, userID) {
		return
	}
	user, err := c.Users.GetUser(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// ListUserEvents godoc
// @Summary List events organized by a user
// @Description Returns the user's events, most recent start time first.
// @Tags users
// @Produce json
// @Security AccessKey
// @Param userID path string true "User ID (email)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID}/events [get]
func (c *UserController) ListUserEvents(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if !authorizeOwner(w, r, c.Logger, c.Gate, userID) {
		return
	}
	events, err := c.Events.ListEventsByOrganizer(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
