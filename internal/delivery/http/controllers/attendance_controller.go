package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"attendancehub/internal/delivery/http/helpers"
	"attendancehub/internal/domain"
)

const maxInviteBodyBytes = 1 << 20

// InviteRequest is the object form of the POST /events/{eventID}/invite body.
// A bare JSON array of emails is accepted as well.
type InviteRequest struct {
	Emails []string `json:"emails"`
}

// Validate implements Validator.
func (i InviteRequest) Validate() []string {
	if len(i.Emails) == 0 {
		return []string{"at least one email is required"}
	}
	return nil
}

// InviteResponse is the result of an invite batch.
type InviteResponse struct {
	Attendances []*domain.Attendance   `json:"attendances"`
	Invited     []string               `json:"invited"`
	Failed      []string               `json:"failed"`
	Outcomes    []domain.InviteOutcome `json:"outcomes"`
}

// InviteSuccessResponse is the success response envelope for POST /events/{eventID}/invite (200).
type InviteSuccessResponse struct {
	Data  InviteResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AttendanceListSuccessResponse is the success response envelope for GET /events/{eventID}/attendances (200).
type AttendanceListSuccessResponse struct {
	Data  []*domain.Attendance `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// AttendanceSuccessResponse is the success response envelope for attendee actions (200).
type AttendanceSuccessResponse struct {
	Data  *domain.Attendance `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type AttendanceController struct {
	Logger  *slog.Logger
	Service domain.AttendanceService
	Events  domain.EventService
	Gate    domain.AccessGate
}

func NewAttendanceController(logger *slog.Logger, svc domain.AttendanceService, events domain.EventService, gate domain.AccessGate) *AttendanceController {
	return &AttendanceController{
		Logger:  logger,
		Service: svc,
		Events:  events,
		Gate:    gate,
	}
}

// authorizeOrganizer resolves the event's organizer and checks the request credential against it.
func (c *AttendanceController) authorizeOrganizer(w http.ResponseWriter, r *http.Request, eventID string) bool {
	organizerID, err := c.Events.GetOrganizerID(r.Context(), eventID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return false
	}
	return authorizeOwner(w, r, c.Logger, c.Gate, organizerID)
}

// ListAttendances godoc
// @Summary List an event's attendances
// @Description Returns attendance rows for the event. Each boolean filter is applied only when present; filters combine with AND. Only the organizer may list.
// @Tags attendances
// @Produce json
// @Security AccessKey
// @Param eventID path string true "Event ID"
// @Param is_invited query bool false "Filter on invitation"
// @Param is_rsvped query bool false "Filter on RSVP"
// @Param is_checked_in query bool false "Filter on check-in"
// @Success 200 {object} controllers.AttendanceListSuccessResponse "data contains the matching attendances"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/attendances [get]
func (c *AttendanceController) ListAttendances(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if !c.authorizeOrganizer(w, r, eventID) {
		return
	}
	var filter domain.AttendanceFilter
	var ok bool
	if filter.Invited, ok = helpers.OptionalBoolQuery(w, r, "is_invited"); !ok {
		return
	}
	if filter.RSVPed, ok = helpers.OptionalBoolQuery(w, r, "is_rsvped"); !ok {
		return
	}
	if filter.CheckedIn, ok = helpers.OptionalBoolQuery(w, r, "is_checked_in"); !ok {
		return
	}
	atts, err := c.Service.GetAttendances(r.Context(), eventID, filter)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, atts)
}

// Invite godoc
// @Summary Invite attendees to an event
// @Description Invites each email and sends an invitation. Per-email failures (already invited, malformed address, notification failure) are reported in the response instead of failing the request. data.attendances is the event's full invited list.
// @Tags attendances
// @Accept json
// @Produce json
// @Security AccessKey
// @Param eventID path string true "Event ID"
// @Param body body InviteRequest true "Emails to invite; a bare JSON array is also accepted"
// @Success 200 {object} controllers.InviteSuccessResponse "data contains the invite result"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/invite [post]
func (c *AttendanceController) Invite(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if !c.authorizeOrganizer(w, r, eventID) {
		return
	}
	req, err := decodeInviteRequest(http.MaxBytesReader(w, r.Body, maxInviteBodyBytes))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	result, err := c.Service.Invite(r.Context(), eventID, req.Emails)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, InviteResponse{
		Attendances: result.Attendances,
		Invited:     result.Invited(),
		Failed:      result.Failed(),
		Outcomes:    result.Outcomes,
	})
}

// decodeInviteRequest accepts either ["a@x.com", ...] or {"emails": [...]}.
func decodeInviteRequest(body io.Reader) (*InviteRequest, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	var req InviteRequest
	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &req.Emails); err != nil {
			return nil, fmt.Errorf("body must be a list of emails: %w", err)
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return nil, fmt.Errorf("body must be a list of emails or an object with emails: %w", err)
		}
	}
	if errs := req.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%s", errs[0])
	}
	return &req, nil
}

// RSVP godoc
// @Summary RSVP to an event
// @Description Marks the attendee identified by the personal code as attending. Idempotent. No access key is needed; the personal code is the capability.
// @Tags attendee
// @Produce json
// @Param eventID path string true "Event ID"
// @Param code path string true "Personal code from the invitation"
// @Success 200 {object} controllers.AttendanceSuccessResponse "data contains the updated attendance"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/rsvp/{code} [get]
func (c *AttendanceController) RSVP(w http.ResponseWriter, r *http.Request) {
	c.attendeeAction(w, r, c.Service.RSVP)
}

// UnRSVP godoc
// @Summary Withdraw an RSVP
// @Description Clears the attendee's RSVP. Idempotent. Check-in state is unchanged.
// @Tags attendee
// @Produce json
// @Param eventID path string true "Event ID"
// @Param code path string true "Personal code from the invitation"
// @Success 200 {object} controllers.AttendanceSuccessResponse "data contains the updated attendance"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/unrsvp/{code} [get]
func (c *AttendanceController) UnRSVP(w http.ResponseWriter, r *http.Request) {
	c.attendeeAction(w, r, c.Service.UnRSVP)
}

// CheckIn godoc
// @Summary Check an attendee in
// @Description Marks the attendee as checked in. An RSVP is not required. Idempotent.
// @Tags attendee
// @Produce json
// @Param eventID path string true "Event ID"
// @Param code path string true "Personal code from the invitation"
// @Success 200 {object} controllers.AttendanceSuccessResponse "data contains the updated attendance"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/check_in/{code} [get]
func (c *AttendanceController) CheckIn(w http.ResponseWriter, r *http.Request) {
	c.attendeeAction(w, r, c.Service.CheckIn)
}

func (c *AttendanceController) attendeeAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, eventID, code string) (*domain.Attendance, error)) {
	att, err := action(r.Context(), r.PathValue("eventID"), r.PathValue("code"))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, att)
}
