package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"attendancehub/internal/delivery/http/helpers"
	"attendancehub/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
// start_time and end_time use the "YYYY-MM-DD HH:MM" format.
type CreateEventRequest struct {
	Title         string   `json:"title"`
	OrganizerID   string   `json:"organizer_id"`
	Description   string   `json:"description"`
	LocationName  string   `json:"location_name"`
	Address       string   `json:"address"`
	Lat           *float64 `json:"lat"`
	Long          *float64 `json:"long"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	AttendeeLimit int      `json:"attendee_limit"`
}

// Validate implements Validator. Field formats are checked by the event service.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.OrganizerID) == "" {
		errs = append(errs, "organizer_id is required")
	}
	if c.Lat == nil {
		errs = append(errs, "lat is required")
	}
	if c.Long == nil {
		errs = append(errs, "long is required")
	}
	return errs
}

func (c CreateEventRequest) toInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:         c.Title,
		OrganizerID:   strings.TrimSpace(c.OrganizerID),
		Description:   c.Description,
		LocationName:  c.LocationName,
		Address:       c.Address,
		Lat:           *c.Lat,
		Long:          *c.Long,
		StartTime:     c.StartTime,
		EndTime:       c.EndTime,
		AttendeeLimit: c.AttendeeLimit,
	}
}

// EventSuccessResponse is the success response envelope for a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Gate    domain.AccessGate
}

func NewEventController(logger *slog.Logger, svc domain.EventService, gate domain.AccessGate) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Gate:    gate,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event owned by organizer_id. The access key must belong to organizer_id. When geocoding is enabled the address is normalized.
// @Tags events
// @Accept json
// @Produce json
// @Security AccessKey
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the stored event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if !authorizeOwner(w, r, c.Logger, c.Gate, strings.TrimSpace(req.OrganizerID)) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.toInput())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns the event. Only the organizer may read it.
// @Tags events
// @Produce json
// @Security AccessKey
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_found"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("eventID"))
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	if !authorizeOwner(w, r, c.Logger, c.Gate, event.OrganizerID) {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}
