package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"attendancehub/internal/domain"

	"github.com/google/uuid"
)

const maxAttendeeLimit = 100000

type eventService struct {
	eventRepo      domain.EventRepository
	geocoder       domain.Geocoder
	contextTimeout time.Duration
	logger         *slog.Logger
}

// NewEventService creates an EventService. geocoder may be nil to keep
// caller-supplied locations as they are.
func NewEventService(eventRepo domain.EventRepository, geocoder domain.Geocoder, timeout time.Duration, logger *slog.Logger) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		geocoder:       geocoder,
		contextTimeout: timeout,
		logger:         logger,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	in.OrganizerID = strings.TrimSpace(in.OrganizerID)
	start, end, problems := validateEventInput(in)
	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems...)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          newEventID(),
		OrganizerID: in.OrganizerID,
		Title:       in.Title,
		Description: in.Description,
		Location: domain.Location{
			Name:    in.LocationName,
			Lat:     in.Lat,
			Long:    in.Long,
			Address: in.Address,
		},
		StartTime:     start,
		EndTime:       end,
		AttendeeLimit: in.AttendeeLimit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.geocode(ctx, &event.Location)

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", asInvalidInput(err))
	}
	s.logger.Info("event created", "event_id", event.ID, "organizer_id", event.OrganizerID)

	stored, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("reload event: %w", err)
	}
	return stored, nil
}

// geocode replaces loc's address and coordinates with the resolved ones.
// On any lookup failure loc is left untouched.
func (s *eventService) geocode(ctx context.Context, loc *domain.Location) {
	if s.geocoder == nil || isBlank(loc.Address) {
		return
	}
	res, err := s.geocoder.Resolve(ctx, loc.Address)
	if err != nil {
		s.logger.Warn("geocoding failed, keeping supplied location", "address", loc.Address, "error", err)
		return
	}
	if res.FormattedAddress != "" {
		loc.Address = res.FormattedAddress
	}
	loc.Lat = res.Lat
	loc.Long = res.Long
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !eventIDRegexp.MatchString(eventID) {
		return nil, domain.NewValidationError("event_id must be a non-empty alphanumeric string")
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetOrganizerID(ctx context.Context, eventID string) (string, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return "", err
	}
	return event.OrganizerID, nil
}

func (s *eventService) ListEventsByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	organizerID = strings.TrimSpace(organizerID)
	if !isEmail(organizerID) {
		return nil, domain.NewValidationError("organizer_id must be an email address")
	}
	events, err := s.eventRepo.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func newEventID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// validateEventInput checks every field and returns all problems at once.
func validateEventInput(in domain.CreateEventInput) (start, end time.Time, problems []string) {
	if isBlank(in.Title) {
		problems = append(problems, "title is required")
	} else if !freeTextRegexp.MatchString(in.Title) {
		problems = append(problems, "title may only contain letters, digits, spaces, commas and periods")
	}
	if !isEmail(in.OrganizerID) {
		problems = append(problems, "organizer_id must be an email address")
	}
	if !freeTextRegexp.MatchString(in.Description) {
		problems = append(problems, "description may only contain letters, digits, spaces, commas and periods")
	}
	if !freeTextRegexp.MatchString(in.LocationName) {
		problems = append(problems, "location_name may only contain letters, digits, spaces, commas and periods")
	}
	if !freeTextRegexp.MatchString(in.Address) {
		problems = append(problems, "address may only contain letters, digits, spaces, commas and periods")
	}
	if in.Lat <= -90 || in.Lat >= 90 {
		problems = append(problems, "lat must be between -90 and 90")
	}
	if in.Long <= -180 || in.Long >= 180 {
		problems = append(problems, "long must be between -180 and 180")
	}
	if in.AttendeeLimit <= 0 || in.AttendeeLimit >= maxAttendeeLimit {
		problems = append(problems, fmt.Sprintf("attendee_limit must be between 1 and %d", maxAttendeeLimit-1))
	}

	var startOK, endOK bool
	start, startOK = parseEventTime(in.StartTime)
	if !startOK {
		problems = append(problems, "start_time must match YYYY-MM-DD HH:MM")
	}
	end, endOK = parseEventTime(in.EndTime)
	if !endOK {
		problems = append(problems, "end_time must match YYYY-MM-DD HH:MM")
	}
	if startOK && endOK && end.Before(start) {
		problems = append(problems, "end_time must not be before start_time")
	}
	return start, end, problems
}

func parseEventTime(s string) (time.Time, bool) {
	if !eventTimeRegexp.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse(domain.EventTimeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
