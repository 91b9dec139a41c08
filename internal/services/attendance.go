package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"attendancehub/internal/domain"
)

const (
	reasonInvalidEmail       = "invalid email"
	reasonAlreadyInvited     = "already invited"
	reasonInvalidReference   = "invalid reference"
	reasonNotificationFailed = "notification failed"
	reasonInviteFailed       = "invite failed"
)

type attendanceService struct {
	attendanceRepo domain.AttendanceRepository
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	observer       domain.InviteObserver
	publicBaseURL  string
	contextTimeout time.Duration
	logger         *slog.Logger
}

// AttendanceServiceConfig holds the dependencies of the attendance service.
// Observer is optional.
type AttendanceServiceConfig struct {
	AttendanceRepo domain.AttendanceRepository
	EventRepo      domain.EventRepository
	UserRepo       domain.UserRepository
	EmailService   domain.EmailService
	Observer       domain.InviteObserver
	PublicBaseURL  string
	Timeout        time.Duration
	Logger         *slog.Logger
}

// NewAttendanceService creates an AttendanceService from cfg.
func NewAttendanceService(cfg AttendanceServiceConfig) domain.AttendanceService {
	observer := cfg.Observer
	if observer == nil {
		observer = noopObserver{}
	}
	return &attendanceService{
		attendanceRepo: cfg.AttendanceRepo,
		eventRepo:      cfg.EventRepo,
		userRepo:       cfg.UserRepo,
		emailService:   cfg.EmailService,
		observer:       observer,
		publicBaseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		contextTimeout: cfg.Timeout,
		logger:         cfg.Logger,
	}
}

type noopObserver struct{}

func (noopObserver) ObserveInvite(string) {}

// pendingInvite is a freshly inserted attendance still waiting for its notification.
type pendingInvite struct {
	outcome    int
	attendance *domain.Attendance
}

// Invite records and notifies each email. Every store and mail call gets its
// own timeout, so a long batch cannot expire the calls made at its end.
// Once the event is known the batch succeeds and failures are reported per email.
func (s *attendanceService) Invite(ctx context.Context, eventID string, emails []string) (*domain.InviteResult, error) {
	if isBlank(eventID) {
		return nil, domain.NewValidationError("event_id is required")
	}
	event, err := s.lookupEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	result := &domain.InviteResult{Outcomes: make([]domain.InviteOutcome, 0, len(emails))}
	var pending []pendingInvite
	now := time.Now().UTC()

	for _, raw := range emails {
		email := normalizeEmail(raw)
		if email == "" {
			continue
		}
		if !isEmail(email) {
			result.Outcomes = append(result.Outcomes, failedOutcome(email, reasonInvalidEmail))
			continue
		}
		att := domain.NewInvitedAttendance(event.ID, email, now)
		if err := s.insert(ctx, att); err != nil {
			reason := insertFailureReason(err)
			s.logger.Warn("invite insert failed", "event_id", event.ID, "email", email, "reason", reason, "error", err)
			result.Outcomes = append(result.Outcomes, failedOutcome(email, reason))
			continue
		}
		result.Outcomes = append(result.Outcomes, domain.InviteOutcome{Email: email, Status: domain.InviteStatusInvited})
		pending = append(pending, pendingInvite{outcome: len(result.Outcomes) - 1, attendance: att})
	}

	if len(pending) > 0 {
		organizer := s.organizerName(ctx, event.OrganizerID)
		for _, p := range pending {
			if err := s.notify(ctx, s.inviteEmailData(event, organizer, p.attendance)); err != nil {
				s.logger.Warn("invite notification failed", "event_id", event.ID, "email", p.attendance.UserEmail, "error", err)
				result.Outcomes[p.outcome] = failedOutcome(p.attendance.UserEmail, reasonNotificationFailed)
			}
		}
	}

	for _, o := range result.Outcomes {
		s.observer.ObserveInvite(o.Status)
	}

	atts, err := s.listInvited(ctx, event.ID)
	if err != nil {
		s.logger.Warn("invited list reload failed, returning this batch only", "event_id", event.ID, "error", err)
		atts = make([]*domain.Attendance, 0, len(pending))
		for _, p := range pending {
			atts = append(atts, p.attendance)
		}
	}
	result.Attendances = atts

	s.logger.Info("invite batch processed",
		"event_id", event.ID,
		"invited", result.Invited(),
		"failed", result.Failed(),
	)
	return result, nil
}

func (s *attendanceService) lookupEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.GetByID(ctx, eventID)
}

func (s *attendanceService) insert(ctx context.Context, att *domain.Attendance) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.attendanceRepo.Create(ctx, att)
}

func (s *attendanceService) notify(ctx context.Context, data *domain.InviteEmailData) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.emailService.SendInvite(ctx, data)
}

func (s *attendanceService) listInvited(ctx context.Context, eventID string) ([]*domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	invited := true
	return s.attendanceRepo.List(ctx, eventID, domain.AttendanceFilter{Invited: &invited})
}

func failedOutcome(email, reason string) domain.InviteOutcome {
	return domain.InviteOutcome{Email: email, Status: domain.InviteStatusFailed, Reason: reason}
}

func insertFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return reasonAlreadyInvited
	case errors.Is(err, domain.ErrInvalidReference):
		return reasonInvalidReference
	default:
		return reasonInviteFailed
	}
}

// organizerName prefers the organizer's username, then org name, then the raw identity.
func (s *attendanceService) organizerName(ctx context.Context, organizerID string) string {
	if s.userRepo == nil {
		return organizerID
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	user, err := s.userRepo.GetByID(ctx, organizerID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("organizer lookup failed", "organizer_id", organizerID, "error", err)
		}
		return organizerID
	}
	switch {
	case user.Username != "":
		return user.Username
	case user.OrgName != "":
		return user.OrgName
	default:
		return organizerID
	}
}

func (s *attendanceService) inviteEmailData(event *domain.Event, organizer string, att *domain.Attendance) *domain.InviteEmailData {
	location := event.Location.Name
	if event.Location.Address != "" {
		if location != "" {
			location += ", "
		}
		location += event.Location.Address
	}
	return &domain.InviteEmailData{
		OrganizerName:    organizer,
		InviteeEmail:     att.UserEmail,
		PersonalCode:     att.PersonalCode,
		EventID:          event.ID,
		EventName:        event.Title,
		EventDescription: event.Description,
		EventLocation:    location,
		StartTime:        event.StartTime.Format(domain.EventTimeLayout),
		EndTime:          event.EndTime.Format(domain.EventTimeLayout),
		RSVPURL:          s.attendeeLink(event.ID, "rsvp", att.PersonalCode),
		UnRSVPURL:        s.attendeeLink(event.ID, "unrsvp", att.PersonalCode),
	}
}

func (s *attendanceService) attendeeLink(eventID, action, code string) string {
	return s.publicBaseURL + "/events/" + url.PathEscape(eventID) + "/" + action + "/" + url.PathEscape(code)
}

func (s *attendanceService) GetAttendances(ctx context.Context, eventID string, filter domain.AttendanceFilter) ([]*domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if isBlank(eventID) {
		return nil, domain.NewValidationError("event_id is required")
	}
	atts, err := s.attendanceRepo.List(ctx, eventID, filter)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	if atts == nil {
		atts = []*domain.Attendance{}
	}
	return atts, nil
}

func (s *attendanceService) RSVP(ctx context.Context, eventID, personalCode string) (*domain.Attendance, error) {
	return s.transition(ctx, "rsvp", eventID, personalCode, func(ctx context.Context) error {
		return s.attendanceRepo.SetRSVPed(ctx, eventID, personalCode, true)
	})
}

func (s *attendanceService) UnRSVP(ctx context.Context, eventID, personalCode string) (*domain.Attendance, error) {
	return s.transition(ctx, "unrsvp", eventID, personalCode, func(ctx context.Context) error {
		return s.attendanceRepo.SetRSVPed(ctx, eventID, personalCode, false)
	})
}

// CheckIn marks the attendee as present. An RSVP is not required.
func (s *attendanceService) CheckIn(ctx context.Context, eventID, personalCode string) (*domain.Attendance, error) {
	return s.transition(ctx, "check_in", eventID, personalCode, func(ctx context.Context) error {
		return s.attendanceRepo.SetCheckedIn(ctx, eventID, personalCode)
	})
}

// transition checks that the attendance exists, applies mutate and returns the stored row.
func (s *attendanceService) transition(ctx context.Context, action, eventID, personalCode string, mutate func(context.Context) error) (*domain.Attendance, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var problems []string
	if isBlank(eventID) {
		problems = append(problems, "event_id is required")
	}
	if isBlank(personalCode) {
		problems = append(problems, "personal_code is required")
	}
	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems...)
	}

	if _, err := s.attendanceRepo.GetByCode(ctx, eventID, personalCode); err != nil {
		return nil, attendanceLookupError(err)
	}
	if err := mutate(ctx); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, attendanceLookupError(err)
		}
		return nil, fmt.Errorf("%s: %w", action, asInvalidInput(err))
	}
	att, err := s.attendanceRepo.GetByCode(ctx, eventID, personalCode)
	if err != nil {
		return nil, attendanceLookupError(err)
	}
	s.logger.Debug("attendance updated", "action", action, "event_id", eventID,
		"is_rsvped", att.IsRSVPed, "is_checked_in", att.IsCheckedIn)
	return att, nil
}

func attendanceLookupError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("invalid combination of event and personal code: %w", domain.ErrNotFound)
	}
	return fmt.Errorf("get attendance: %w", err)
}
