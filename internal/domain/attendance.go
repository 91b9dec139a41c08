package domain

import (
	"context"
	"encoding/hex"
	"time"
)

// RoleAttendee is the only role assigned through the invitation flow.
const RoleAttendee = "attendee"

// Attendance is one invitee's relationship to an event.
// Invitation and check-in are monotonic; only the RSVP flag can be cleared.
// swagger:model Attendance
type Attendance struct {
	EventID      string    `json:"event_id"`
	UserEmail    string    `json:"user_email"`
	Role         string    `json:"user_role"`
	PersonalCode string    `json:"personal_code"`
	IsInvited    bool      `json:"is_invited"`
	IsRSVPed     bool      `json:"is_rsvped"`
	IsCheckedIn  bool      `json:"is_checked_in"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewInvitedAttendance returns the initial state of a freshly invited attendee.
func NewInvitedAttendance(eventID, email string, now time.Time) *Attendance {
	return &Attendance{
		EventID:      eventID,
		UserEmail:    email,
		Role:         RoleAttendee,
		PersonalCode: GeneratePersonalCode(eventID, email),
		IsInvited:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// GeneratePersonalCode encodes "eventID:email" as lowercase hex.
// The code is reversible and not secret; it only needs to be unique per (event, email).
func GeneratePersonalCode(eventID, email string) string {
	return hex.EncodeToString([]byte(eventID + ":" + email))
}

// AttendanceFilter narrows an attendance listing. Nil fields are not applied.
type AttendanceFilter struct {
	Invited   *bool
	RSVPed    *bool
	CheckedIn *bool
}

// Invite outcome statuses.
const (
	InviteStatusInvited = "invited"
	InviteStatusFailed  = "failed"
)

// InviteOutcome records what happened to a single email in an invite batch.
// swagger:model InviteOutcome
type InviteOutcome struct {
	Email  string `json:"email"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// InviteResult is the aggregated result of an invite batch.
// Attendances is the event's full invited list after the batch, not only the new rows.
// swagger:model InviteResult
type InviteResult struct {
	Attendances []*Attendance   `json:"attendances"`
	Outcomes    []InviteOutcome `json:"outcomes"`
}

// Invited returns the emails that were invited and notified.
func (r *InviteResult) Invited() []string {
	return r.emailsWithStatus(InviteStatusInvited)
}

// Failed returns the emails that could not be invited or notified.
func (r *InviteResult) Failed() []string {
	return r.emailsWithStatus(InviteStatusFailed)
}

func (r *InviteResult) emailsWithStatus(status string) []string {
	out := []string{}
	for _, o := range r.Outcomes {
		if o.Status == status {
			out = append(out, o.Email)
		}
	}
	return out
}

// AttendanceRepository defines storage operations for attendances.
type AttendanceRepository interface {
	Create(ctx context.Context, att *Attendance) error
	GetByCode(ctx context.Context, eventID, personalCode string) (*Attendance, error)
	List(ctx context.Context, eventID string, filter AttendanceFilter) ([]*Attendance, error)
	SetRSVPed(ctx context.Context, eventID, personalCode string, rsvped bool) error
	SetCheckedIn(ctx context.Context, eventID, personalCode string) error
}

// InviteObserver is notified of each invite outcome, e.g. for metrics.
type InviteObserver interface {
	ObserveInvite(status string)
}

// AttendanceService owns the invited/rsvped/checked-in lifecycle.
type AttendanceService interface {
	Invite(ctx context.Context, eventID string, emails []string) (*InviteResult, error)
	GetAttendances(ctx context.Context, eventID string, filter AttendanceFilter) ([]*Attendance, error)
	RSVP(ctx context.Context, eventID, personalCode string) (*Attendance, error)
	UnRSVP(ctx context.Context, eventID, personalCode string) (*Attendance, error)
	CheckIn(ctx context.Context, eventID, personalCode string) (*Attendance, error)
}
