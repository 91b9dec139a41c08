package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// InviteEmailData holds data for the event invitation email.
type InviteEmailData struct {
	OrganizerName    string
	InviteeEmail     string
	PersonalCode     string
	EventID          string
	EventName        string
	EventDescription string
	EventLocation    string
	StartTime        string
	EndTime          string
	RSVPURL          string
	UnRSVPURL        string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendInvite(ctx context.Context, data *InviteEmailData) error
}
