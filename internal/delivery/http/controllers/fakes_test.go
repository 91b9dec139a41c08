package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"attendancehub/internal/adapters/auth"
	"attendancehub/internal/delivery/http/helpers"
	"attendancehub/internal/delivery/http/middleware"
	"attendancehub/internal/domain"
	"attendancehub/internal/services"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testSigner = auth.NewSigner("test-secret")

func testGate() domain.AccessGate {
	return services.NewAccessGate(testSigner)
}

func keyFor(t *testing.T, subject string) string {
	t.Helper()
	k, err := testSigner.Sign(subject)
	require.NoError(t, err)
	return k
}

// newRequest builds a request with path values and an optional credential already in context.
func newRequest(method, target string, body any, credential string, pathValues map[string]string) *http.Request {
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, rdr)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	if credential != "" {
		req = req.WithContext(middleware.SetCredential(req.Context(), credential))
	}
	return req
}

type envelope struct {
	Data  json.RawMessage   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events        map[string]*domain.Event
	createErr     error
	listErr       error
	lastCreate    *domain.CreateEventInput
	lastListOwner string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	f.lastCreate = &in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Event{ID: "newevent1", OrganizerID: in.OrganizerID, Title: in.Title}, nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	if eventID == "" {
		return nil, domain.NewValidationError("event_id must be a non-empty alphanumeric string")
	}
	e, ok := f.events[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventService) GetOrganizerID(ctx context.Context, eventID string) (string, error) {
	e, err := f.GetEvent(ctx, eventID)
	if err != nil {
		return "", err
	}
	return e.OrganizerID, nil
}

func (f *fakeEventService) ListEventsByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	f.lastListOwner = organizerID
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*domain.Event{}
	for _, e := range f.events {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeAttendanceService implements domain.AttendanceService for handler tests.
type fakeAttendanceService struct {
	inviteResult *domain.InviteResult
	inviteErr    error
	listResult   []*domain.Attendance
	actionResult *domain.Attendance
	actionErr    error
	lastEmails   []string
	lastFilter   domain.AttendanceFilter
	lastAction   string
	lastCode     string
}

func (f *fakeAttendanceService) Invite(ctx context.Context, eventID string, emails []string) (*domain.InviteResult, error) {
	f.lastEmails = emails
	return f.inviteResult, f.inviteErr
}

func (f *fakeAttendanceService) GetAttendances(ctx context.Context, eventID string, filter domain.AttendanceFilter) ([]*domain.Attendance, error) {
	f.lastFilter = filter
	return f.listResult, nil
}

func (f *fakeAttendanceService) RSVP(ctx context.Context, eventID, code string) (*domain.Attendance, error) {
	return f.action("rsvp", code)
}

func (f *fakeAttendanceService) UnRSVP(ctx context.Context, eventID, code string) (*domain.Attendance, error) {
	return f.action("unrsvp", code)
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, eventID, code string) (*domain.Attendance, error) {
	return f.action("check_in", code)
}

func (f *fakeAttendanceService) action(name, code string) (*domain.Attendance, error) {
	f.lastAction, f.lastCode = name, code
	return f.actionResult, f.actionErr
}

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	users     map[string]*domain.User
	createErr error
}

func (f *fakeUserService) CreateUser(ctx context.Context, id, orgName, username string) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.User{ID: id, OrgName: orgName, Username: username}, nil
}

func (f *fakeUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	result *domain.SignInResult
	err    error
}

func (f *fakeAuthService) SignIn(ctx context.Context, token string) (*domain.SignInResult, error) {
	return f.result, f.err
}
