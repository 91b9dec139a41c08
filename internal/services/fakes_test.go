package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"attendancehub/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

const testTimeout = 5 * time.Second

// fakeAttendanceRepo is an in-memory domain.AttendanceRepository keyed by (event_id, personal_code).
type fakeAttendanceRepo struct {
	mu        sync.Mutex
	rows      map[string]*domain.Attendance
	order     []string
	createErr map[string]error
	setErr    error
	listErr   error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		rows:      make(map[string]*domain.Attendance),
		createErr: make(map[string]error),
	}
}

func attendanceKey(eventID, code string) string { return eventID + "|" + code }

func (f *fakeAttendanceRepo) Create(ctx context.Context, att *domain.Attendance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.createErr[att.UserEmail]; ok {
		return err
	}
	key := attendanceKey(att.EventID, att.PersonalCode)
	if _, ok := f.rows[key]; ok {
		return fmt.Errorf("duplicate key value: %w", domain.ErrConflict)
	}
	cp := *att
	f.rows[key] = &cp
	f.order = append(f.order, key)
	return nil
}

func (f *fakeAttendanceRepo) GetByCode(ctx context.Context, eventID, code string) (*domain.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[attendanceKey(eventID, code)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, eventID string, filter domain.AttendanceFilter) ([]*domain.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Attendance, 0)
	for _, key := range f.order {
		a := f.rows[key]
		if a.EventID != eventID {
			continue
		}
		if filter.Invited != nil && a.IsInvited != *filter.Invited {
			continue
		}
		if filter.RSVPed != nil && a.IsRSVPed != *filter.RSVPed {
			continue
		}
		if filter.CheckedIn != nil && a.IsCheckedIn != *filter.CheckedIn {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) SetRSVPed(ctx context.Context, eventID, code string, rsvped bool) error {
	return f.update(eventID, code, func(a *domain.Attendance) { a.IsRSVPed = rsvped })
}

func (f *fakeAttendanceRepo) SetCheckedIn(ctx context.Context, eventID, code string) error {
	return f.update(eventID, code, func(a *domain.Attendance) { a.IsCheckedIn = true })
}

func (f *fakeAttendanceRepo) update(eventID, code string, fn func(*domain.Attendance)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	a, ok := f.rows[attendanceKey(eventID, code)]
	if !ok {
		return domain.ErrNotFound
	}
	fn(a)
	return nil
}

func (f *fakeAttendanceRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

// fakeEventRepo is an in-memory domain.EventRepository.
type fakeEventRepo struct {
	byID      map[string]*domain.Event
	createErr error
	getErr    error
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{byID: make(map[string]*domain.Event)}
	for _, e := range events {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range f.byID {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeUserRepo is an in-memory domain.UserRepository.
type fakeUserRepo struct {
	byID   map[string]*domain.User
	getErr error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[string]*domain.User)}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byID[u.ID]; ok {
		return fmt.Errorf("duplicate key value: %w", domain.ErrConflict)
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// fakeEmailService records invites and fails for the configured recipients.
type fakeEmailService struct {
	sent   []*domain.InviteEmailData
	failed map[string]bool
}

func (f *fakeEmailService) SendInvite(ctx context.Context, data *domain.InviteEmailData) error {
	if f.failed[data.InviteeEmail] {
		return errors.New("smtp: connection refused")
	}
	f.sent = append(f.sent, data)
	return nil
}

// recordingObserver counts invite outcomes by status.
type recordingObserver struct {
	counts map[string]int
}

func (r *recordingObserver) ObserveInvite(status string) {
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	r.counts[status]++
}

// fakeGeocoder returns a fixed result or error.
type fakeGeocoder struct {
	result *domain.GeocodeResult
	err    error
	calls  int
}

func (f *fakeGeocoder) Resolve(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
