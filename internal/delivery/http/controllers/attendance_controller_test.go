package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"attendancehub/internal/delivery/http/helpers"
	"attendancehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttendanceController(svc *fakeAttendanceService) *AttendanceController {
	events := &fakeEventService{events: map[string]*domain.Event{
		"E1": {ID: "E1", OrganizerID: "org@x.com"},
	}}
	return NewAttendanceController(testLogger, svc, events, testGate())
}

func TestAttendanceController_Invite(t *testing.T) {
	result := &domain.InviteResult{
		Attendances: []*domain.Attendance{{EventID: "E1", UserEmail: "a@x.com", IsInvited: true}},
		Outcomes: []domain.InviteOutcome{
			{Email: "a@x.com", Status: domain.InviteStatusInvited},
			{Email: "b@x.com", Status: domain.InviteStatusFailed, Reason: "already invited"},
		},
	}

	tests := []struct {
		name       string
		eventID    string
		body       string
		credential string
		wantStatus int
		wantCode   string
		wantEmails []string
	}{
		{"list body", "E1", `["a@x.com","b@x.com"]`, "org@x.com", http.StatusOK, "", []string{"a@x.com", "b@x.com"}},
		{"object body", "E1", `{"emails":["a@x.com"]}`, "org@x.com", http.StatusOK, "", []string{"a@x.com"}},
		{"empty list", "E1", `[]`, "org@x.com", http.StatusBadRequest, helpers.ErrCodeBadRequest, nil},
		{"wrong shape", "E1", `{"emails":"a@x.com"}`, "org@x.com", http.StatusBadRequest, helpers.ErrCodeBadRequest, nil},
		{"not organizer", "E1", `["a@x.com"]`, "mallory@x.com", http.StatusForbidden, helpers.ErrCodeForbidden, nil},
		{"no credential", "E1", `["a@x.com"]`, "", http.StatusUnauthorized, helpers.ErrCodeUnauthorized, nil},
		{"unknown event", "E9", `["a@x.com"]`, "org@x.com", http.StatusBadRequest, helpers.ErrCodeNotFound, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAttendanceService{inviteResult: result}
			ctrl := newAttendanceController(svc)
			cred := ""
			if tt.credential != "" {
				cred = keyFor(t, tt.credential)
			}
			rr := httptest.NewRecorder()

			ctrl.Invite(rr, newRequest(http.MethodPost, "/events/"+tt.eventID+"/invite", tt.body, cred, map[string]string{"eventID": tt.eventID}))

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			env := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				assert.Nil(t, svc.lastEmails, "service not called")
				return
			}
			assert.Equal(t, tt.wantEmails, svc.lastEmails)
			var resp InviteResponse
			require.NoError(t, json.Unmarshal(env.Data, &resp))
			assert.Equal(t, []string{"a@x.com"}, resp.Invited)
			assert.Equal(t, []string{"b@x.com"}, resp.Failed)
			assert.Len(t, resp.Attendances, 1)
			assert.Len(t, resp.Outcomes, 2)
		})
	}
}

func TestAttendanceController_ListAttendances(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		wantStatus    int
		wantInvited   *bool
		wantRSVPed    *bool
		wantCheckedIn *bool
	}{
		{name: "no filters", query: "", wantStatus: http.StatusOK},
		{name: "invited and not checked in", query: "?is_invited=true&is_checked_in=0", wantStatus: http.StatusOK, wantInvited: ptrBool(true), wantCheckedIn: ptrBool(false)},
		{name: "rsvped", query: "?is_rsvped=TRUE", wantStatus: http.StatusOK, wantRSVPed: ptrBool(true)},
		{name: "malformed", query: "?is_rsvped=maybe", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAttendanceService{listResult: []*domain.Attendance{{EventID: "E1", UserEmail: "a@x.com"}}}
			ctrl := newAttendanceController(svc)
			rr := httptest.NewRecorder()

			ctrl.ListAttendances(rr, newRequest(http.MethodGet, "/events/E1/attendances"+tt.query, nil, keyFor(t, "org@x.com"), map[string]string{"eventID": "E1"}))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, tt.wantInvited, svc.lastFilter.Invited)
			assert.Equal(t, tt.wantRSVPed, svc.lastFilter.RSVPed)
			assert.Equal(t, tt.wantCheckedIn, svc.lastFilter.CheckedIn)
			var atts []*domain.Attendance
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &atts))
			assert.Len(t, atts, 1)
		})
	}

	t.Run("requires organizer", func(t *testing.T) {
		ctrl := newAttendanceController(&fakeAttendanceService{})
		rr := httptest.NewRecorder()
		ctrl.ListAttendances(rr, newRequest(http.MethodGet, "/events/E1/attendances", nil, keyFor(t, "a@x.com"), map[string]string{"eventID": "E1"}))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func ptrBool(b bool) *bool { return &b }

func TestAttendanceController_attendeeActions(t *testing.T) {
	att := &domain.Attendance{EventID: "E1", UserEmail: "a@x.com", IsInvited: true, IsRSVPed: true}

	tests := []struct {
		name       string
		action     string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"rsvp", "rsvp", nil, http.StatusOK, ""},
		{"unrsvp", "unrsvp", nil, http.StatusOK, ""},
		{"check in", "check_in", nil, http.StatusOK, ""},
		{"unknown code", "rsvp", domain.ErrNotFound, http.StatusBadRequest, helpers.ErrCodeNotFound},
		{"constraint", "check_in", domain.ErrInvalidInput, http.StatusBadRequest, helpers.ErrCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAttendanceService{actionResult: att, actionErr: tt.err}
			ctrl := newAttendanceController(svc)
			handlers := map[string]http.HandlerFunc{
				"rsvp":     ctrl.RSVP,
				"unrsvp":   ctrl.UnRSVP,
				"check_in": ctrl.CheckIn,
			}
			rr := httptest.NewRecorder()
			// No credential: attendee actions are authorized by the personal code alone.
			req := newRequest(http.MethodGet, "/events/E1/"+tt.action+"/6162", nil, "", map[string]string{"eventID": "E1", "code": "6162"})

			handlers[tt.action](rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.action, svc.lastAction)
			assert.Equal(t, "6162", svc.lastCode)
			env := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}
			var got domain.Attendance
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.True(t, got.IsRSVPed)
		})
	}
}
