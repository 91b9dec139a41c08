package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"attendancehub/internal/delivery/http/helpers"
	"attendancehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEventBody() map[string]any {
	return map[string]any{
		"title":          "Launch",
		"organizer_id":   "org@x.com",
		"description":    "Demo day",
		"location_name":  "Hall A",
		"address":        "1 Main St",
		"lat":            40.5,
		"long":           -73.9,
		"start_time":     "2025-03-01 10:00",
		"end_time":       "2025-03-01 12:00",
		"attendee_limit": 50,
	}
}

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		credential string
		createErr  error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       createEventBody(),
			credential: "org@x.com",
			wantStatus: http.StatusCreated,
		},
		{
			name:       "no credential",
			body:       createEventBody(),
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
		{
			name:       "credential of someone else",
			body:       createEventBody(),
			credential: "mallory@x.com",
			wantStatus: http.StatusForbidden,
			wantCode:   helpers.ErrCodeForbidden,
		},
		{
			name:       "missing lat and organizer",
			body:       map[string]any{"title": "Launch"},
			credential: "org@x.com",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"organizer_id":"org@x.com","lat":1,"long":1,"event_name":"x"}`,
			credential: "org@x.com",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "service validation",
			body:       createEventBody(),
			credential: "org@x.com",
			createErr:  domain.NewValidationError("start_time must match YYYY-MM-DD HH:MM"),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unexpected failure",
			body:       createEventBody(),
			credential: "org@x.com",
			createErr:  errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEventService{createErr: tt.createErr}
			ctrl := NewEventController(testLogger, svc, testGate())
			cred := ""
			if tt.credential != "" {
				cred = keyFor(t, tt.credential)
			}
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, newRequest(http.MethodPost, "/events", tt.body, cred, nil))

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			env := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}
			assert.Nil(t, env.Error)
			var ev domain.Event
			require.NoError(t, json.Unmarshal(env.Data, &ev))
			assert.Equal(t, "newevent1", ev.ID)
			require.NotNil(t, svc.lastCreate)
			assert.Equal(t, 40.5, svc.lastCreate.Lat)
			assert.Equal(t, -73.9, svc.lastCreate.Long)
			assert.Equal(t, 50, svc.lastCreate.AttendeeLimit)
			assert.Equal(t, "2025-03-01 10:00", svc.lastCreate.StartTime)
		})
	}
}

func TestEventController_GetEvent(t *testing.T) {
	svc := &fakeEventService{events: map[string]*domain.Event{
		"abc123": {ID: "abc123", OrganizerID: "org@x.com", Title: "Launch"},
	}}
	ctrl := NewEventController(testLogger, svc, testGate())

	tests := []struct {
		name       string
		eventID    string
		credential string
		wantStatus int
		wantCode   string
	}{
		{"organizer", "abc123", "org@x.com", http.StatusOK, ""},
		{"other user", "abc123", "mallory@x.com", http.StatusForbidden, helpers.ErrCodeForbidden},
		{"no credential", "abc123", "", http.StatusUnauthorized, helpers.ErrCodeUnauthorized},
		{"missing event is a bad request", "zzz", "org@x.com", http.StatusBadRequest, helpers.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred := ""
			if tt.credential != "" {
				cred = keyFor(t, tt.credential)
			}
			rr := httptest.NewRecorder()
			ctrl.GetEvent(rr, newRequest(http.MethodGet, "/events/"+tt.eventID, nil, cred, map[string]string{"eventID": tt.eventID}))

			require.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}
			var ev domain.Event
			require.NoError(t, json.Unmarshal(env.Data, &ev))
			assert.Equal(t, "Launch", ev.Title)
		})
	}
}
