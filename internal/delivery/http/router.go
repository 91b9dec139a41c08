package http

import (
	"log/slog"
	"net/http"

	"attendancehub/internal/delivery/http/controllers"
	"attendancehub/internal/delivery/http/middleware"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth       *controllers.AuthController
	Users      *controllers.UserController
	Events     *controllers.EventController
	Attendance *controllers.AttendanceController
	Health     *controllers.HealthController
}

// RouterConfig carries the cross-cutting pieces of the handler chain.
type RouterConfig struct {
	Logger           *slog.Logger
	CredentialHeader string
	AllowedOrigins   []string
	Metrics          middleware.RequestObserver
	MetricsHandler   http.Handler
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /login", c.Auth.Login)

	// Users
	mux.HandleFunc("POST /users", c.Users.CreateUser)
	mux.HandleFunc("GET /users/{userID}", c.Users.GetUser)
	mux.HandleFunc("GET /users/{userID}/events", c.Users.ListUserEvents)

	// Events
	mux.HandleFunc("POST /events", c.Events.CreateEvent)
	mux.HandleFunc("GET /events/{eventID}", c.Events.GetEvent)

	// Attendance
	mux.HandleFunc("GET /events/{eventID}/attendances", c.Attendance.ListAttendances)
	mux.HandleFunc("POST /events/{eventID}/invite", c.Attendance.Invite)
	mux.HandleFunc("GET /events/{eventID}/rsvp/{code}", c.Attendance.RSVP)
	mux.HandleFunc("GET /events/{eventID}/unrsvp/{code}", c.Attendance.UnRSVP)
	mux.HandleFunc("GET /events/{eventID}/check_in/{code}", c.Attendance.CheckIn)

	// Ops
	mux.HandleFunc("GET /health", c.Health.Health)
	if cfg.MetricsHandler != nil {
		mux.Handle("GET /metrics", cfg.MetricsHandler)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router in the middleware chain. The credential is
// extracted first; the metrics middleware sits directly outside the mux so it
// can read the matched route pattern.
func NewHandler(c Controllers, cfg RouterConfig) http.Handler {
	var h http.Handler = NewRouter(c, cfg)
	h = middleware.CORS(cfg.AllowedOrigins, cfg.CredentialHeader, h)
	if cfg.Metrics != nil {
		h = middleware.Metrics(cfg.Metrics, h)
	}
	h = middleware.LoggingMiddleware(cfg.Logger, h)
	return middleware.Credential(cfg.CredentialHeader, h)
}
