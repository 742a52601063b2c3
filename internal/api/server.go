// Package api exposes the solar position and rise/set computations over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/sun/sungo/internal/auth"
	"github.com/sun/sungo/internal/events"
	"github.com/sun/sungo/internal/health"
	"github.com/sun/sungo/internal/httputil"
	"github.com/sun/sungo/internal/metrics"
	"github.com/sun/sungo/internal/solar"
)

// Defaults holds the observer parameters applied when a request omits them.
type Defaults struct {
	PressureMb   float64
	TemperatureC float64
	ElevationM   float64
	DeltaT       float64
	H0Prime      float64
}

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a configured HTTP server.
func NewServer(addr string, logger *slog.Logger, authCfg auth.Config, defaults Defaults, trustProxy bool) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /readyz", health.Readyz)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /api/v1/position", positionHandler(defaults))
	mux.HandleFunc("GET /api/v1/events", eventsHandler(defaults))

	// Middleware chain: metrics -> logging -> auth -> mux.
	var handler http.Handler = mux
	handler = auth.Middleware(authCfg)(handler)
	handler = loggingMiddleware(logger, trustProxy)(handler)
	handler = metrics.Middleware(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

// parseTimeParam accepts RFC 3339 or unix milliseconds; an absent parameter
// means "now". Calendar parsing stops here: the core only ever sees the
// millisecond count.
func parseTimeParam(r *http.Request) (int64, bool) {
	v := r.URL.Query().Get("time")
	if v == "" {
		return time.Now().UnixMilli(), true
	}
	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		return ms, true
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UnixMilli(), true
	}
	return 0, false
}

// floatParam returns the named query parameter, the fallback when absent, or
// an error flag when present but malformed.
func floatParam(r *http.Request, name string, fallback float64) (float64, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// requiredFloatParam is like floatParam but with no fallback.
func requiredFloatParam(r *http.Request, name string) (float64, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	return f, err == nil
}

type positionResponse struct {
	TimeMillis     int64                `json:"time_millis"`
	Position       solar.Position       `json:"position"`
	EquationOfTime solar.EquationOfTime `json:"equation_of_time"`
}

func positionHandler(defaults Defaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ms, ok := parseTimeParam(r)
		if !ok {
			writeBadRequest(w, "time must be RFC 3339 or unix milliseconds")
			return
		}
		lat, ok := requiredFloatParam(r, "lat")
		if !ok {
			writeBadRequest(w, "lat is required and must be a number")
			return
		}
		lon, ok := requiredFloatParam(r, "lon")
		if !ok {
			writeBadRequest(w, "lon is required and must be a number")
			return
		}

		pressure, ok1 := floatParam(r, "pressure", defaults.PressureMb)
		temperature, ok2 := floatParam(r, "temperature", defaults.TemperatureC)
		elevation, ok3 := floatParam(r, "elevation", defaults.ElevationM)
		slope, ok4 := floatParam(r, "slope", 0)
		rotation, ok5 := floatParam(r, "azimuth_rotation", 0)
		deltaT, ok6 := floatParam(r, "delta_t", defaults.DeltaT)
		h0, ok7 := floatParam(r, "h0", defaults.H0Prime)
		if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7) {
			writeBadRequest(w, "numeric parameter is malformed")
			return
		}

		in, err := solar.NewPositionInputs(ms, lon, lat, pressure, elevation, temperature, slope, rotation, deltaT, h0)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}

		pos := solar.ComputePosition(in)
		metrics.IncPositionComputed()

		writeJSON(w, http.StatusOK, positionResponse{
			TimeMillis:     ms,
			Position:       pos,
			EquationOfTime: solar.ComputeEquationOfTime(pos),
		})
	}
}

type eventsResponse struct {
	NoEvent bool          `json:"no_event,omitempty"`
	Sunrise string        `json:"sunrise,omitempty"`
	Transit string        `json:"transit,omitempty"`
	Sunset  string        `json:"sunset,omitempty"`
	Times   *events.Times `json:"times,omitempty"`
}

func eventsHandler(defaults Defaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ms, ok := parseTimeParam(r)
		if !ok {
			writeBadRequest(w, "time must be RFC 3339 or unix milliseconds")
			return
		}
		lat, ok := requiredFloatParam(r, "lat")
		if !ok {
			writeBadRequest(w, "lat is required and must be a number")
			return
		}
		lon, ok := requiredFloatParam(r, "lon")
		if !ok {
			writeBadRequest(w, "lon is required and must be a number")
			return
		}
		deltaT, ok1 := floatParam(r, "delta_t", defaults.DeltaT)
		h0, ok2 := floatParam(r, "h0", defaults.H0Prime)
		if !(ok1 && ok2) {
			writeBadRequest(w, "numeric parameter is malformed")
			return
		}

		in, err := solar.NewEventInputs(ms, lon, lat, deltaT, h0)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}

		times, found := events.Compute(in)
		metrics.IncEventsComputed()
		if !found {
			// Polar day or polar night relative to the threshold: a routine
			// outcome, not an error.
			metrics.IncNoEvent()
			writeJSON(w, http.StatusOK, eventsResponse{NoEvent: true})
			return
		}

		writeJSON(w, http.StatusOK, eventsResponse{
			Sunrise: time.UnixMilli(times.SunriseMillis).UTC().Format(time.RFC3339Nano),
			Transit: time.UnixMilli(times.TransitMillis).UTC().Format(time.RFC3339Nano),
			Sunset:  time.UnixMilli(times.SunsetMillis).UTC().Format(time.RFC3339Nano),
			Times:   &times,
		})
	}
}

// probePath returns true for health/readiness probe paths that should not log at INFO.
func probePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *slog.Logger, trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sr, r)

			duration := time.Since(start)
			level := slog.LevelInfo
			if probePath(r.URL.Path) {
				level = slog.LevelDebug
			}

			logger.Log(r.Context(), level, "request",
				"component", "api",
				"method", r.Method,
				"path", r.URL.Path,
				"status", strconv.Itoa(sr.statusCode),
				"duration_ms", duration.Milliseconds(),
				"remote_ip", httputil.ClientIP(r, trustProxy),
			)
		})
	}
}
