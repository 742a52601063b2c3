package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sun/sungo/internal/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func testDefaults() Defaults {
	return Defaults{
		PressureMb:   1013.25,
		TemperatureC: 15,
		ElevationM:   0,
		DeltaT:       69,
		H0Prime:      -0.8333,
	}
}

func newTestServer(t *testing.T, authCfg auth.Config) *httptest.Server {
	t.Helper()
	srv := NewServer(":0", testLogger(), authCfg, testDefaults(), false)
	ts := httptest.NewServer(srv.HTTPServer().Handler)
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, ts *httptest.Server, path string, out any) int {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestPositionEndpoint(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	var body struct {
		TimeMillis int64 `json:"time_millis"`
		Position   struct {
			ZenithAngle float64 `json:"zenith_angle"`
			Azimuth     float64 `json:"azimuth"`
		} `json:"position"`
		EquationOfTime struct {
			Minutes float64 `json:"minutes"`
		} `json:"equation_of_time"`
	}

	// The Reda & Andreas worked example, with per-request overrides for the
	// non-default atmosphere.
	status := getJSON(t, ts,
		"/api/v1/position?time=2003-10-17T19:30:30Z&lat=39.742476&lon=-105.1786"+
			"&pressure=820&temperature=11&elevation=1830.14&slope=30&azimuth_rotation=-10&delta_t=67",
		&body)
	require.Equal(t, http.StatusOK, status)

	assert.InDelta(t, 50.11162, body.Position.ZenithAngle, 1e-3)
	assert.InDelta(t, 194.34024, body.Position.Azimuth, 1e-3)
	assert.InDelta(t, 14.641503, body.EquationOfTime.Minutes, 1e-3)
	assert.Equal(t, int64(1066419030000), body.TimeMillis)
}

func TestPositionEndpointUnixMillis(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	var rfc, unix struct {
		Position struct {
			Azimuth float64 `json:"azimuth"`
		} `json:"position"`
	}

	require.Equal(t, http.StatusOK, getJSON(t, ts,
		"/api/v1/position?time=2003-10-17T19:30:30Z&lat=39.742476&lon=-105.1786", &rfc))
	require.Equal(t, http.StatusOK, getJSON(t, ts,
		"/api/v1/position?time=1066419030000&lat=39.742476&lon=-105.1786", &unix))

	assert.Equal(t, rfc.Position.Azimuth, unix.Position.Azimuth)
}

func TestPositionEndpointValidation(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	tests := []struct {
		name    string
		query   string
		errPart string
	}{
		{"missing lat", "?lon=10", "lat"},
		{"missing lon", "?lat=10", "lon"},
		{"bad time", "?time=yesterday&lat=10&lon=10", "time"},
		{"latitude out of range", "?lat=91&lon=10", "latitude"},
		{"longitude out of range", "?lat=10&lon=181", "longitude"},
		{"malformed numeric", "?lat=10&lon=10&pressure=high", "malformed"},
		{"slope out of range", "?lat=10&lon=10&slope=120", "slope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				Error string `json:"error"`
			}
			status := getJSON(t, ts, "/api/v1/position"+tt.query, &body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Contains(t, body.Error, tt.errPart)
		})
	}
}

func TestEventsEndpoint(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	var body struct {
		NoEvent bool   `json:"no_event"`
		Sunrise string `json:"sunrise"`
		Transit string `json:"transit"`
		Sunset  string `json:"sunset"`
		Times   *struct {
			SunriseMillis int64 `json:"sunrise_millis"`
			TransitMillis int64 `json:"transit_millis"`
			SunsetMillis  int64 `json:"sunset_millis"`
		} `json:"times"`
	}

	status := getJSON(t, ts,
		"/api/v1/events?time=2003-10-17T12:00:00Z&lat=39.742476&lon=-105.1786&delta_t=67", &body)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, body.Times)

	assert.False(t, body.NoEvent)
	assert.InDelta(t, 1066396363460, body.Times.SunriseMillis, 20)
	assert.InDelta(t, 1066416364970, body.Times.TransitMillis, 8)
	assert.InDelta(t, 1066436419190, body.Times.SunsetMillis, 9)
	assert.Contains(t, body.Sunrise, "2003-10-17T13:12:43")
	assert.Contains(t, body.Sunset, "2003-10-18T00:20:19")
}

func TestEventsEndpointPolarNight(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	var body struct {
		NoEvent bool `json:"no_event"`
		Sunrise string
	}
	status := getJSON(t, ts, "/api/v1/events?time=2020-12-21T12:00:00Z&lat=89.9&lon=0", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, body.NoEvent)
	assert.Empty(t, body.Sunrise)
}

func TestAuthProtectsAPI(t *testing.T) {
	ts := newTestServer(t, auth.Config{Enabled: true, Token: "sekrit"})

	// API without a token is rejected.
	resp, err := http.Get(ts.URL + "/api/v1/position?lat=10&lon=10")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Probes stay public.
	resp, err = http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A valid bearer token passes.
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/position?lat=10&lon=10", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer sekrit")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	resp, err := http.Post(ts.URL+"/api/v1/position?lat=10&lon=10", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t, auth.Config{})

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
