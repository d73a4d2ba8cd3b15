package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"riko-storefront/config"
	httpapi "riko-storefront/storefront-svc/internal/api/http"
	"riko-storefront/storefront-svc/internal/hours"
	"riko-storefront/storefront-svc/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	handler := httpapi.NewHandler(
		mocks.NewSessionServiceInterface(t),
		mocks.NewCatalogServiceInterface(t),
		mocks.NewCartServiceInterface(t),
		mocks.NewCheckoutServiceInterface(t),
		mocks.NewOrderServiceInterface(t),
		mocks.NewChatServiceInterface(t),
	)
	router := httpapi.NewRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "storefront-svc", body["service"])
}

func TestCORSPreflightAllowsSessionHeader(t *testing.T) {
	handler := httpapi.NewHandler(
		mocks.NewSessionServiceInterface(t),
		mocks.NewCatalogServiceInterface(t),
		mocks.NewCartServiceInterface(t),
		mocks.NewCheckoutServiceInterface(t),
		mocks.NewOrderServiceInterface(t),
		mocks.NewChatServiceInterface(t),
	)
	router := httpapi.NewRouter(handler)

	req := httptest.NewRequest(http.MethodOptions, "/api/orders/o1/cancel", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", httpapi.SessionHeader)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestNewEvaluator(t *testing.T) {
	type testCase struct {
		name       string
		settings   config.Settings
		wantNames  [7]string
		wantZone   string
		wantNilLoc bool
	}

	tests := []testCase{
		{
			name:      "spanish with caracas time",
			settings:  config.Settings{WeekdayLocale: "es", TimeZone: "America/Caracas"},
			wantNames: hours.SpanishWeekdays,
			wantZone:  "America/Caracas",
		},
		{
			name:      "english weekdays",
			settings:  config.Settings{WeekdayLocale: "en", TimeZone: "UTC"},
			wantNames: hours.EnglishWeekdays,
			wantZone:  "UTC",
		},
		{
			name:       "unknown zone keeps instant location",
			settings:   config.Settings{WeekdayLocale: "es", TimeZone: "Nowhere/Atlantis"},
			wantNames:  hours.SpanishWeekdays,
			wantNilLoc: true,
		},
		{
			name:       "empty zone",
			settings:   config.Settings{},
			wantNames:  hours.SpanishWeekdays,
			wantNilLoc: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEvaluator(tc.settings)
			assert.Equal(t, tc.wantNames, e.Names)
			if tc.wantNilLoc {
				assert.Nil(t, e.Location)
				return
			}
			require.NotNil(t, e.Location)
			assert.Equal(t, tc.wantZone, e.Location.String())
		})
	}
}

func TestNewEvaluatorDoesNotMutateDefault(t *testing.T) {
	newEvaluator(config.Settings{WeekdayLocale: "en", TimeZone: "UTC"})
	assert.Equal(t, hours.SpanishWeekdays, hours.Default.Names)
	assert.Nil(t, hours.Default.Location)
}

func TestNewBackendUsesSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/restaurant/restaurants", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	backend := newBackend(config.Settings{
		BackendURL:     srv.URL + "/api/",
		BackendTimeout: time.Second,
	})

	restaurants, err := backend.ListRestaurants(context.Background())
	require.NoError(t, err)
	assert.Empty(t, restaurants)
}
