package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"fleet-monitor/internal/config"
	"fleet-monitor/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("test"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const samplePointResponse = `{
  "hours": [
    {
      "time": "2026-03-01T00:00:00+00:00",
      "waveHeight": {"noaa": 2.4},
      "windSpeed": {"noaa": 12.0},
      "visibility": {"noaa": 8.0}
    },
    {
      "time": "2026-03-01T01:00:00+00:00",
      "waveHeight": {"noaa": 0.6},
      "windSpeed": {"noaa": 4.0}
    }
  ],
  "meta": {"lat": 37.9838, "lng": 23.7275}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(&config.WeatherConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
	return client, srv
}

func TestVesselWeather(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePointResponse))
	})

	report := client.VesselWeather(context.Background(), 37.9838, 23.7275, 24)

	if gotAuth != "test-key" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "test-key")
	}
	if report.Current != ConditionRough {
		t.Errorf("current condition = %v, want %v", report.Current, ConditionRough)
	}
	if len(report.Forecasts) != 2 {
		t.Fatalf("forecasts = %d, want 2", len(report.Forecasts))
	}
	if report.Forecasts[1].Condition != ConditionCalm {
		t.Errorf("second forecast condition = %v, want %v", report.Forecasts[1].Condition, ConditionCalm)
	}
	// visibility missing in second hour defaults to 10 nm
	if report.Forecasts[1].Visibility != 10 {
		t.Errorf("second forecast visibility = %v, want 10", report.Forecasts[1].Visibility)
	}
	if report.Forecasts[0].Latitude != 37.9838 {
		t.Errorf("forecast latitude = %v, want 37.9838", report.Forecasts[0].Latitude)
	}
}

func TestVesselWeatherFallsBackOnServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	})

	report := client.VesselWeather(context.Background(), 0, 0, 24)

	if report.Current != ConditionCalm {
		t.Errorf("fallback condition = %v, want %v", report.Current, ConditionCalm)
	}
	if len(report.Forecasts) != 1 {
		t.Errorf("fallback forecasts = %d, want 1", len(report.Forecasts))
	}
}

func TestVesselWeatherFallsBackOnEmptyHours(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hours": [], "meta": {"lat": 0, "lng": 0}}`))
	})

	report := client.VesselWeather(context.Background(), 0, 0, 24)

	if report.Current != ConditionCalm {
		t.Errorf("fallback condition = %v, want %v", report.Current, ConditionCalm)
	}
}
