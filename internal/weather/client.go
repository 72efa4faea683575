package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fleet-monitor/internal/config"
	"fleet-monitor/internal/logger"

	"go.uber.org/zap"
)

// Forecast is one hourly weather point for a location.
type Forecast struct {
	Latitude   float64
	Longitude  float64
	Timestamp  time.Time
	Condition  Condition
	WindSpeed  float64 // knots
	WaveHeight float64 // meters
	Visibility float64 // nautical miles
}

// Report is the processed answer for a vessel position: the current
// condition plus the hourly forecasts behind it.
type Report struct {
	Current    Condition
	Forecasts  []Forecast
	WaveHeight float64
	WindSpeed  float64
}

// Client talks to the StormGlass point API. Failures degrade to a calm
// fallback report so route planning never blocks on the weather side.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *config.WeatherConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type pointResponse struct {
	Hours []map[string]json.RawMessage `json:"hours"`
	Meta  struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"meta"`
}

// VesselWeather fetches weather for a position and the given number of
// forecast hours. On any API failure it logs and returns Fallback().
func (c *Client) VesselWeather(ctx context.Context, lat, lon float64, hours int) *Report {
	report, err := c.fetch(ctx, lat, lon, hours)
	if err != nil {
		logger.Error("Error fetching weather data",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err),
		)
		return Fallback()
	}
	return report
}

func (c *Client) fetch(ctx context.Context, lat, lon float64, hours int) (*Report, error) {
	endpoint := fmt.Sprintf("%s/weather/point", c.baseURL)

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("params", "waveHeight,windSpeed,windDirection,visibility")
	params.Set("hours", strconv.Itoa(hours))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var data pointResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	return processResponse(&data)
}

func processResponse(data *pointResponse) (*Report, error) {
	if len(data.Hours) == 0 {
		return nil, fmt.Errorf("weather response contains no hours")
	}

	forecasts := make([]Forecast, 0, len(data.Hours))
	for _, hour := range data.Hours {
		waveHeight := sourceValue(hour, "waveHeight")
		windSpeed := sourceValue(hour, "windSpeed")
		visibility := sourceValueDefault(hour, "visibility", 10)

		ts, _ := hourTime(hour)
		forecasts = append(forecasts, Forecast{
			Latitude:   data.Meta.Lat,
			Longitude:  data.Meta.Lng,
			Timestamp:  ts,
			Condition:  Classify(waveHeight, windSpeed),
			WindSpeed:  windSpeed,
			WaveHeight: waveHeight,
			Visibility: visibility,
		})
	}

	current := forecasts[0]
	return &Report{
		Current:    current.Condition,
		Forecasts:  forecasts,
		WaveHeight: current.WaveHeight,
		WindSpeed:  current.WindSpeed,
	}, nil
}

// Fallback is the report used when the API is unreachable: calm seas,
// default visibility. Planning proceeds with conservative labels rather
// than failing.
func Fallback() *Report {
	return &Report{
		Current: ConditionCalm,
		Forecasts: []Forecast{
			{
				Timestamp:  time.Now(),
				Condition:  ConditionCalm,
				Visibility: 10,
			},
		},
	}
}

// sourceValue pulls the NOAA reading for a parameter out of one hour of
// the StormGlass response.
func sourceValue(hour map[string]json.RawMessage, key string) float64 {
	return sourceValueDefault(hour, key, 0)
}

func sourceValueDefault(hour map[string]json.RawMessage, key string, def float64) float64 {
	raw, ok := hour[key]
	if !ok {
		return def
	}
	var sources map[string]float64
	if err := json.Unmarshal(raw, &sources); err != nil {
		return def
	}
	if v, ok := sources["noaa"]; ok {
		return v
	}
	return def
}

func hourTime(hour map[string]json.RawMessage) (time.Time, error) {
	raw, ok := hour["time"]
	if !ok {
		return time.Time{}, fmt.Errorf("hour missing time field")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, s)
}
