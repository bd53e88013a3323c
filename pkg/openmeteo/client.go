// Package openmeteo is a minimal client for the Open-Meteo forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Field names of the current-conditions block, as the API spells them.
const (
	FieldTemperature      = "temperature_2m"
	FieldRelativeHumidity = "relative_humidity_2m"
	FieldWindSpeed        = "wind_speed_10m"
	FieldWeatherCode      = "weather_code"
)

// Location is a pair of WGS84 coordinates.
type Location struct {
	Latitude  float64
	Longitude float64
}

func (l Location) String() string {
	return fmt.Sprintf("%s, %s", formatCoord(l.Latitude), formatCoord(l.Longitude))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// forecastResponse mirrors the parts of the API JSON this server consumes.
// Blocks are pointers so an absent block is distinguishable from an empty one.
type forecastResponse struct {
	Timezone string        `json:"timezone"`
	Current  *CurrentBlock `json:"current"`
	Daily    *DailyBlock   `json:"daily"`
}

// CurrentBlock holds current conditions. Fields are pointers because the API
// only returns the variables that were requested; a nil field means the
// provider did not include it.
type CurrentBlock struct {
	Time             *string  `json:"time"`
	Temperature      *float64 `json:"temperature_2m"`
	RelativeHumidity *float64 `json:"relative_humidity_2m"`
	WindSpeed        *float64 `json:"wind_speed_10m"`
	WeatherCode      *int     `json:"weather_code"`
}

// DailyBlock holds the day-by-day forecast as parallel arrays, one entry per day.
type DailyBlock struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weather_code"`
	TemperatureMax   []float64 `json:"temperature_2m_max"`
	TemperatureMin   []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
}

// Client issues forecast requests against an Open-Meteo style endpoint. It is
// safe for concurrent use; the embedded http.Client bounds every call.
type Client struct {
	baseURL    string
	timezone   string
	httpClient *http.Client
}

// NewClient creates a provider client. baseURL is the API root without the
// /v1/forecast path; timeout bounds each outbound call.
func NewClient(baseURL, timezone string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timezone:   timezone,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Current fetches the requested current-conditions fields for a location.
// The returned block is guaranteed non-nil; individual fields may still be
// nil when the provider omits them.
func (c *Client) Current(ctx context.Context, loc Location, fields []string) (*CurrentBlock, error) {
	query := c.baseQuery(loc)
	query.Set("current", strings.Join(fields, ","))

	resp, err := c.get(ctx, query)
	if err != nil {
		return nil, err
	}
	if resp.Current == nil {
		return nil, DataShapeError("weather data is missing current conditions")
	}
	return resp.Current, nil
}

// Forecast fetches a daily forecast covering at least days entries. A
// response with fewer entries is a data-shape error, never truncated output.
func (c *Client) Forecast(ctx context.Context, loc Location, days int) (*DailyBlock, error) {
	query := c.baseQuery(loc)
	query.Set("daily", strings.Join([]string{
		FieldWeatherCode,
		FieldTemperature + "_max",
		FieldTemperature + "_min",
		"precipitation_sum",
	}, ","))
	query.Set("forecast_days", strconv.Itoa(days))

	resp, err := c.get(ctx, query)
	if err != nil {
		return nil, err
	}
	daily := resp.Daily
	if daily == nil {
		return nil, DataShapeError("weather data is missing the daily forecast")
	}
	if len(daily.Time) < days ||
		len(daily.WeatherCode) < days ||
		len(daily.TemperatureMax) < days ||
		len(daily.TemperatureMin) < days ||
		len(daily.PrecipitationSum) < days {
		return nil, DataShapeError(fmt.Sprintf("weather data covers fewer than %d days", days))
	}
	return daily, nil
}

func (c *Client) baseQuery(loc Location) url.Values {
	query := url.Values{}
	query.Set("latitude", formatCoord(loc.Latitude))
	query.Set("longitude", formatCoord(loc.Longitude))
	query.Set("timezone", c.timezone)
	return query
}

// get performs the single outbound call of an invocation and decodes the
// response. All failure modes collapse into transport or data-shape errors.
func (c *Client) get(ctx context.Context, query url.Values) (*forecastResponse, error) {
	endpoint := c.baseURL + "/v1/forecast?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, TransportError("could not build weather request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warnf("Weather request failed: %v", err)
		return nil, TransportError("weather service is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warnf("Weather service returned status %s", resp.Status)
		return nil, TransportError(fmt.Sprintf("weather service returned status %d", resp.StatusCode), nil)
	}

	var parsed forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, DataShapeError("weather service returned malformed JSON")
	}
	return &parsed, nil
}
