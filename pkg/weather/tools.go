// Package weather exposes the weather lookup tools served over MCP.
package weather

import (
	"context"
	"fmt"

	"weather-mcp/pkg/mcp"
	"weather-mcp/pkg/openmeteo"
	"weather-mcp/pkg/protocol"
)

// Tool names as clients see them.
const (
	ToolGetTemperature    = "get_temperature"
	ToolGetCurrentWeather = "get_current_weather"
	ToolGetForecast       = "get_forecast"
)

// forecastDays is the fixed forecast window; the provider must cover all of it.
const forecastDays = 5

// LocationParams are the arguments shared by all weather tools. Both fields
// are optional; when absent the configured default location is used.
type LocationParams struct {
	Latitude  *float64 `json:"latitude,omitempty" description:"Override latitude in decimal degrees. Defaults to the server's configured location."`
	Longitude *float64 `json:"longitude,omitempty" description:"Override longitude in decimal degrees. Defaults to the server's configured location."`
}

// Service implements the weather tools on top of the provider client. It
// holds no per-request state and is safe for concurrent use.
type Service struct {
	client *openmeteo.Client
	home   openmeteo.Location
}

// NewService creates a weather tool service using the given provider client
// and default location.
func NewService(client *openmeteo.Client, home openmeteo.Location) *Service {
	return &Service{client: client, home: home}
}

// Registrations returns the tool catalogue in presentation order.
func (s *Service) Registrations() []mcp.ToolRegistration {
	return []mcp.ToolRegistration{
		{
			Definition: protocol.Tool{
				Name:        ToolGetTemperature,
				Title:       "Huidige temperatuur",
				Description: fmt.Sprintf("Get current temperature for location (%s) via OpenMeteo API", s.home),
			},
			Handler: s.getTemperature,
		},
		{
			Definition: protocol.Tool{
				Name:        ToolGetCurrentWeather,
				Title:       "Actueel weer",
				Description: fmt.Sprintf("Get current weather conditions (temperature, humidity, wind, sky) for location (%s) via OpenMeteo API", s.home),
			},
			Handler: s.getCurrentWeather,
		},
		{
			Definition: protocol.Tool{
				Name:        ToolGetForecast,
				Title:       "Weersverwachting",
				Description: fmt.Sprintf("Get a %d-day weather forecast for location (%s) via OpenMeteo API", forecastDays, s.home),
			},
			Handler: s.getForecast,
		},
	}
}

// resolveLocation merges explicit override coordinates with the configured
// default. A lone latitude or longitude keeps the default for the other axis.
func (s *Service) resolveLocation(params *LocationParams) openmeteo.Location {
	loc := s.home
	if params.Latitude != nil {
		loc.Latitude = *params.Latitude
	}
	if params.Longitude != nil {
		loc.Longitude = *params.Longitude
	}
	return loc
}

func (s *Service) getTemperature(ctx context.Context, params *LocationParams) (string, error) {
	cur, err := s.client.Current(ctx, s.resolveLocation(params), []string{
		openmeteo.FieldTemperature,
	})
	if err != nil {
		return "", err
	}
	return renderTemperature(cur)
}

func (s *Service) getCurrentWeather(ctx context.Context, params *LocationParams) (string, error) {
	cur, err := s.client.Current(ctx, s.resolveLocation(params), []string{
		openmeteo.FieldTemperature,
		openmeteo.FieldRelativeHumidity,
		openmeteo.FieldWindSpeed,
		openmeteo.FieldWeatherCode,
	})
	if err != nil {
		return "", err
	}
	return renderCurrent(cur)
}

func (s *Service) getForecast(ctx context.Context, params *LocationParams) (string, error) {
	daily, err := s.client.Forecast(ctx, s.resolveLocation(params), forecastDays)
	if err != nil {
		return "", err
	}
	return renderForecast(daily, forecastDays), nil
}
