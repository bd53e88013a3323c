package weather

import (
	"testing"
	"time"

	"weather-mcp/pkg/openmeteo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *Service {
	client := openmeteo.NewClient("http://127.0.0.1:1", "Europe/Amsterdam", time.Second)
	return NewService(client, openmeteo.Location{Latitude: 51.8, Longitude: 5.8})
}

func TestRegistrationsCatalogue(t *testing.T) {
	regs := testService().Registrations()
	require.Len(t, regs, 3)

	assert.Equal(t, ToolGetTemperature, regs[0].Definition.Name)
	assert.Equal(t, ToolGetCurrentWeather, regs[1].Definition.Name)
	assert.Equal(t, ToolGetForecast, regs[2].Definition.Name)

	for _, reg := range regs {
		assert.NotEmpty(t, reg.Definition.Description)
		assert.Contains(t, reg.Definition.Description, "51.8, 5.8")
		assert.NotNil(t, reg.Handler)
	}
}

func TestResolveLocation(t *testing.T) {
	svc := testService()

	loc := svc.resolveLocation(&LocationParams{})
	assert.Equal(t, 51.8, loc.Latitude)
	assert.Equal(t, 5.8, loc.Longitude)

	lat := 52.37
	loc = svc.resolveLocation(&LocationParams{Latitude: &lat})
	assert.Equal(t, 52.37, loc.Latitude)
	assert.Equal(t, 5.8, loc.Longitude)

	lon := 4.89
	loc = svc.resolveLocation(&LocationParams{Latitude: &lat, Longitude: &lon})
	assert.Equal(t, 52.37, loc.Latitude)
	assert.Equal(t, 4.89, loc.Longitude)
}
