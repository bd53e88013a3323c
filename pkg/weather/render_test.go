package weather

import (
	"strings"
	"testing"

	"weather-mcp/pkg/openmeteo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }

func TestRenderTemperature(t *testing.T) {
	text, err := renderTemperature(&openmeteo.CurrentBlock{Temperature: f(8.5)})
	require.NoError(t, err)
	assert.Equal(t, "Huidige temperatuur: 8.5°C", text)
}

func TestRenderTemperatureMissingField(t *testing.T) {
	_, err := renderTemperature(&openmeteo.CurrentBlock{})
	require.Error(t, err)
	assert.Equal(t, openmeteo.ErrKindDataShape, openmeteo.KindOf(err))
}

func TestRenderCurrent(t *testing.T) {
	cur := &openmeteo.CurrentBlock{
		Temperature:      f(3.8),
		RelativeHumidity: f(82),
		WindSpeed:        f(15),
		WeatherCode:      i(3),
	}
	text, err := renderCurrent(cur)
	require.NoError(t, err)

	assert.Contains(t, text, "3.8°C")
	assert.Contains(t, text, "82%")
	assert.Contains(t, text, "15 km/u")
	assert.Contains(t, text, "Bewolkt")
}

func TestRenderCurrentUnknownCode(t *testing.T) {
	cur := &openmeteo.CurrentBlock{
		Temperature:      f(3.8),
		RelativeHumidity: f(82),
		WindSpeed:        f(15),
		WeatherCode:      i(250),
	}
	text, err := renderCurrent(cur)
	require.NoError(t, err)
	assert.Contains(t, text, UnknownDescription)
}

func TestRenderCurrentMissingFields(t *testing.T) {
	cases := map[string]*openmeteo.CurrentBlock{
		"temperature": {RelativeHumidity: f(82), WindSpeed: f(15), WeatherCode: i(3)},
		"humidity":    {Temperature: f(3.8), WindSpeed: f(15), WeatherCode: i(3)},
		"wind":        {Temperature: f(3.8), RelativeHumidity: f(82), WeatherCode: i(3)},
		"code":        {Temperature: f(3.8), RelativeHumidity: f(82), WindSpeed: f(15)},
	}
	for name, cur := range cases {
		_, err := renderCurrent(cur)
		require.Error(t, err, name)
		assert.Equal(t, openmeteo.ErrKindDataShape, openmeteo.KindOf(err), name)
	}
}

func TestRenderForecastFiveLines(t *testing.T) {
	daily := &openmeteo.DailyBlock{
		Time:             []string{"2026-08-26", "2026-08-27", "2026-08-28", "2026-08-29", "2026-08-30"},
		WeatherCode:      []int{0, 3, 61, 95, 250},
		TemperatureMax:   []float64{21.3, 20.1, 19.8, 18, 17.5},
		TemperatureMin:   []float64{12.1, 11.4, 10.9, 10.2, 9.8},
		PrecipitationSum: []float64{0, 0, 0.2, 1.4, 5.1},
	}
	text := renderForecast(daily, 5)

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "2026-08-26: 12.1°C - 21.3°C, Onbewolkt, neerslag 0 mm", lines[0])
	assert.Contains(t, lines[1], "Bewolkt")
	assert.Contains(t, lines[2], "neerslag 0.2 mm")
	assert.Contains(t, lines[3], "Onweer")
	// Unmapped code renders the placeholder, not an error.
	assert.Contains(t, lines[4], UnknownDescription)
}
