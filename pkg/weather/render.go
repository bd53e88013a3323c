package weather

import (
	"fmt"
	"strconv"
	"strings"

	"weather-mcp/pkg/openmeteo"
)

// formatValue renders a provider number exactly as received, without
// rounding or unit conversion.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderTemperature produces the single-value temperature text.
func renderTemperature(cur *openmeteo.CurrentBlock) (string, error) {
	if cur.Temperature == nil {
		return "", openmeteo.DataShapeError("weather data is missing the current temperature")
	}
	return fmt.Sprintf("Huidige temperatuur: %s°C", formatValue(*cur.Temperature)), nil
}

// renderCurrent produces the full current-conditions text, one line per
// field. Every requested field must be present; the weather code is the one
// value allowed to be unmapped.
func renderCurrent(cur *openmeteo.CurrentBlock) (string, error) {
	switch {
	case cur.Temperature == nil:
		return "", openmeteo.DataShapeError("weather data is missing the current temperature")
	case cur.RelativeHumidity == nil:
		return "", openmeteo.DataShapeError("weather data is missing the relative humidity")
	case cur.WindSpeed == nil:
		return "", openmeteo.DataShapeError("weather data is missing the wind speed")
	case cur.WeatherCode == nil:
		return "", openmeteo.DataShapeError("weather data is missing the weather code")
	}

	lines := []string{
		fmt.Sprintf("Temperatuur: %s°C", formatValue(*cur.Temperature)),
		fmt.Sprintf("Luchtvochtigheid: %s%%", formatValue(*cur.RelativeHumidity)),
		fmt.Sprintf("Wind: %s km/u", formatValue(*cur.WindSpeed)),
		fmt.Sprintf("Omstandigheden: %s", DescribeCode(*cur.WeatherCode)),
	}
	return strings.Join(lines, "\n"), nil
}

// renderForecast produces one line per day for exactly days entries. The
// provider client has already verified the arrays cover the window.
func renderForecast(daily *openmeteo.DailyBlock, days int) string {
	lines := make([]string, 0, days)
	for i := 0; i < days; i++ {
		lines = append(lines, fmt.Sprintf("%s: %s°C - %s°C, %s, neerslag %s mm",
			daily.Time[i],
			formatValue(daily.TemperatureMin[i]),
			formatValue(daily.TemperatureMax[i]),
			DescribeCode(daily.WeatherCode[i]),
			formatValue(daily.PrecipitationSum[i]),
		))
	}
	return strings.Join(lines, "\n")
}
