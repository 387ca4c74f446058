package weather

import (
	"errors"
	"strconv"
	"strings"

	"github.com/onja-org/w2-scss-lab/internal/data"
	"github.com/onja-org/w2-scss-lab/internal/models"
)

const (
	// NotFoundMessage is shown when a submitted city is not in the table.
	NotFoundMessage = "City not found in our Madagascar data."

	iconURLTemplate = "https://openweathermap.org/img/wn/%s@2x.png"
	tempUnit        = " °C"
)

var ErrCityNotFound = errors.New(NotFoundMessage)

// Filter returns the rows whose city starts with fragment, ignoring case, in table order.
// An empty fragment matches nothing.
func Filter(fragment string, table *data.Table) []models.WeatherRecord {
	matches := []models.WeatherRecord{}
	if fragment == "" {
		return matches
	}

	prefix := strings.ToLower(fragment)
	table.Each(func(r models.WeatherRecord) bool {
		if strings.HasPrefix(strings.ToLower(r.City), prefix) {
			matches = append(matches, r)
		}
		return true
	})

	return matches
}

// Lookup trims text and returns the first row whose city equals it, ignoring case.
func Lookup(text string, table *data.Table) (models.WeatherRecord, error) {
	city := strings.ToLower(strings.TrimSpace(text))

	var (
		found models.WeatherRecord
		ok    bool
	)
	table.Each(func(r models.WeatherRecord) bool {
		if strings.ToLower(r.City) == city {
			found, ok = r, true
			return false
		}
		return true
	})

	if !ok {
		return models.WeatherRecord{}, ErrCityNotFound
	}
	return found, nil
}

// ImageURL substitutes icon into the OpenWeatherMap icon URL. The icon is not validated.
func ImageURL(icon string) string {
	return strings.Replace(iconURLTemplate, "%s", icon, 1)
}

// Render builds the result panel for a record.
func Render(r models.WeatherRecord) models.ResultView {
	return models.ResultView{
		City:        r.City,
		Country:     r.Country,
		Weather:     r.Weather,
		Description: r.Description,
		Temp:        r.Temp,
		TempLabel:   strconv.FormatFloat(r.Temp, 'f', -1, 64) + tempUnit,
		ImageURL:    ImageURL(r.Icon),
	}
}
