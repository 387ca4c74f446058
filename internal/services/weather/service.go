package weather

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/onja-org/w2-scss-lab/internal/data"
	"github.com/onja-org/w2-scss-lab/internal/models"
)

const (
	lookupFound    = "found"
	lookupNotFound = "not_found"
)

type recorder interface {
	ObserveSuggestions(count int)
	ObserveLookup(result string)
}

type ServiceProvider struct {
	table   *data.Table
	logger  zerolog.Logger
	metrics recorder
}

func NewService(table *data.Table, logger zerolog.Logger, metrics recorder) *ServiceProvider {
	return &ServiceProvider{table: table, logger: logger, metrics: metrics}
}

// Table exposes the read-only table the service queries, so the widget
// session handlers look cities up in the same table.
func (s *ServiceProvider) Table() *data.Table {
	return s.table
}

func (s *ServiceProvider) Suggest(ctx context.Context, fragment string) []models.WeatherRecord {
	matches := Filter(fragment, s.table)

	s.logger.Debug().
		Ctx(ctx).
		Str("fragment", fragment).
		Int("matches", len(matches)).
		Msg("suggestions filtered")
	s.metrics.ObserveSuggestions(len(matches))

	return matches
}

func (s *ServiceProvider) GetByCity(ctx context.Context, city string) (models.WeatherRecord, error) {
	record, err := Lookup(city, s.table)
	if err != nil {
		if errors.Is(err, ErrCityNotFound) {
			s.logger.Info().
				Ctx(ctx).
				Str("city", city).
				Msg("city not found")
			s.metrics.ObserveLookup(lookupNotFound)
		}
		return models.WeatherRecord{}, err
	}

	s.logger.Info().
		Ctx(ctx).
		Str("city", record.City).
		Msg("lookup succeeded")
	s.metrics.ObserveLookup(lookupFound)

	return record, nil
}
