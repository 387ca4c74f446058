package data

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/onja-org/w2-scss-lab/internal/models"
)

// Table is the fixed, ordered list of known cities. It is never mutated after construction.
type Table struct {
	records []models.WeatherRecord
}

// NewTable copies records into a table, rejecting case-insensitive duplicate city names.
func NewTable(records ...models.WeatherRecord) (*Table, error) {
	var result *multierror.Error

	seen := make(map[string]int, len(records))
	for i, r := range records {
		key := strings.ToLower(r.City)
		if first, ok := seen[key]; ok {
			result = multierror.Append(result,
				fmt.Errorf("duplicate city %q at positions %d and %d", r.City, first, i))
			continue
		}
		seen[key] = i
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return Unchecked(records...), nil
}

// Unchecked builds a table without enforcing city uniqueness.
func Unchecked(records ...models.WeatherRecord) *Table {
	cp := make([]models.WeatherRecord, len(records))
	copy(cp, records)
	return &Table{records: cp}
}

// Records returns a copy of the table rows in order.
func (t *Table) Records() []models.WeatherRecord {
	cp := make([]models.WeatherRecord, len(t.records))
	copy(cp, t.records)
	return cp
}

// Len reports the number of rows.
func (t *Table) Len() int {
	return len(t.records)
}

// Each calls fn for every row in order until fn returns false.
func (t *Table) Each(fn func(models.WeatherRecord) bool) {
	for _, r := range t.records {
		if !fn(r) {
			return
		}
	}
}
