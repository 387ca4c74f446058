package widget

import (
	"errors"
	"fmt"
	"slices"

	"github.com/onja-org/w2-scss-lab/internal/data"
	"github.com/onja-org/w2-scss-lab/internal/models"
	"github.com/onja-org/w2-scss-lab/internal/services/weather"
)

var ErrNotSuggested = errors.New("city is not among the current suggestions")

// Controller applies user interactions to a widget state.
// It is not safe for concurrent use.
type Controller struct {
	table *data.Table
	state models.WidgetState
}

func NewController(table *data.Table, state models.WidgetState) *Controller {
	if state.Suggestions == nil {
		state.Suggestions = []string{}
	}
	return &Controller{table: table, state: state}
}

// State returns a copy of the current state.
func (c *Controller) State() models.WidgetState {
	s := c.state
	s.Suggestions = append([]string{}, c.state.Suggestions...)
	if c.state.Result != nil {
		r := *c.state.Result
		s.Result = &r
	}
	return s
}

// Type handles a keystroke leaving text in the input.
func (c *Controller) Type(text string) {
	c.state.QueryText = text

	matches := weather.Filter(text, c.table)
	if len(matches) == 0 {
		c.hideSuggestions()
		return
	}

	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.City)
	}
	c.state.Suggestions = suggestions
	c.state.SuggestionsVisible = true
}

// Select handles a click on a suggestion entry.
func (c *Controller) Select(city string) error {
	if !c.state.SuggestionsVisible || !slices.Contains(c.state.Suggestions, city) {
		return fmt.Errorf("%q: %w", city, ErrNotSuggested)
	}

	c.state.QueryText = city
	c.hideSuggestions()
	return nil
}

// Submit looks up the current input and fills the result panel or the not-found message.
// The input is left as typed.
func (c *Controller) Submit() {
	record, err := weather.Lookup(c.state.QueryText, c.table)
	if err != nil {
		c.state.Result = nil
		c.state.Message = weather.NotFoundMessage
		return
	}

	view := weather.Render(record)
	c.state.Result = &view
	c.state.Message = ""
}

// Click handles a pointer activation on target and reports whether it dismissed the list.
func (c *Controller) Click(target string) bool {
	if !IsOutside(SearchRegion(c.state.Suggestions), target) {
		return false
	}

	dismissed := c.state.SuggestionsVisible
	c.state.SuggestionsVisible = false
	return dismissed
}

func (c *Controller) hideSuggestions() {
	c.state.Suggestions = []string{}
	c.state.SuggestionsVisible = false
}
