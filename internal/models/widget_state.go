package models

// WidgetState is the presentation state of one search widget.
type WidgetState struct {
	QueryText          string      `json:"queryText"`
	SuggestionsVisible bool        `json:"suggestionsVisible"`
	Suggestions        []string    `json:"suggestions"`
	Result             *ResultView `json:"result,omitempty"`
	Message            string      `json:"message,omitempty"`
}
