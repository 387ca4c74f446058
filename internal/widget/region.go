package widget

import "slices"

// Element ids of the search control, as rendered by the page template.
const (
	DropdownID    = "dropdown"
	InputID       = "cityInput"
	SuggestionsID = "suggestions"

	suggestionItemPrefix = "suggestion-"
)

// Region is a named area of the page and the ids of every element inside it.
type Region struct {
	Name    string
	Members []string
}

// Contains reports whether target is the region itself or one of its members.
func (r Region) Contains(target string) bool {
	if target == "" {
		return false
	}
	return target == r.Name || slices.Contains(r.Members, target)
}

// IsOutside reports whether a click on target happened outside region.
func IsOutside(region Region, target string) bool {
	return !region.Contains(target)
}

// SuggestionItemID is the element id of the suggestion entry for city.
func SuggestionItemID(city string) string {
	return suggestionItemPrefix + city
}

// SearchRegion is the dropdown wrapping the input and the given suggestion entries.
func SearchRegion(suggestions []string) Region {
	members := make([]string, 0, len(suggestions)+2)
	members = append(members, InputID, SuggestionsID)
	for _, city := range suggestions {
		members = append(members, SuggestionItemID(city))
	}
	return Region{Name: DropdownID, Members: members}
}
