package models

// WeatherRecord is one canned weather entry for a known city.
type WeatherRecord struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Weather     string  `json:"weather"`
	Description string  `json:"description"`
	Temp        float64 `json:"temp"`
	Icon        string  `json:"icon"`
}

// ResultView is what the result panel shows for a matched record.
type ResultView struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Weather     string  `json:"weather"`
	Description string  `json:"description"`
	Temp        float64 `json:"temp"`
	TempLabel   string  `json:"tempLabel"`
	ImageURL    string  `json:"imageUrl"`
}
