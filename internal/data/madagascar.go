package data

import "github.com/onja-org/w2-scss-lab/internal/models"

const countryMG = "MG"

var madagascar = []models.WeatherRecord{
	{City: "Antananarivo", Country: countryMG, Weather: "Sunny", Description: "Clear sky and warm sunshine", Temp: 27, Icon: "01d"},
	{City: "Toamasina", Country: countryMG, Weather: "Rain", Description: "Light rain showers", Temp: 24, Icon: "09d"},
	{City: "Fianarantsoa", Country: countryMG, Weather: "Cloudy", Description: "Overcast with a cool breeze", Temp: 20, Icon: "03d"},
	{City: "Mahajanga", Country: countryMG, Weather: "Thunderstorm", Description: "Stormy skies and lightning", Temp: 26, Icon: "11d"},
	{City: "Toliara", Country: countryMG, Weather: "Windy", Description: "Dusty winds across the coast", Temp: 28, Icon: "50d"},
}

// Madagascar returns the canned five-city table.
func Madagascar() *Table {
	t, err := NewTable(madagascar...)
	if err != nil {
		panic(err)
	}
	return t
}
