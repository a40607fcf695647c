package model

// CurrentConditions is the normalized answer of GET /weather/:city.
// Every field is copied from the provider, none is derived.
type CurrentConditions struct {
	Location  *string  `json:"location,omitempty"`
	Country   *string  `json:"country,omitempty"`
	TempC     *float64 `json:"temp_c,omitempty"`
	TempF     *float64 `json:"temp_f,omitempty"`
	Condition *string  `json:"condition,omitempty"`
	WindMph   *float64 `json:"wind_mph,omitempty"`
	Humidity  *float64 `json:"humidity,omitempty"`
}

// ForecastDay is a single day of a Forecast
type ForecastDay struct {
	Date      *string  `json:"date,omitempty"`
	MaxTempC  *float64 `json:"max_temp_c,omitempty"`
	MinTempC  *float64 `json:"min_temp_c,omitempty"`
	Condition *string  `json:"condition,omitempty"`
}

// Forecast is the normalized answer of GET /forecast/:city/:days.
// Days keep the provider order and count.
type Forecast struct {
	Location *string       `json:"location,omitempty"`
	Forecast []ForecastDay `json:"forecast"`
}

// ErrorResponse is the only body returned on failure
type ErrorResponse struct {
	Error string `json:"error"`
}
