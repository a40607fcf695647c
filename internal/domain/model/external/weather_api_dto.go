package external

// Nested objects are pointers so a missing object can be told apart from an empty one.
// Leaves are pointers so a missing field stays missing downstream.

// LocationDTO is the "location" object shared by the current and forecast endpoints
type LocationDTO struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
}

// ConditionDTO is the "condition" object
type ConditionDTO struct {
	Text *string `json:"text"`
}

// CurrentResponse represents the response of GET /current.json
type CurrentResponse struct {
	Location *LocationDTO `json:"location"`
	Current  *CurrentDTO  `json:"current"`
}

// CurrentDTO represents the "current" object
type CurrentDTO struct {
	TempC     *float64      `json:"temp_c"`
	TempF     *float64      `json:"temp_f"`
	Condition *ConditionDTO `json:"condition"`
	WindMph   *float64      `json:"wind_mph"`
	Humidity  *float64      `json:"humidity"`
}

// ForecastResponse represents the response of GET /forecast.json
type ForecastResponse struct {
	Location *LocationDTO `json:"location"`
	Forecast *ForecastDTO `json:"forecast"`
}

// ForecastDTO represents the "forecast" object
type ForecastDTO struct {
	ForecastDay []ForecastDayDTO `json:"forecastday"`
}

// ForecastDayDTO represents one entry of "forecastday"
type ForecastDayDTO struct {
	Date *string `json:"date"`
	Day  *DayDTO `json:"day"`
}

// DayDTO represents the "day" summary of a forecast entry
type DayDTO struct {
	MaxTempC  *float64      `json:"maxtemp_c"`
	MinTempC  *float64      `json:"mintemp_c"`
	Condition *ConditionDTO `json:"condition"`
}

// APIErrorResponse represents error responses from the weather API
type APIErrorResponse struct {
	Error APIErrorDetail `json:"error"`
}

// APIErrorDetail carries the provider error code and message
type APIErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
