package dto

// WeatherResponse is served to the board's weather widget. Upstream
// failures degrade into placeholder values instead of errors.
type WeatherResponse struct {
	Temp   interface{} `json:"temp"`
	Status string      `json:"status"`
	Icon   string      `json:"icon"`
}
