package model

type Event struct {
	ID    string `json:"id"`
	Sport string `json:"sport"`
	Teams string `json:"teams"`
	Venue string `json:"venue"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	City  string `json:"city"`
}

type Flight struct {
	Airline      string  `json:"airline"`
	FlightNumber string  `json:"flight_number"`
	Departs      string  `json:"departs"`
	Arrives      string  `json:"arrives"`
	PriceUSD     float64 `json:"price_usd"`
	Stops        int     `json:"stops"`
}

type Hotel struct {
	Name           string  `json:"name"`
	Area           string  `json:"area"`
	Style          string  `json:"style"`
	NightlyUSD     float64 `json:"nightly_rate_usd"`
	Rating         float64 `json:"rating"`
	FamilyFriendly bool    `json:"family_friendly"`
}

type WeatherReport struct {
	Destination string `json:"destination"`
	Month       string `json:"month"`
	Summary     string `json:"summary"`
	HighC       int    `json:"high_c"`
	LowC        int    `json:"low_c"`
}

type DestinationGuide struct {
	Destination string   `json:"destination"`
	Summary     string   `json:"summary"`
	Highlights  []string `json:"highlights"`
	BestMonths  string   `json:"best_months"`
}

type PurchaseConfirmation struct {
	Reference string  `json:"reference"`
	EventID   string  `json:"event_id"`
	Teams     string  `json:"teams"`
	Venue     string  `json:"venue"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Seating   string  `json:"seating"`
	Quantity  int     `json:"quantity"`
	TotalUSD  float64 `json:"total_usd"`
}
