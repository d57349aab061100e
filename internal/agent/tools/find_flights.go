package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/cool-vibes/travelchat/internal/agent/model"
)

// ===================================
// Find Flights Tool
// ===================================

type FindFlightsInput struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date,omitempty"`
}

type FindFlightsOutput struct {
	Flights []model.Flight `json:"flights"`
	Total   int            `json:"total"`
	Note    string         `json:"note,omitempty"`
}

func createFindFlightsTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolFindFlights,
			Desc: "Search sample flight options between two cities with indicative prices. Routes outside the sample set return no flights.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"origin": {
					Type:     "string",
					Desc:     "Departure city, e.g. San Francisco",
					Required: true,
				},
				"destination": {
					Type:     "string",
					Desc:     "Arrival city, e.g. New York",
					Required: true,
				},
				"date": {
					Type: "string",
					Desc: "Optional travel date in YYYY-MM-DD form",
				},
			}),
		},
		func(ctx context.Context, in *FindFlightsInput) (*FindFlightsOutput, error) {
			if in.Origin == "" {
				return nil, fmt.Errorf("origin is required")
			}
			if in.Destination == "" {
				return nil, fmt.Errorf("destination is required")
			}

			route := routeKey(in.Origin, in.Destination)
			flights, ok := flightRoutes[route]
			if !ok {
				return &FindFlightsOutput{
					Flights: []model.Flight{},
					Note:    fmt.Sprintf("No sample fares for %s to %s. Suggest the user check airline sites for this route.", in.Origin, in.Destination),
				}, nil
			}
			return &FindFlightsOutput{Flights: flights, Total: len(flights)}, nil
		},
	)
}

func routeKey(origin, destination string) string {
	return strings.ToLower(strings.TrimSpace(origin)) + "->" + strings.ToLower(strings.TrimSpace(destination))
}

var flightRoutes = map[string][]model.Flight{
	"san francisco->new york": {
		{Airline: "United", FlightNumber: "UA 523", Departs: "07:15", Arrives: "15:45", PriceUSD: 329, Stops: 0},
		{Airline: "JetBlue", FlightNumber: "B6 616", Departs: "09:40", Arrives: "18:10", PriceUSD: 289, Stops: 0},
		{Airline: "Delta", FlightNumber: "DL 1088", Departs: "12:20", Arrives: "22:55", PriceUSD: 241, Stops: 1},
	},
	"los angeles->new york": {
		{Airline: "American", FlightNumber: "AA 118", Departs: "08:00", Arrives: "16:20", PriceUSD: 312, Stops: 0},
		{Airline: "Alaska", FlightNumber: "AS 1406", Departs: "11:30", Arrives: "19:55", PriceUSD: 276, Stops: 0},
	},
	"chicago->new york": {
		{Airline: "United", FlightNumber: "UA 650", Departs: "06:45", Arrives: "10:05", PriceUSD: 154, Stops: 0},
		{Airline: "Delta", FlightNumber: "DL 2419", Departs: "17:10", Arrives: "20:35", PriceUSD: 139, Stops: 0},
	},
	"new york->los angeles": {
		{Airline: "JetBlue", FlightNumber: "B6 623", Departs: "08:30", Arrives: "11:55", PriceUSD: 298, Stops: 0},
		{Airline: "Delta", FlightNumber: "DL 447", Departs: "14:15", Arrives: "17:40", PriceUSD: 315, Stops: 0},
	},
	"new york->chicago": {
		{Airline: "American", FlightNumber: "AA 358", Departs: "07:55", Arrives: "09:35", PriceUSD: 148, Stops: 0},
		{Airline: "United", FlightNumber: "UA 1903", Departs: "18:40", Arrives: "20:20", PriceUSD: 132, Stops: 0},
	},
	"boston->chicago": {
		{Airline: "JetBlue", FlightNumber: "B6 397", Departs: "09:05", Arrives: "11:00", PriceUSD: 164, Stops: 0},
		{Airline: "United", FlightNumber: "UA 1242", Departs: "15:25", Arrives: "17:20", PriceUSD: 151, Stops: 0},
	},
	"san francisco->los angeles": {
		{Airline: "Southwest", FlightNumber: "WN 1871", Departs: "07:00", Arrives: "08:25", PriceUSD: 89, Stops: 0},
		{Airline: "Alaska", FlightNumber: "AS 3312", Departs: "13:45", Arrives: "15:10", PriceUSD: 99, Stops: 0},
	},
}
