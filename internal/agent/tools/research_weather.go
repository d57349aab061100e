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
// Research Weather Tool
// ===================================

type ResearchWeatherInput struct {
	Destination string `json:"destination"`
	Month       string `json:"month,omitempty"`
}

type ResearchWeatherOutput struct {
	Report *model.WeatherReport `json:"report,omitempty"`
	Note   string               `json:"note,omitempty"`
}

func createResearchWeatherTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolResearchWeather,
			Desc: "Look up typical weather for a destination so the user can pack and plan. Forecasts are seasonal averages, not live data.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"destination": {
					Type:     "string",
					Desc:     "City to look up, e.g. New York, Chicago",
					Required: true,
				},
				"month": {
					Type: "string",
					Desc: "Optional travel month, e.g. November",
				},
			}),
		},
		func(ctx context.Context, in *ResearchWeatherInput) (*ResearchWeatherOutput, error) {
			if in.Destination == "" {
				return nil, fmt.Errorf("destination is required")
			}

			report, ok := weatherByCity[strings.ToLower(strings.TrimSpace(in.Destination))]
			if !ok {
				return &ResearchWeatherOutput{
					Note: fmt.Sprintf("No weather data available for %s. Suggest the user check a live forecast closer to the trip.", in.Destination),
				}, nil
			}
			if m := strings.TrimSpace(in.Month); m != "" {
				report.Month = m
			}
			return &ResearchWeatherOutput{Report: &report}, nil
		},
	)
}

// weatherByCity holds seasonal averages for the demo's late-autumn trip window.
var weatherByCity = map[string]model.WeatherReport{
	"new york": {
		Destination: "New York",
		Month:       "November",
		Summary:     "Crisp and cool with occasional rain. Pack layers and a warm coat for evenings.",
		HighC:       12,
		LowC:        4,
	},
	"los angeles": {
		Destination: "Los Angeles",
		Month:       "November",
		Summary:     "Mild and mostly sunny. Light jacket for the evenings is enough.",
		HighC:       23,
		LowC:        12,
	},
	"chicago": {
		Destination: "Chicago",
		Month:       "November",
		Summary:     "Cold and windy off the lake, chance of early snow. Bring a heavy coat, hat and gloves.",
		HighC:       8,
		LowC:        0,
	},
	"boston": {
		Destination: "Boston",
		Month:       "November",
		Summary:     "Chilly with brisk coastal winds. A warm coat and waterproof shoes are recommended.",
		HighC:       10,
		LowC:        2,
	},
	"san francisco": {
		Destination: "San Francisco",
		Month:       "November",
		Summary:     "Cool with morning fog burning off by midday. Layers work best.",
		HighC:       17,
		LowC:        9,
	},
}
