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
// Find Events Tool
// ===================================

type FindEventsInput struct {
	City  string `json:"city"`
	Sport string `json:"sport,omitempty"`
}

type FindEventsOutput struct {
	Events []model.Event `json:"events"`
	Total  int           `json:"total"`
}

func createFindEventsTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolFindEvents,
			Desc: "Find professional sports events happening in a city. Covers NBA, NHL and NFL games. An unknown city simply returns no events.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"city": {
					Type:     "string",
					Desc:     "City to search for events, e.g. New York, Chicago, Boston, Los Angeles",
					Required: true,
				},
				"sport": {
					Type: "string",
					Desc: "Optional league filter: NBA, NHL or NFL",
				},
			}),
		},
		func(ctx context.Context, in *FindEventsInput) (*FindEventsOutput, error) {
			if in.City == "" {
				return nil, fmt.Errorf("city is required")
			}

			// Lookup is exact on the lowercased city name, no fuzzy matching.
			events := EventsData[strings.ToLower(strings.TrimSpace(in.City))]

			matched := make([]model.Event, 0, len(events))
			for _, ev := range events {
				if in.Sport != "" && !strings.EqualFold(ev.Sport, strings.TrimSpace(in.Sport)) {
					continue
				}
				matched = append(matched, ev)
			}

			return &FindEventsOutput{Events: matched, Total: len(matched)}, nil
		},
	)
}

// EventsData holds the static sports schedule keyed by lowercase city.
var EventsData = map[string][]model.Event{
	"new york": {
		{
			ID:    "knicks_lakers_nov15",
			Sport: "NBA",
			Teams: "Knicks vs Lakers",
			Venue: "Madison Square Garden",
			Date:  "2025-11-15",
			Time:  "19:30",
			City:  "New York",
		},
		{
			ID:    "rangers_bruins_nov16",
			Sport: "NHL",
			Teams: "Rangers vs Bruins",
			Venue: "Madison Square Garden",
			Date:  "2025-11-16",
			Time:  "19:00",
			City:  "New York",
		},
		{
			ID:    "nets_celtics_nov20",
			Sport: "NBA",
			Teams: "Nets vs Celtics",
			Venue: "Barclays Center",
			Date:  "2025-11-20",
			Time:  "19:30",
			City:  "New York",
		},
	},
	"los angeles": {
		{
			ID:    "lakers_warriors_nov20",
			Sport: "NBA",
			Teams: "Lakers vs Warriors",
			Venue: "Crypto.com Arena",
			Date:  "2025-11-20",
			Time:  "19:30",
			City:  "Los Angeles",
		},
		{
			ID:    "clippers_suns_nov22",
			Sport: "NBA",
			Teams: "Clippers vs Suns",
			Venue: "Crypto.com Arena",
			Date:  "2025-11-22",
			Time:  "20:00",
			City:  "Los Angeles",
		},
		{
			ID:    "kings_avalanche_nov18",
			Sport: "NHL",
			Teams: "Kings vs Avalanche",
			Venue: "Crypto.com Arena",
			Date:  "2025-11-18",
			Time:  "19:00",
			City:  "Los Angeles",
		},
	},
	"chicago": {
		{
			ID:    "bulls_heat_nov17",
			Sport: "NBA",
			Teams: "Bulls vs Heat",
			Venue: "United Center",
			Date:  "2025-11-17",
			Time:  "19:00",
			City:  "Chicago",
		},
		{
			ID:    "blackhawks_redwings_nov19",
			Sport: "NHL",
			Teams: "Blackhawks vs Red Wings",
			Venue: "United Center",
			Date:  "2025-11-19",
			Time:  "19:30",
			City:  "Chicago",
		},
		{
			ID:    "bears_packers_nov24",
			Sport: "NFL",
			Teams: "Bears vs Packers",
			Venue: "Soldier Field",
			Date:  "2025-11-24",
			Time:  "13:00",
			City:  "Chicago",
		},
	},
	"boston": {
		{
			ID:    "celtics_sixers_nov21",
			Sport: "NBA",
			Teams: "Celtics vs 76ers",
			Venue: "TD Garden",
			Date:  "2025-11-21",
			Time:  "19:30",
			City:  "Boston",
		},
		{
			ID:    "bruins_maple_leafs_nov23",
			Sport: "NHL",
			Teams: "Bruins vs Maple Leafs",
			Venue: "TD Garden",
			Date:  "2025-11-23",
			Time:  "19:00",
			City:  "Boston",
		},
	},
}

// findEventByID scans the schedule for a specific event.
func findEventByID(id string) (model.Event, bool) {
	for _, events := range EventsData {
		for _, ev := range events {
			if ev.ID == id {
				return ev, true
			}
		}
	}
	return model.Event{}, false
}
