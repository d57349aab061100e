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
// Find Accommodation Tool
// ===================================

type FindAccommodationInput struct {
	Destination string `json:"destination"`
	Style       string `json:"style,omitempty"`
	MaxResults  int    `json:"max_results,omitempty"`
}

type FindAccommodationOutput struct {
	Hotels []model.Hotel `json:"hotels"`
	Total  int           `json:"total"`
	Note   string        `json:"note,omitempty"`
}

func createFindAccommodationTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolFindAccommodation,
			Desc: "Find sample hotels in a city, optionally filtered by style. Match the style to the user's stored preferences: boutique for premium tastes, family-friendly for travelers with kids, budget for cost-conscious trips.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"destination": {
					Type:     "string",
					Desc:     "City to search hotels in, e.g. New York",
					Required: true,
				},
				"style": {
					Type: "string",
					Desc: "Optional style filter: boutique, family-friendly, budget or luxury",
				},
				"max_results": {
					Type: "number",
					Desc: "Maximum number of hotels to return (default: 4, max: 10)",
				},
			}),
		},
		func(ctx context.Context, in *FindAccommodationInput) (*FindAccommodationOutput, error) {
			if in.Destination == "" {
				return nil, fmt.Errorf("destination is required")
			}
			maxResults := in.MaxResults
			if maxResults == 0 {
				maxResults = 4
			}
			maxResults = clampInt(maxResults, 1, 10)

			hotels, ok := hotelsByCity[strings.ToLower(strings.TrimSpace(in.Destination))]
			if !ok {
				return &FindAccommodationOutput{
					Hotels: []model.Hotel{},
					Note:   fmt.Sprintf("No sample hotels for %s. Suggest the user check booking sites directly.", in.Destination),
				}, nil
			}

			style := strings.ToLower(strings.TrimSpace(in.Style))
			matched := make([]model.Hotel, 0, len(hotels))
			for _, h := range hotels {
				if style != "" && !strings.EqualFold(h.Style, style) {
					continue
				}
				matched = append(matched, h)
			}
			if len(matched) > maxResults {
				matched = matched[:maxResults]
			}
			return &FindAccommodationOutput{Hotels: matched, Total: len(matched)}, nil
		},
	)
}

var hotelsByCity = map[string][]model.Hotel{
	"new york": {
		{Name: "The Greenwich Lane", Area: "West Village", Style: "boutique", NightlyUSD: 425, Rating: 4.8},
		{Name: "Arlo Midtown", Area: "Midtown", Style: "boutique", NightlyUSD: 289, Rating: 4.5},
		{Name: "Homewood Suites Times Square", Area: "Midtown", Style: "family-friendly", NightlyUSD: 259, Rating: 4.4, FamilyFriendly: true},
		{Name: "Pod 51", Area: "Midtown East", Style: "budget", NightlyUSD: 139, Rating: 4.1},
		{Name: "The Plaza", Area: "Central Park South", Style: "luxury", NightlyUSD: 795, Rating: 4.7},
	},
	"los angeles": {
		{Name: "Palihouse Santa Monica", Area: "Santa Monica", Style: "boutique", NightlyUSD: 345, Rating: 4.6},
		{Name: "Magic Castle Hotel", Area: "Hollywood", Style: "family-friendly", NightlyUSD: 229, Rating: 4.7, FamilyFriendly: true},
		{Name: "Freehand Los Angeles", Area: "Downtown", Style: "budget", NightlyUSD: 129, Rating: 4.2},
		{Name: "The Beverly Hills Hotel", Area: "Beverly Hills", Style: "luxury", NightlyUSD: 895, Rating: 4.8},
	},
	"chicago": {
		{Name: "The Robey", Area: "Wicker Park", Style: "boutique", NightlyUSD: 219, Rating: 4.5},
		{Name: "Embassy Suites Downtown", Area: "River North", Style: "family-friendly", NightlyUSD: 199, Rating: 4.4, FamilyFriendly: true},
		{Name: "Freehand Chicago", Area: "River North", Style: "budget", NightlyUSD: 109, Rating: 4.2},
		{Name: "The Langham", Area: "River North", Style: "luxury", NightlyUSD: 545, Rating: 4.9},
	},
	"boston": {
		{Name: "The Verb Hotel", Area: "Fenway", Style: "boutique", NightlyUSD: 249, Rating: 4.6},
		{Name: "Residence Inn Back Bay", Area: "Back Bay", Style: "family-friendly", NightlyUSD: 239, Rating: 4.4, FamilyFriendly: true},
		{Name: "Found Hotel Common", Area: "Downtown", Style: "budget", NightlyUSD: 119, Rating: 4.0},
		{Name: "Four Seasons One Dalton", Area: "Back Bay", Style: "luxury", NightlyUSD: 675, Rating: 4.8},
	},
}
