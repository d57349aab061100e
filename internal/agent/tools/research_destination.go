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
// Research Destination Tool
// ===================================

type ResearchDestinationInput struct {
	Destination string `json:"destination"`
}

type ResearchDestinationOutput struct {
	Guide *model.DestinationGuide `json:"guide,omitempty"`
	Note  string                  `json:"note,omitempty"`
}

func createResearchDestinationTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolResearchDestination,
			Desc: "Get an overview of a destination: top attractions, neighborhoods and the best months to visit.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"destination": {
					Type:     "string",
					Desc:     "City to research, e.g. New York, Boston",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *ResearchDestinationInput) (*ResearchDestinationOutput, error) {
			if in.Destination == "" {
				return nil, fmt.Errorf("destination is required")
			}

			guide, ok := destinationGuides[strings.ToLower(strings.TrimSpace(in.Destination))]
			if !ok {
				return &ResearchDestinationOutput{
					Note: fmt.Sprintf("No destination guide available for %s yet.", in.Destination),
				}, nil
			}
			return &ResearchDestinationOutput{Guide: &guide}, nil
		},
	)
}

var destinationGuides = map[string]model.DestinationGuide{
	"new york": {
		Destination: "New York",
		Summary:     "The city that never sleeps: world-class museums, Broadway shows and every cuisine imaginable packed onto one island.",
		Highlights:  []string{"Central Park", "The Met", "Broadway", "Brooklyn Bridge at sunrise", "Madison Square Garden events"},
		BestMonths:  "April-June, September-November",
	},
	"los angeles": {
		Destination: "Los Angeles",
		Summary:     "Beaches, studios and canyon hikes spread across a sprawling, sunny metropolis. Plan around traffic and neighborhoods.",
		Highlights:  []string{"Santa Monica Pier", "Griffith Observatory", "Getty Center", "Venice Beach boardwalk", "Crypto.com Arena games"},
		BestMonths:  "March-May, September-November",
	},
	"chicago": {
		Destination: "Chicago",
		Summary:     "Architecture capital of the US with a famous food scene and lakefront parks. Very walkable downtown.",
		Highlights:  []string{"Architecture river cruise", "Millennium Park", "Art Institute", "Deep-dish pizza", "United Center games"},
		BestMonths:  "May-October",
	},
	"boston": {
		Destination: "Boston",
		Summary:     "Compact, historic and walkable. Colonial landmarks sit next to top universities and a passionate sports culture.",
		Highlights:  []string{"Freedom Trail", "Fenway Park tour", "North End pastries", "Harvard Yard", "TD Garden games"},
		BestMonths:  "May-June, September-October",
	},
	"san francisco": {
		Destination: "San Francisco",
		Summary:     "Steep streets, fog-framed bridges and standout food in a city best explored one neighborhood at a time.",
		Highlights:  []string{"Golden Gate Bridge", "Alcatraz", "Ferry Building market", "Cable cars", "Golden Gate Park"},
		BestMonths:  "September-November",
	},
}
