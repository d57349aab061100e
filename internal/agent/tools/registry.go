package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/cool-vibes/travelchat/internal/agent/model"
)

const (
	ToolUserPreferences       = "user_preferences"
	ToolSaveUserPreference    = "save_user_preference"
	ToolSearchUserPreferences = "search_user_preferences"
	ToolResearchWeather       = "research_weather"
	ToolResearchDestination   = "research_destination"
	ToolFindFlights           = "find_flights"
	ToolFindAccommodation     = "find_accommodation"
	ToolBookingAssistance     = "booking_assistance"
	ToolFindEvents            = "find_events"
	ToolMakePurchase          = "make_purchase"
)

// Registry builds the tool sets served to the agents. Preference tools
// need the store; the rest are static lookups.
type Registry struct {
	prefs model.PreferenceStore
}

func NewRegistry(prefs model.PreferenceStore) *Registry {
	return &Registry{prefs: prefs}
}

// TravelTools returns the full tool set for the travel agent.
func (r *Registry) TravelTools() []tool.BaseTool {
	return []tool.BaseTool{
		createUserPreferencesTool(r.prefs),
		createSaveUserPreferenceTool(r.prefs),
		createSearchUserPreferencesTool(r.prefs),
		createResearchWeatherTool(),
		createResearchDestinationTool(),
		createFindFlightsTool(),
		createFindAccommodationTool(),
		createBookingAssistanceTool(),
		createFindEventsTool(),
		createMakePurchaseTool(),
	}
}

// TicketTools returns the reduced set for the ticket purchase agent.
func (r *Registry) TicketTools() []tool.BaseTool {
	return []tool.BaseTool{
		createUserPreferencesTool(r.prefs),
		createSearchUserPreferencesTool(r.prefs),
		createFindEventsTool(),
		createMakePurchaseTool(),
	}
}

// GetToolInfos resolves the ToolInfo for every tool in the set.
func GetToolInfos(ctx context.Context, ts []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(ts))
	for _, t := range ts {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("tool info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// ToolNames lists the names of a tool set for the UI agent listing.
func ToolNames(ctx context.Context, ts []tool.BaseTool) []string {
	names := make([]string, 0, len(ts))
	for _, t := range ts {
		info, err := t.Info(ctx)
		if err != nil || info == nil {
			continue
		}
		names = append(names, info.Name)
	}
	return names
}

// clampInt returns v limited to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
