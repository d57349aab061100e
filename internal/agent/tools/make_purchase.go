package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"github.com/cool-vibes/travelchat/internal/agent/model"
)

// ===================================
// Make Purchase Tool
// ===================================

type MakePurchaseInput struct {
	EventID  string `json:"event_id"`
	Quantity int    `json:"quantity,omitempty"`
	Seating  string `json:"seating,omitempty"`
}

type MakePurchaseOutput struct {
	Confirmation *model.PurchaseConfirmation `json:"confirmation,omitempty"`
	Note         string                      `json:"note,omitempty"`
}

// seatingPrices maps seating tiers to a per-ticket mock price in USD.
var seatingPrices = map[string]float64{
	"standard":  95,
	"family":    110,
	"premium":   250,
	"courtside": 650,
}

func createMakePurchaseTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolMakePurchase,
			Desc: "Purchase tickets for a sports event found via find_events. This is a demo purchase: it returns a confirmation reference without charging anyone.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"event_id": {
					Type:     "string",
					Desc:     "Event id from find_events, e.g. knicks_lakers_nov15",
					Required: true,
				},
				"quantity": {
					Type: "number",
					Desc: "Number of tickets (default: 1, max: 10)",
				},
				"seating": {
					Type: "string",
					Desc: "Seating tier: standard, family, premium or courtside (default: standard)",
				},
			}),
		},
		func(ctx context.Context, in *MakePurchaseInput) (*MakePurchaseOutput, error) {
			if in.EventID == "" {
				return nil, fmt.Errorf("event_id is required")
			}

			event, ok := findEventByID(strings.TrimSpace(in.EventID))
			if !ok {
				return &MakePurchaseOutput{
					Note: fmt.Sprintf("No event found with id %q. Use find_events to look up current events first.", in.EventID),
				}, nil
			}

			quantity := in.Quantity
			if quantity == 0 {
				quantity = 1
			}
			quantity = clampInt(quantity, 1, 10)

			seating := strings.ToLower(strings.TrimSpace(in.Seating))
			price, ok := seatingPrices[seating]
			if !ok {
				seating = "standard"
				price = seatingPrices[seating]
			}

			reference := "TCK-" + strings.ToUpper(uuid.NewString()[:8])
			return &MakePurchaseOutput{
				Confirmation: &model.PurchaseConfirmation{
					Reference: reference,
					EventID:   event.ID,
					Teams:     event.Teams,
					Venue:     event.Venue,
					Date:      event.Date,
					Time:      event.Time,
					Seating:   seating,
					Quantity:  quantity,
					TotalUSD:  price * float64(quantity),
				},
			}, nil
		},
	)
}
