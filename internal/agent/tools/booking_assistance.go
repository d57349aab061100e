package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

// ===================================
// Booking Assistance Tool
// ===================================

type BookingAssistanceInput struct {
	BookingType string `json:"booking_type"`
	Details     string `json:"details,omitempty"`
}

func createBookingAssistanceTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolBookingAssistance,
			Desc: "Get step-by-step guidance for completing a booking: what to confirm, typical cancellation terms and timing advice.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"booking_type": {
					Type:     "string",
					Desc:     "What is being booked: flight, hotel, event, car or insurance",
					Required: true,
				},
				"details": {
					Type: "string",
					Desc: "Optional context about the booking, e.g. dates, party size, constraints",
				},
			}),
		},
		func(ctx context.Context, in *BookingAssistanceInput) (string, error) {
			if in.BookingType == "" {
				return "", fmt.Errorf("booking_type is required")
			}

			guidance, ok := bookingGuidance[strings.ToLower(strings.TrimSpace(in.BookingType))]
			if !ok {
				return fmt.Sprintf("I don't have a checklist for %q bookings, but the general rule is: confirm the total price with fees, check the cancellation window, and save the confirmation number.", in.BookingType), nil
			}
			if d := strings.TrimSpace(in.Details); d != "" {
				return guidance + "\nContext noted: " + d, nil
			}
			return guidance, nil
		},
	)
}

var bookingGuidance = map[string]string{
	"flight": "Flight booking checklist:\n" +
		"- Compare total fares including bags and seat selection, not base fares\n" +
		"- Book 3-6 weeks out for domestic routes; Tuesday and Wednesday departures run cheaper\n" +
		"- Check the fare class cancellation terms; basic economy is usually non-refundable\n" +
		"- Save the record locator and enroll in the airline's notifications for the trip",
	"hotel": "Hotel booking checklist:\n" +
		"- Confirm the nightly rate includes taxes and any resort or facility fees\n" +
		"- Prefer free-cancellation rates when plans might move\n" +
		"- Email the property for connecting rooms or crib needs; booking sites lose these requests\n" +
		"- Recheck the rate a week before arrival, many properties drop prices to fill rooms",
	"event": "Event ticket checklist:\n" +
		"- Buy through the venue's official partner to avoid invalid resale tickets\n" +
		"- Check the view from the section before paying; third-party seat maps help\n" +
		"- Arrive 45 minutes early for security lines at major arenas\n" +
		"- Mobile tickets need the venue app installed and signed in before you leave the hotel",
	"car": "Car rental checklist:\n" +
		"- Decline duplicate coverage if a credit card already insures rentals\n" +
		"- Photograph the car at pickup and return\n" +
		"- Prebook child seats; counters run out on busy weekends\n" +
		"- Refuel within 10 miles of the return point and keep the receipt",
	"insurance": "Travel insurance checklist:\n" +
		"- Buy within 14 days of the first trip payment to keep pre-existing condition waivers\n" +
		"- Match medical evacuation coverage to the destination; 100k USD is a common floor\n" +
		"- Cancel-for-any-reason upgrades refund 50-75 percent, not everything\n" +
		"- Keep every receipt; claims without documentation are denied",
}
