package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/voyagehq/travelmcp/catalog"
	"github.com/voyagehq/travelmcp/protocol"
	"github.com/voyagehq/travelmcp/travel"
	"github.com/voyagehq/travelmcp/util/validator"
)

const mockDataDisclaimer = " (Using mock data - set RAPIDAPI_KEY for real results)"

// hotelSearchContent is the structured payload for a hotel tool response.
// The widget renderer depends on these field names.
type hotelSearchContent struct {
	Destination   string               `json:"destination"`
	CheckIn       string               `json:"checkIn"`
	CheckOut      string               `json:"checkOut"`
	Guests        int                  `json:"guests"`
	Rooms         int                  `json:"rooms"`
	Hotels        []travel.HotelRecord `json:"hotels"`
	TotalResults  int                  `json:"totalResults"`
	UsingMockData bool                 `json:"usingMockData"`
}

// flightSearchContent is the structured payload for a flight tool response.
type flightSearchContent struct {
	Origin        string                `json:"origin"`
	Destination   string                `json:"destination"`
	DepartureDate string                `json:"departureDate"`
	ReturnDate    string                `json:"returnDate,omitempty"`
	Passengers    int                   `json:"passengers"`
	CabinClass    string                `json:"cabinClass"`
	Flights       []travel.FlightRecord `json:"flights"`
	IsRoundTrip   bool                  `json:"isRoundTrip"`
	TotalResults  int                   `json:"totalResults"`
	UsingMockData bool                  `json:"usingMockData"`
}

// handleCallTool handles the 'tools/call' request. Both tools share one
// pipeline: validate arguments, attempt live search with fallback, build a
// one-line summary plus structured content, and attach widget metadata. Only
// the validator, adapter, and fallback generator differ per tool.
func (s *Server) handleCallTool(ctx context.Context, id interface{}, rawParams json.RawMessage) *protocol.JSONRPCResponse {
	var params protocol.CallToolParams
	if err := protocol.UnmarshalPayload(rawParams, &params); err != nil {
		return protocol.NewErrorResponse(id, protocol.ErrorCodeInvalidParams,
			fmt.Sprintf("Failed to unmarshal CallTool params: %v", err), nil)
	}

	desc, ok := s.catalog.ByName(params.Name)
	if !ok {
		return protocol.NewErrorResponse(id, protocol.ErrorCodeMCPToolNotFound,
			fmt.Sprintf("Unknown tool: %s", params.Name), nil)
	}
	widget := s.catalog.WidgetFor(desc)

	summary, structured, err := s.runTool(ctx, desc.Name, params.Arguments)
	if err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return protocol.NewErrorResponse(id, protocol.ErrorCodeMCPInvalidArgument, verr.Error(), nil)
		}
		s.logger.Error("Tool %s failed: %v", desc.Name, err)
		return protocol.NewErrorResponse(id, protocol.ErrorCodeInternalError, err.Error(), nil)
	}
	if s.mockMode {
		summary += mockDataDisclaimer
	}

	result := protocol.CallToolResult{
		Content:           []protocol.Content{protocol.NewTextContent(summary)},
		StructuredContent: structured,
		Meta:              catalog.WidgetMeta(widget),
	}
	return protocol.NewSuccessResponse(id, result)
}

// runTool dispatches to the tool-specific validate-and-search stage.
func (s *Server) runTool(ctx context.Context, name string, arguments map[string]interface{}) (string, interface{}, error) {
	switch name {
	case catalog.ToolSearchHotels:
		return s.runHotelSearch(ctx, arguments)
	case catalog.ToolSearchFlights:
		return s.runFlightSearch(ctx, arguments)
	default:
		return "", nil, fmt.Errorf("no runner for tool %q", name)
	}
}

func (s *Server) runHotelSearch(ctx context.Context, arguments map[string]interface{}) (string, interface{}, error) {
	params, err := travel.ValidateHotelArgs(arguments)
	if err != nil {
		return "", nil, err
	}
	hotels, source := s.search.SearchHotels(ctx, params)

	summary := fmt.Sprintf("Found %d hotels in %s from %s to %s.",
		len(hotels), params.Destination, params.CheckIn, params.CheckOut)
	structured := hotelSearchContent{
		Destination:   params.Destination,
		CheckIn:       params.CheckIn,
		CheckOut:      params.CheckOut,
		Guests:        params.Guests,
		Rooms:         params.Rooms,
		Hotels:        hotels,
		TotalResults:  len(hotels),
		UsingMockData: source == travel.SourceFallback,
	}
	return summary, structured, nil
}

func (s *Server) runFlightSearch(ctx context.Context, arguments map[string]interface{}) (string, interface{}, error) {
	params, err := travel.ValidateFlightArgs(arguments)
	if err != nil {
		return "", nil, err
	}
	flights, source := s.search.SearchFlights(ctx, params)

	summary := fmt.Sprintf("Found %d flights from %s to %s on %s",
		len(flights), params.Origin, params.Destination, params.DepartureDate)
	if params.IsRoundTrip() {
		summary += fmt.Sprintf(" (returning %s)", params.ReturnDate)
	}
	summary += "."
	structured := flightSearchContent{
		Origin:        params.Origin,
		Destination:   params.Destination,
		DepartureDate: params.DepartureDate,
		ReturnDate:    params.ReturnDate,
		Passengers:    params.Passengers,
		CabinClass:    params.CabinClass,
		Flights:       flights,
		IsRoundTrip:   params.IsRoundTrip(),
		TotalResults:  len(flights),
		UsingMockData: source == travel.SourceFallback,
	}
	return summary, structured, nil
}
