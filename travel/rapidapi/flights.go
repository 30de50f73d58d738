package rapidapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/voyagehq/travelmcp/travel"
)

// flightSearchRequest is the body sent to the flight provider.
type flightSearchRequest struct {
	OriginSkyID         string `json:"originSkyId"`
	DestinationSkyID    string `json:"destinationSkyId"`
	OriginEntityID      string `json:"originEntityId"`
	DestinationEntityID string `json:"destinationEntityId"`
	Date                string `json:"date"`
	ReturnDate          string `json:"returnDate"`
	CabinClass          string `json:"cabinClass"`
	Adults              string `json:"adults"`
	SortBy              string `json:"sortBy"`
	Currency            string `json:"currency"`
	Market              string `json:"market"`
	CountryCode         string `json:"countryCode"`
}

// flightsResponse is the shape of the searchFlights payload.
type flightsResponse struct {
	Data struct {
		Itineraries []upstreamItinerary `json:"itineraries"`
	} `json:"data"`
}

type upstreamItinerary struct {
	ID    string `json:"id"`
	Price struct {
		Raw float64 `json:"raw"`
	} `json:"price"`
	Legs []upstreamLeg `json:"legs"`
}

type upstreamLeg struct {
	Departure         string `json:"departure"`
	Arrival           string `json:"arrival"`
	DurationInMinutes int    `json:"durationInMinutes"`
	StopCount         int    `json:"stopCount"`
	Carriers          struct {
		Marketing []struct {
			Name         string `json:"name"`
			FlightNumber string `json:"flightNumber"`
			LogoURL      string `json:"logoUrl"`
		} `json:"marketing"`
	} `json:"carriers"`
}

// SearchFlights performs a single flight search. Each returned itinerary is
// collapsed to its first leg; itineraries never carry more than one projected
// record. The boolean is false whenever live data is unavailable.
func (c *Client) SearchFlights(ctx context.Context, params travel.FlightSearchParams) ([]travel.FlightRecord, bool) {
	if c.key == "" {
		c.logger.Warn("RAPIDAPI_KEY not set, using mock data")
		return nil, false
	}

	body, err := json.Marshal(flightSearchRequest{
		OriginSkyID:         params.Origin,
		DestinationSkyID:    params.Destination,
		OriginEntityID:      params.Origin,
		DestinationEntityID: params.Destination,
		Date:                params.DepartureDate,
		ReturnDate:          params.ReturnDate,
		CabinClass:          params.CabinClass,
		Adults:              strconv.Itoa(params.Passengers),
		SortBy:              "best",
		Currency:            "USD",
		Market:              "en-US",
		CountryCode:         "US",
	})
	if err != nil {
		c.logger.Error("Failed to marshal flight search request: %v", err)
		return nil, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.flightsBaseURL+"/api/v1/flights/searchFlights", bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to build flight search request: %v", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req, c.flightsHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to search flights: %v", err)
		return nil, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Failed to search flights: %s", resp.Status)
		return nil, false
	}

	var payload flightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode flight search response: %v", err)
		return nil, false
	}
	if len(payload.Data.Itineraries) == 0 {
		c.logger.Warn("Flight search returned no itineraries for %s-%s", params.Origin, params.Destination)
		return nil, false
	}

	itineraries := payload.Data.Itineraries
	if len(itineraries) > maxResults {
		itineraries = itineraries[:maxResults]
	}
	flights := make([]travel.FlightRecord, 0, len(itineraries))
	for _, it := range itineraries {
		record, err := mapItinerary(it, params)
		if err != nil {
			c.logger.Error("Error transforming flight itinerary: %v", err)
			return nil, false
		}
		flights = append(flights, record)
	}
	return flights, true
}

// mapItinerary projects an itinerary's first leg into a flat record.
func mapItinerary(it upstreamItinerary, params travel.FlightSearchParams) (travel.FlightRecord, error) {
	if len(it.Legs) == 0 {
		return travel.FlightRecord{}, fmt.Errorf("itinerary %s has no legs", it.ID)
	}
	leg := it.Legs[0]

	departure, err := parseClockTime(leg.Departure)
	if err != nil {
		return travel.FlightRecord{}, fmt.Errorf("itinerary %s: %w", it.ID, err)
	}
	arrival, err := parseClockTime(leg.Arrival)
	if err != nil {
		return travel.FlightRecord{}, fmt.Errorf("itinerary %s: %w", it.ID, err)
	}

	record := travel.FlightRecord{
		ID:            it.ID,
		Airline:       "Unknown Airline",
		FlightNumber:  "N/A",
		Origin:        params.Origin,
		Destination:   params.Destination,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Duration:      fmt.Sprintf("%dh %dm", leg.DurationInMinutes/60, leg.DurationInMinutes%60),
		Stops:         leg.StopCount,
		CabinClass:    params.CabinClass,
		Price:         it.Price.Raw,
		ImageURL:      "https://via.placeholder.com/60x60",
	}
	if len(leg.Carriers.Marketing) > 0 {
		carrier := leg.Carriers.Marketing[0]
		if carrier.Name != "" {
			record.Airline = carrier.Name
		}
		if carrier.FlightNumber != "" {
			record.FlightNumber = carrier.FlightNumber
		}
		if carrier.LogoURL != "" {
			record.ImageURL = carrier.LogoURL
		}
	}
	return record, nil
}

// parseClockTime formats an upstream local timestamp as a 12-hour clock time.
func parseClockTime(value string) (string, error) {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("03:04 PM"), nil
		}
	}
	return "", fmt.Errorf("unparseable timestamp %q", value)
}
