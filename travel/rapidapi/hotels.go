package rapidapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/voyagehq/travelmcp/travel"
)

// destinationResponse is the shape of the searchDestinations payload.
type destinationResponse struct {
	Data []struct {
		DestID interface{} `json:"dest_id"` // upstream sends either a string or a number
	} `json:"data"`
}

// hotelsResponse is the shape of the searchHotels payload.
type hotelsResponse struct {
	Data struct {
		Hotels []upstreamHotel `json:"hotels"`
	} `json:"data"`
}

type upstreamHotel struct {
	HotelID       interface{}       `json:"hotel_id"`
	ID            interface{}       `json:"id"`
	HotelName     string            `json:"hotel_name"`
	Class         int               `json:"class"`
	MinTotalPrice float64           `json:"min_total_price"`
	MaxPhotoURL   string            `json:"max_photo_url"`
	ReviewScore   float64           `json:"review_score"`
	ReviewNr      int               `json:"review_nr"`
	Property      *upstreamProperty `json:"property"`
}

type upstreamProperty struct {
	Name           string `json:"name"`
	StarRating     int    `json:"starRating"`
	PriceBreakdown struct {
		GrossPrice struct {
			Value float64 `json:"value"`
		} `json:"grossPrice"`
	} `json:"priceBreakdown"`
	PhotoUrls []string `json:"photoUrls"`
	Amenities struct {
		Top []string `json:"top"`
	} `json:"amenities"`
	ReviewScore float64 `json:"reviewScore"`
	ReviewCount int     `json:"reviewCount"`
	Distance    string  `json:"distance"`
}

// SearchHotels performs the two-step hotel lookup: resolve the destination
// text to a provider location id, then query listings for that id. Only the
// first resolved location is used. Caller filters (starRating, minPrice,
// maxPrice) are applied client-side since the upstream call does not
// guarantee filtering. The boolean is false whenever live data is
// unavailable; a true result with an empty slice means every fetched record
// was filtered out.
func (c *Client) SearchHotels(ctx context.Context, params travel.HotelSearchParams) ([]travel.HotelRecord, bool) {
	if c.key == "" {
		c.logger.Warn("RAPIDAPI_KEY not set, using mock data")
		return nil, false
	}

	destID, ok := c.resolveDestination(ctx, params.Destination)
	if !ok {
		return nil, false
	}

	query := url.Values{
		"dest_id":          {destID},
		"search_type":      {"city"},
		"arrival_date":     {params.CheckIn},
		"departure_date":   {params.CheckOut},
		"adults":           {strconv.Itoa(params.Guests)},
		"room_qty":         {strconv.Itoa(params.Rooms)},
		"page_number":      {"1"},
		"units":            {"metric"},
		"temperature_unit": {"c"},
		"languagecode":     {"en-us"},
		"currency_code":    {"USD"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.hotelsBaseURL+"/booking/searchHotels?"+query.Encode(), nil)
	if err != nil {
		c.logger.Error("Failed to build hotel search request: %v", err)
		return nil, false
	}
	c.setAuthHeaders(req, c.hotelsHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to search hotels: %v", err)
		return nil, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Failed to search hotels: %s", resp.Status)
		return nil, false
	}

	var payload hotelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode hotel search response: %v", err)
		return nil, false
	}
	if len(payload.Data.Hotels) == 0 {
		c.logger.Warn("Hotel search returned no listings for %q", params.Destination)
		return nil, false
	}

	upstream := payload.Data.Hotels
	if len(upstream) > maxResults {
		upstream = upstream[:maxResults]
	}
	hotels := make([]travel.HotelRecord, 0, len(upstream))
	for _, h := range upstream {
		hotels = append(hotels, mapHotel(h, params.Destination))
	}

	return filterHotels(hotels, params), true
}

// resolveDestination maps free destination text to the provider's location id.
func (c *Client) resolveDestination(ctx context.Context, destination string) (string, bool) {
	query := url.Values{"query": {destination}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.hotelsBaseURL+"/booking/searchDestinations?"+query.Encode(), nil)
	if err != nil {
		c.logger.Error("Failed to build destination search request: %v", err)
		return "", false
	}
	c.setAuthHeaders(req, c.hotelsHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to search destination: %v", err)
		return "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Failed to search destination: %s", resp.Status)
		return "", false
	}

	var payload destinationResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode destination search response: %v", err)
		return "", false
	}
	if len(payload.Data) == 0 {
		c.logger.Warn("No destination found for: %s", destination)
		return "", false
	}
	return stringify(payload.Data[0].DestID), true
}

func mapHotel(h upstreamHotel, destination string) travel.HotelRecord {
	record := travel.HotelRecord{
		ID:            stringify(h.HotelID),
		Name:          h.HotelName,
		Location:      destination,
		StarRating:    h.Class,
		PricePerNight: h.MinTotalPrice,
		TotalPrice:    h.MinTotalPrice,
		ImageURL:      h.MaxPhotoURL,
		Rating:        h.ReviewScore,
		ReviewCount:   h.ReviewNr,
		Distance:      "City center",
	}
	if record.ID == "" {
		record.ID = stringify(h.ID)
	}
	if p := h.Property; p != nil {
		if p.Name != "" {
			record.Name = p.Name
		}
		if p.StarRating != 0 {
			record.StarRating = p.StarRating
		}
		if v := p.PriceBreakdown.GrossPrice.Value; v != 0 {
			record.PricePerNight = v
			record.TotalPrice = v
		}
		if len(p.PhotoUrls) > 0 {
			record.ImageURL = p.PhotoUrls[0]
		}
		if len(p.Amenities.Top) > 0 {
			record.Amenities = p.Amenities.Top
		}
		if p.ReviewScore != 0 {
			record.Rating = p.ReviewScore
		}
		if p.ReviewCount != 0 {
			record.ReviewCount = p.ReviewCount
		}
		if p.Distance != "" {
			record.Distance = p.Distance
		}
	}
	if record.StarRating == 0 {
		record.StarRating = 3
	}
	if record.ImageURL == "" {
		record.ImageURL = "https://via.placeholder.com/400x300"
	}
	if len(record.Amenities) == 0 {
		record.Amenities = []string{"wifi", "parking"}
	}
	if record.Rating == 0 {
		record.Rating = 4.0
	}
	return record
}

func filterHotels(hotels []travel.HotelRecord, params travel.HotelSearchParams) []travel.HotelRecord {
	filtered := make([]travel.HotelRecord, 0, len(hotels))
	for _, h := range hotels {
		if params.StarRating != 0 && h.StarRating < params.StarRating {
			continue
		}
		if params.MinPrice != 0 && h.PricePerNight < params.MinPrice {
			continue
		}
		if params.MaxPrice != 0 && h.PricePerNight > params.MaxPrice {
			continue
		}
		filtered = append(filtered, h)
	}
	return filtered
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
