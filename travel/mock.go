package travel

const placeholderHotelImage = "https://via.placeholder.com/400x300"
const placeholderAirlineLogo = "https://via.placeholder.com/60x60"

// MockHotels returns the deterministic fallback hotel catalog, parameterized by
// the validated search params so the destination echoes the caller's input.
// The starRating filter is respected when supplied; no other filter applies to
// synthetic data.
func MockHotels(params HotelSearchParams) []HotelRecord {
	hotels := []HotelRecord{
		{
			ID:            "h1",
			Name:          "Grand Plaza Hotel",
			Location:      params.Destination,
			StarRating:    4,
			PricePerNight: 189,
			TotalPrice:    567,
			ImageURL:      placeholderHotelImage,
			Amenities:     []string{"wifi", "pool", "gym", "parking"},
			Rating:        4.5,
			ReviewCount:   1245,
			Distance:      "0.5 miles from city center",
		},
		{
			ID:            "h2",
			Name:          "Comfort Inn & Suites",
			Location:      params.Destination,
			StarRating:    3,
			PricePerNight: 129,
			TotalPrice:    387,
			ImageURL:      placeholderHotelImage,
			Amenities:     []string{"wifi", "breakfast", "parking"},
			Rating:        4.2,
			ReviewCount:   892,
			Distance:      "1.2 miles from city center",
		},
		{
			ID:            "h3",
			Name:          "Luxury Resort & Spa",
			Location:      params.Destination,
			StarRating:    5,
			PricePerNight: 349,
			TotalPrice:    1047,
			ImageURL:      placeholderHotelImage,
			Amenities:     []string{"wifi", "pool", "spa", "gym", "breakfast"},
			Rating:        4.8,
			ReviewCount:   2104,
			Distance:      "2.0 miles from city center",
		},
	}
	if params.StarRating == 0 {
		return hotels
	}
	filtered := make([]HotelRecord, 0, len(hotels))
	for _, h := range hotels {
		if h.StarRating >= params.StarRating {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// MockFlights returns the deterministic fallback flight catalog, echoing the
// caller's origin, destination, and cabin class.
func MockFlights(params FlightSearchParams) []FlightRecord {
	return []FlightRecord{
		{
			ID:            "f1",
			Airline:       "United Airlines",
			FlightNumber:  "UA 1234",
			Origin:        params.Origin,
			Destination:   params.Destination,
			DepartureTime: "08:30 AM",
			ArrivalTime:   "11:45 AM",
			Duration:      "3h 15m",
			Stops:         0,
			CabinClass:    params.CabinClass,
			Price:         289,
			ImageURL:      placeholderAirlineLogo,
		},
		{
			ID:            "f2",
			Airline:       "Delta Airlines",
			FlightNumber:  "DL 5678",
			Origin:        params.Origin,
			Destination:   params.Destination,
			DepartureTime: "12:15 PM",
			ArrivalTime:   "04:50 PM",
			Duration:      "4h 35m",
			Stops:         1,
			CabinClass:    params.CabinClass,
			Price:         245,
			ImageURL:      placeholderAirlineLogo,
		},
		{
			ID:            "f3",
			Airline:       "American Airlines",
			FlightNumber:  "AA 9012",
			Origin:        params.Origin,
			Destination:   params.Destination,
			DepartureTime: "06:00 PM",
			ArrivalTime:   "09:20 PM",
			Duration:      "3h 20m",
			Stops:         0,
			CabinClass:    params.CabinClass,
			Price:         315,
			ImageURL:      placeholderAirlineLogo,
		},
	}
}
