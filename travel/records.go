package travel

// HotelRecord is the canonical hotel result shape produced by both the live
// adapter and the fallback generator. The JSON field names are the
// compatibility surface consumed by the widget renderer.
type HotelRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	StarRating    int      `json:"starRating"`
	PricePerNight float64  `json:"pricePerNight"`
	TotalPrice    float64  `json:"totalPrice"`
	ImageURL      string   `json:"imageUrl"`
	Amenities     []string `json:"amenities"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Distance      string   `json:"distance"`
}

// FlightRecord is the canonical flight result shape. Multi-leg itineraries are
// collapsed to their first leg upstream; this record carries a single leg.
type FlightRecord struct {
	ID            string  `json:"id"`
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flightNumber"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Duration      string  `json:"duration"`
	Stops         int     `json:"stops"`
	CabinClass    string  `json:"cabinClass"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"imageUrl"`
}
