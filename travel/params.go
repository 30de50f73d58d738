// Package travel defines the canonical travel-search domain model: validated
// search parameters, hotel and flight records, the deterministic fallback
// catalogs, and the live-then-fallback search pipeline.
package travel

import (
	"github.com/voyagehq/travelmcp/util/schema"
)

// HotelSearchArgs is the raw argument shape for the hotel search tool.
// Non-pointer, non-slice fields are required; the struct tags drive both the
// advertised input schema and validation.
type HotelSearchArgs struct {
	Destination string   `json:"destination" required:"true" description:"Destination city or location"`
	CheckIn     string   `json:"checkIn" required:"true" description:"Check-in date (YYYY-MM-DD format)"`
	CheckOut    string   `json:"checkOut" required:"true" description:"Check-out date (YYYY-MM-DD format)"`
	Guests      *int     `json:"guests" minimum:"1" description:"Number of guests"`
	Rooms       *int     `json:"rooms" minimum:"1" description:"Number of rooms"`
	MinPrice    *float64 `json:"minPrice" description:"Minimum price per night"`
	MaxPrice    *float64 `json:"maxPrice" description:"Maximum price per night"`
	StarRating  *int     `json:"starRating" minimum:"1" maximum:"5" description:"Minimum star rating (1-5)"`
	Amenities   []string `json:"amenities" itemsEnum:"wifi,pool,parking,gym,breakfast,pet-friendly,spa" description:"Desired amenities"`
}

// FlightSearchArgs is the raw argument shape for the flight search tool.
type FlightSearchArgs struct {
	Origin        string   `json:"origin" required:"true" description:"Origin airport code or city"`
	Destination   string   `json:"destination" required:"true" description:"Destination airport code or city"`
	DepartureDate string   `json:"departureDate" required:"true" description:"Departure date (YYYY-MM-DD format)"`
	ReturnDate    *string  `json:"returnDate" description:"Return date for round-trip (YYYY-MM-DD format)"`
	Passengers    *int     `json:"passengers" minimum:"1" description:"Number of passengers"`
	CabinClass    *string  `json:"cabinClass" enum:"economy,premium-economy,business,first" description:"Cabin class"`
	Stops         *string  `json:"stops" enum:"nonstop,1-stop,2+-stops,any" description:"Number of stops"`
	Airlines      []string `json:"airlines" description:"Preferred airlines"`
	MaxPrice      *float64 `json:"maxPrice" description:"Maximum price per passenger"`
}

// HotelSearchParams is the validated, defaulted parameter set every downstream
// component sees. Zero values for MinPrice, MaxPrice, and StarRating mean the
// caller supplied no such filter.
type HotelSearchParams struct {
	Destination string
	CheckIn     string
	CheckOut    string
	Guests      int
	Rooms       int
	MinPrice    float64
	MaxPrice    float64
	StarRating  int
	Amenities   []string
}

// FlightSearchParams is the validated, defaulted flight parameter set.
// An empty ReturnDate means one-way.
type FlightSearchParams struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Passengers    int
	CabinClass    string
	Stops         string
	Airlines      []string
	MaxPrice      float64
}

// IsRoundTrip reports whether a return date was supplied.
func (p FlightSearchParams) IsRoundTrip() bool { return p.ReturnDate != "" }

// ValidateHotelArgs decodes and validates raw hotel-search arguments, applying
// defaults (guests 2, rooms 1) so all downstream code sees fully-populated
// parameters. On failure the error is a *validator.ValidationError for the
// first offending field.
func ValidateHotelArgs(arguments map[string]interface{}) (HotelSearchParams, error) {
	args, err := schema.DecodeArgs[HotelSearchArgs](arguments)
	if err != nil {
		return HotelSearchParams{}, err
	}
	params := HotelSearchParams{
		Destination: args.Destination,
		CheckIn:     args.CheckIn,
		CheckOut:    args.CheckOut,
		Guests:      2,
		Rooms:       1,
		Amenities:   args.Amenities,
	}
	if args.Guests != nil {
		params.Guests = *args.Guests
	}
	if args.Rooms != nil {
		params.Rooms = *args.Rooms
	}
	if args.MinPrice != nil {
		params.MinPrice = *args.MinPrice
	}
	if args.MaxPrice != nil {
		params.MaxPrice = *args.MaxPrice
	}
	if args.StarRating != nil {
		params.StarRating = *args.StarRating
	}
	return params, nil
}

// ValidateFlightArgs decodes and validates raw flight-search arguments,
// applying defaults (passengers 1, cabin class economy).
func ValidateFlightArgs(arguments map[string]interface{}) (FlightSearchParams, error) {
	args, err := schema.DecodeArgs[FlightSearchArgs](arguments)
	if err != nil {
		return FlightSearchParams{}, err
	}
	params := FlightSearchParams{
		Origin:        args.Origin,
		Destination:   args.Destination,
		DepartureDate: args.DepartureDate,
		Passengers:    1,
		CabinClass:    "economy",
		Airlines:      args.Airlines,
	}
	if args.ReturnDate != nil {
		params.ReturnDate = *args.ReturnDate
	}
	if args.Passengers != nil {
		params.Passengers = *args.Passengers
	}
	if args.CabinClass != nil {
		params.CabinClass = *args.CabinClass
	}
	if args.Stops != nil {
		params.Stops = *args.Stops
	}
	if args.MaxPrice != nil {
		params.MaxPrice = *args.MaxPrice
	}
	return params, nil
}
