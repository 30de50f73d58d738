package travel

import (
	"context"

	"github.com/voyagehq/travelmcp/types"
)

// Source tags which stage of the search pipeline produced a result list.
type Source int

const (
	// SourceLive means the upstream provider returned the records.
	SourceLive Source = iota
	// SourceFallback means the deterministic synthetic catalog was substituted.
	SourceFallback
)

// HotelSearcher is the upstream hotel adapter contract. The boolean is false
// whenever live data is unavailable for any reason (missing credential,
// transport failure, empty upstream payload); callers must then fall back.
// A true result with an empty slice means confirmed zero results.
type HotelSearcher interface {
	SearchHotels(ctx context.Context, params HotelSearchParams) ([]HotelRecord, bool)
}

// FlightSearcher is the upstream flight adapter contract; same semantics as
// HotelSearcher.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, params FlightSearchParams) ([]FlightRecord, bool)
}

// Service runs the two-stage search pipeline: attempt live data, substitute
// the deterministic fallback when the adapter yields nothing. The returned
// Source makes the data origin structurally visible to callers.
type Service struct {
	hotels  HotelSearcher
	flights FlightSearcher
	logger  types.Logger
}

// NewService builds a search Service. Either searcher may be nil, in which
// case that tool always serves fallback data.
func NewService(hotels HotelSearcher, flights FlightSearcher, logger types.Logger) *Service {
	return &Service{hotels: hotels, flights: flights, logger: logger}
}

// SearchHotels attempts a live hotel search and falls back to the synthetic
// catalog when no live data is available.
func (s *Service) SearchHotels(ctx context.Context, params HotelSearchParams) ([]HotelRecord, Source) {
	if s.hotels != nil {
		if records, ok := s.hotels.SearchHotels(ctx, params); ok {
			return records, SourceLive
		}
	}
	s.logger.Warn("Using mock hotel data for destination %q", params.Destination)
	return MockHotels(params), SourceFallback
}

// SearchFlights attempts a live flight search and falls back to the synthetic
// catalog when no live data is available.
func (s *Service) SearchFlights(ctx context.Context, params FlightSearchParams) ([]FlightRecord, Source) {
	if s.flights != nil {
		if records, ok := s.flights.SearchFlights(ctx, params); ok {
			return records, SourceLive
		}
	}
	s.logger.Warn("Using mock flight data for route %s-%s", params.Origin, params.Destination)
	return MockFlights(params), SourceFallback
}
