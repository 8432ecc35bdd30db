package mrtdirections

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/mrt-directions/itinerary"
	"github.com/theoremus-urban-solutions/mrt-directions/network"
	"github.com/theoremus-urban-solutions/mrt-directions/policy"
	"github.com/theoremus-urban-solutions/mrt-directions/router"
)

// Service answers travel-direction queries against the immutable network
// model. It is safe for concurrent use.
type Service struct {
	model  *network.Model
	logger zerolog.Logger
}

// NewService creates a directions service over a loaded network model.
func NewService(model *network.Model, logger zerolog.Logger) *Service {
	return &Service{model: model, logger: logger}
}

// Model exposes the underlying network model.
func (s *Service) Model() *network.Model { return s.model }

// ResolveNameFromID resolves a station id to its (lowercased) name.
func (s *Service) ResolveNameFromID(id string) (string, bool) {
	return s.model.NameForID(id)
}

// ValidateStationID rejects ids the station map does not know.
func (s *Service) ValidateStationID(id string) error {
	if _, ok := s.model.NameForID(id); !ok {
		return &StationNotFoundError{Subject: "Station id " + id}
	}
	return nil
}

// Validate rejects a query before any route finding runs: both endpoints
// must exist, be distinct, have fully opened, and not be night-closed at
// the departure time.
func (s *Service) Validate(from, to string, departure time.Time) error {
	if !s.model.HasStation(from) {
		return &StationNotFoundError{Subject: "Station name " + from}
	}
	if !s.model.HasStation(to) {
		return &StationNotFoundError{Subject: "Station name " + to}
	}
	if from == to {
		return &InvalidQueryError{Msg: "Source and destination stations must be different"}
	}
	if !policy.IsReady(s.model.StationsByName(from), departure) {
		return &StationNotReadyError{Subject: "Station name " + from}
	}
	if !policy.IsReady(s.model.StationsByName(to), departure) {
		return &StationNotReadyError{Subject: "Station name " + to}
	}
	if policy.IsClosedForNight(s.model.StationsByName(from), departure) {
		return &StationClosedError{Subject: "Station name " + from}
	}
	if policy.IsClosedForNight(s.model.StationsByName(to), departure) {
		return &StationClosedError{Subject: "Station name " + to}
	}
	return nil
}

// Plan validates the query, finds a route and compiles the travel plan.
func (s *Service) Plan(from, to string, departure time.Time) (itinerary.Plan, error) {
	if err := s.Validate(from, to, departure); err != nil {
		s.logger.Debug().Str("from", from).Str("to", to).Err(err).Msg("query rejected")
		return itinerary.Plan{}, err
	}
	route, err := router.Find(s.model, from, to)
	if err != nil {
		if errors.Is(err, router.ErrNoRoute) {
			s.logger.Error().Str("from", from).Str("to", to).Msg("no route in a connected network")
			return itinerary.Plan{}, &RouteNotFoundError{From: from, To: to}
		}
		return itinerary.Plan{}, err
	}
	return itinerary.Compile(route, departure), nil
}
