package mrtdirections

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// travelPlan mirrors the response body on the wire: an error message or the
// summary and step blocks, never both.
type travelPlan struct {
	Error   string   `json:"error,omitempty"`
	Summary []string `json:"summary,omitempty"`
	Step    []string `json:"step,omitempty"`
}

func (s *Server) handlePlanByName(w http.ResponseWriter, r *http.Request) {
	from := strings.ToLower(r.PathValue("from"))
	to := strings.ToLower(r.PathValue("to"))
	departure, err := s.departureTime(r)
	if err != nil {
		s.writePlanError(w, err)
		return
	}
	s.plan(w, from, to, departure)
}

func (s *Server) handlePlanByID(w http.ResponseWriter, r *http.Request) {
	fromID := r.PathValue("from")
	toID := r.PathValue("to")
	departure, err := s.departureTime(r)
	if err != nil {
		s.writePlanError(w, err)
		return
	}
	if err := s.svc.ValidateStationID(fromID); err != nil {
		s.writePlanError(w, err)
		return
	}
	if err := s.svc.ValidateStationID(toID); err != nil {
		s.writePlanError(w, err)
		return
	}
	from, _ := s.svc.ResolveNameFromID(fromID)
	to, _ := s.svc.ResolveNameFromID(toID)
	s.plan(w, from, to, departure)
}

// departureTime reads the optional datetime path segment, defaulting to now.
func (s *Server) departureTime(r *http.Request) (time.Time, error) {
	raw := r.PathValue("datetime")
	if raw == "" {
		return time.Now(), nil
	}
	return ParseQueryTime(raw)
}

func (s *Server) plan(w http.ResponseWriter, from, to string, departure time.Time) {
	p, err := s.svc.Plan(from, to, departure)
	if err != nil {
		s.writePlanError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, travelPlan{Summary: p.Summary, Step: p.Steps})
}

func (s *Server) writePlanError(w http.ResponseWriter, err error) {
	if isRequestError(err) {
		writeJSON(w, http.StatusBadRequest, travelPlan{Error: err.Error()})
		return
	}
	s.logger.Error().Err(err).Msg("direction query failed")
	writeJSON(w, http.StatusInternalServerError, travelPlan{Error: "unknown error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
