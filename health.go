package mrtdirections

import "net/http"

type healthResponse struct {
	Status   string `json:"status"`
	Stations int    `json:"stations"`
	Lines    int    `json:"lines"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:   "ok",
		Stations: s.svc.Model().NumStations(),
		Lines:    len(s.svc.Model().Lines()),
	}
	writeJSON(w, http.StatusOK, resp)
}
