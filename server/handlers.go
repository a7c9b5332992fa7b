package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/transit-catalogue/loader"
	"github.com/theoremus-urban-solutions/transit-catalogue/responder"
)

type healthResponse struct {
	Status        string `json:"status"`
	DatasetID     string `json:"dataset_id"`
	RouterID      string `json:"router_id,omitempty"`
	Stops         int    `json:"stops"`
	Routes        int    `json:"routes"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:        "ok",
		DatasetID:     s.info.DatasetID.String(),
		Stops:         s.info.Stops,
		Routes:        s.info.Routes,
		UptimeSeconds: int64(time.Since(s.startedAt) / time.Second),
	}
	if s.info.RouterID != uuid.Nil {
		resp.RouterID = s.info.RouterID.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBus(w http.ResponseWriter, r *http.Request) {
	s.answer(w, loader.StatRequest{ID: requestID(r), Type: loader.TypeBus, Name: pathParam(r, "name")})
}

func (s *Server) handleBusStops(w http.ResponseWriter, r *http.Request) {
	stops, err := s.responder.BusStops(pathParam(r, "name"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stops)
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	s.answer(w, loader.StatRequest{ID: requestID(r), Type: loader.TypeStop, Name: pathParam(r, "name")})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "from and to are required"})
		return
	}
	s.answer(w, loader.StatRequest{ID: requestID(r), Type: loader.TypeRoute, From: from, To: to})
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	doc, err := s.responder.Map()
	if err != nil {
		s.log.Error().Err(err).Msg("map request failed")
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func (s *Server) answer(w http.ResponseWriter, req loader.StatRequest) {
	resp := s.responder.Respond(req)
	status := http.StatusOK
	if e, ok := resp.(responder.ErrorResponse); ok {
		status = http.StatusInternalServerError
		if e.ErrorMessage == responder.ErrorMessage {
			status = http.StatusNotFound
		}
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// requestID reads the optional id query parameter.
func requestID(r *http.Request) int {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		return 0
	}
	return id
}

// pathParam returns a decoded path parameter. chi matches on RawPath when it
// is set, and only then is the parameter still escaped.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}
