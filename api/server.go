// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs cost logic.
package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"cloudforge/core/engine"
	"cloudforge/core/types"
	"cloudforge/internal/errors"
	"cloudforge/internal/logging"
	"cloudforge/manifest"
)

// Server is the API server
type Server struct {
	engine  *engine.Engine
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server over an assembled engine
func NewServer(version string, eng *engine.Engine) *Server {
	s := &Server{
		engine:  eng,
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /v1/resolve", s.handleResolve)
	s.mux.HandleFunc("POST /v1/select", s.handleSelect)
	s.mux.HandleFunc("POST /v1/plan", s.handlePlan)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	logging.Info("api listening", zap.String("addr", addr), zap.String("version", s.version))
	return http.ListenAndServe(addr, s.mux)
}

// handleResolve evaluates a single resource request. Both concrete and
// virtual providers are accepted; the response carries the descriptor
// and quote (plus the full selection for virtual providers).
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req types.ResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Config("invalid request body", err))
		return
	}

	planned, err := s.engine.Evaluate(r.Context(), req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, planned)
}

// handleSelect runs cheapest selection and returns the ranked result
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req types.ResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Config("invalid request body", err))
		return
	}
	if !req.Provider.IsVirtual() {
		req.Provider = types.ProviderCheapest
	}

	planned, err := s.engine.Evaluate(r.Context(), req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, planned.Selection)
}

// handlePlan evaluates a whole manifest posted as YAML or JSON
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Manifest string `json:"manifest"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errors.Config("invalid request body", err))
		return
	}

	m, err := manifest.Parse([]byte(body.Manifest))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	plan, err := s.engine.Plan(r.Context(), m.Name, m.Resources)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": s.version})
}

func statusFor(err error) int {
	switch errors.TypeOf(err) {
	case errors.TypeInput, errors.TypeConfig:
		return http.StatusBadRequest
	case errors.TypeNotFound, errors.TypeNoFit, errors.TypeNoGPU,
		errors.TypeUnmappedImage, errors.TypeUnmappedLocation:
		return http.StatusUnprocessableEntity
	case errors.TypeNoEligibleProvider:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	type errorBody struct {
		Error string                 `json:"error"`
		Type  errors.Type            `json:"type"`
		Extra map[string]interface{} `json:"context,omitempty"`
	}
	body := errorBody{Error: err.Error(), Type: errors.TypeOf(err)}
	if domainErr, ok := errors.Domain(err); ok {
		body.Extra = domainErr.Context
	}
	writeJSON(w, status, body)
}
