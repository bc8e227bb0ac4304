// internal/server/router.go
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/dialog"
	"dining-concierge/internal/intake"
	"dining-concierge/internal/models"
)

// Server exposes the chat and dialog entry points over HTTP.
type Server struct {
	logger logger.Logger
	intake *intake.Handler
	dialog *dialog.Handler
}

func New(log logger.Logger, intakeHandler *intake.Handler, dialogHandler *dialog.Handler) *Server {
	return &Server{
		logger: log,
		intake: intakeHandler,
		dialog: dialogHandler,
	}
}

// Router wires up all routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/v1/chat", s.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/v1/dialog", s.handleDialog).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var request intake.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := s.intake.Handle(r.Context(), request)
	if err != nil {
		s.logger.WithError(err).Error("Chat request failed", nil)
		s.writeError(w, http.StatusInternalServerError, "failed to reach the dialog engine")
		return
	}

	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleDialog(w http.ResponseWriter, r *http.Request) {
	var event models.DialogEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid dialog event")
		return
	}

	response, err := s.dialog.Handle(r.Context(), event)
	if err != nil {
		s.logger.WithError(err).Error("Dialog turn failed", map[string]interface{}{
			"intent": event.CurrentIntent.Name,
		})
		s.writeError(w, http.StatusInternalServerError, "dialog handling failed")
		return
	}

	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WithError(err).Error("Failed to write response", nil)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
