package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/videomentions/notification-server/internal/mentions"
	"github.com/videomentions/notification-server/internal/models"
	"github.com/videomentions/notification-server/internal/settings"
)

const defaultWindowHours = 24

// Server wires the HTTP surface to the mention and settings stores
type Server struct {
	mentions mentions.Store
	settings settings.Store
}

// NewServer creates the API server
func NewServer(mentionStore mentions.Store, settingsStore settings.Store) *Server {
	return &Server{
		mentions: mentionStore,
		settings: settingsStore,
	}
}

// Router returns the configured HTTP router
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/api/mentions/recent", s.handleRecentMentions).Methods("GET")
	router.HandleFunc("/api/notification-settings", s.handleGetSettings).Methods("GET")
	router.HandleFunc("/api/notification-settings", s.handleUpdateSettings).Methods("POST")
	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleRecentMentions returns mentions created in the last `hours` hours.
// Unlike the settings handlers, store failures here are not reported in-body:
// they surface as a plain 500.
func (s *Server) handleRecentMentions(w http.ResponseWriter, r *http.Request) {
	hours := defaultWindowHours
	if raw := r.URL.Query().Get("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "hours must be an integer >= 1"})
			return
		}
		hours = parsed
	}

	results, err := s.mentions.Recent(r.Context(), hours)
	if err != nil {
		logrus.Errorf("Failed to fetch recent mentions: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []models.Mention{}
	}

	writeJSON(w, map[string]interface{}{
		"count":   len(results),
		"results": results,
	})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	current, err := s.settings.Load(r.Context())
	if err != nil {
		logrus.Errorf("Failed to fetch notification settings: %v", err)
		writeJSON(w, map[string]interface{}{"ok": false, "error": err.Error()})
		return
	}

	writeJSON(w, map[string]interface{}{"ok": true, "settings": current})
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req models.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, map[string]interface{}{"ok": false, "error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	updates, err := settings.ValidateUpdate(req)
	if err != nil {
		writeJSON(w, map[string]interface{}{"ok": false, "error": err.Error()})
		return
	}

	if len(updates) > 0 {
		if err := s.settings.Save(r.Context(), updates); err != nil {
			logrus.Errorf("Failed to update notification settings: %v", err)
			writeJSON(w, map[string]interface{}{"ok": false, "error": err.Error()})
			return
		}
	}

	writeJSON(w, map[string]interface{}{"ok": true, "message": "Settings updated successfully"})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}
