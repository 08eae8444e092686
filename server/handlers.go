package server

import (
	"encoding/json"
	"net/http"
)

// HandleBots returns per-bot statistics.
func HandleBots(a *Arena) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := json.NewEncoder(w).Encode(a.Stats()); err != nil {
			a.logger.Warn().Err(err).Msg("Writing bot stats")
		}
	}
}

// HandleHealth reports liveness.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// NewHandler routes the HTTP API and spectator socket.
func NewHandler(a *Arena, h *Hub) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bots", HandleBots(a))
	mux.HandleFunc("/health", HandleHealth)
	mux.HandleFunc("/ws", h.HandleWebSocket)
	return mux
}
