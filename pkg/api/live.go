// Package api pkg/api/live.go streams benchmark summaries to dashboard
// clients over a websocket.
package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The playground serves local dashboards; cross-origin is fine here.
	CheckOrigin: func(*http.Request) bool { return true },
}

func (s *APIServer) liveBenchmarks(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Drain client frames so close messages are processed.
	done := make(chan struct{})

	go func() {
		defer close(done)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.liveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-done:
			return
		case <-ticker.C:
			update := liveUpdate{
				Timestamp: time.Now(),
				Summaries: s.metrics.Summarize(),
			}

			if err := conn.WriteJSON(update); err != nil {
				return
			}
		}
	}
}
