// Package ws streams a live preview of transmitted frames to browser
// clients over websockets. It is observe-only; the strip cannot be
// reconfigured through it.
package ws

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/brandonedens/led-strip/internal/p9813"
)

// Server fans transmitted frames out to connected preview clients.
type Server struct {
	mu        sync.Mutex
	count     int
	frameID   uint64
	startTime time.Time
	throttle  time.Duration
	lastEmit  time.Time
	clients   map[*websocket.Conn]bool
}

func NewServer(count int) *Server {
	return &Server{
		count:     count,
		startTime: time.Now(),
		throttle:  50 * time.Millisecond, // ~20 FPS to the UI is plenty
		clients:   map[*websocket.Conn]bool{},
	}
}

// Routes returns a mux with the preview endpoints mounted.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/frames", s.HandleFrames)
	mux.HandleFunc("/health", s.HandleHealth)
	return mux
}

// Frame implements the animation loop's sink. The wire frame is decoded
// back to plain RGB triples so clients never need to know the chip
// framing. Emission is throttled; drops are fine for a preview.
func (s *Server) Frame(frame []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frameID++
	now := time.Now()
	if s.lastEmit.Add(s.throttle).After(now) || len(s.clients) == 0 {
		return
	}
	s.lastEmit = now

	rgb := make([]byte, s.count*3)
	for i := 0; i < s.count; i++ {
		off := (i + p9813.StartFrames) * p9813.PixelSize
		rgb[i*3+0] = frame[off+3]
		rgb[i*3+1] = frame[off+2]
		rgb[i*3+2] = frame[off+1]
	}
	payload, err := json.Marshal(map[string]any{
		"frame_id": s.frameID,
		"count":    s.count,
		"rgb":      base64.StdEncoding.EncodeToString(rgb),
	})
	if err != nil {
		return
	}
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(s.clients, conn)
			_ = conn.Close()
		}
	}
}

func (s *Server) HandleFrames(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("preview upgrade failed")
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	// Drain the connection so closes are noticed.
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := map[string]any{
		"frame_id": s.frameID,
		"uptime_s": time.Since(s.startTime).Seconds(),
		"count":    s.count,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
