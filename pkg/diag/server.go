package diag

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-ember/ember/pkg/log"
)

// Server exposes frame diagnostics over HTTP on a development device.
// Endpoints: /health, /frames (timing window + counters).
type Server struct {
	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	timing   *FrameTimingBuffer
}

// NewServer creates a server over the given timing buffer.
func NewServer(timing *FrameTimingBuffer) *Server {
	return &Server{timing: timing}
}

// Start binds the listener and begins serving. Returns the actual port,
// which differs from the requested one when port is 0.
func (s *Server) Start(port int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		if s.listener != nil {
			return s.listener.Addr().(*net.TCPAddr).Port, nil
		}
		return port, nil
	}

	// Bind listener first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return 0, fmt.Errorf("debug server listen: %w", err)
	}
	actualPort := listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/frames", s.handleFrames)

	server := &http.Server{Handler: mux}
	s.server = server
	s.listener = listener

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.mu.Lock()
			s.server = nil
			s.listener = nil
			s.mu.Unlock()
			logger := log.For("diag")
			logger.Error().Err(err).Msg("debug server stopped")
		}
	}()

	logger := log.For("diag")
	logger.Info().Int("port", actualPort).Msg("debug server started")
	return actualPort, nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	samples := s.timing.Samples()
	millis := make([]float64, len(samples))
	for i, d := range samples {
		millis[i] = float64(d.Microseconds()) / 1000
	}

	payload := struct {
		Stats   Stats     `json:"stats"`
		FrameMs []float64 `json:"frameMs"`
	}{
		Stats:   s.timing.Stats(),
		FrameMs: millis,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
