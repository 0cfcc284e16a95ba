// Package server provides the HTTP REST API for the compliance engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rcastillo/pliego-compliance/internal/compliance"
	"github.com/rcastillo/pliego-compliance/internal/ruleset"
)

// defaultWorkers is the batch evaluation parallelism when a request does
// not ask for a specific worker count.
const defaultWorkers = 4

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *ruleset.Store
	evaluator  *compliance.Evaluator
	workers    int
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	Workers     int
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	store, err := ruleset.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	s := &Server{
		store:     store,
		evaluator: compliance.NewEvaluator(nil, nil),
		workers:   workers,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/batches/evaluate", s.handleEvaluateBatch)
	mux.HandleFunc("GET /api/sheets", s.handleListSheets)
	mux.HandleFunc("GET /api/sheets/current", s.handleCurrentSheet)
	mux.HandleFunc("POST /api/sheets", s.handleCreateSheet)
	mux.HandleFunc("POST /api/sheets/{id}/activate", s.handleActivateSheet)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.store != nil {
		s.store.Close()
	}
	return nil
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
