// Package server provides the HTTP REST API for the skill-gap analyzer.
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

	"github.com/go-playground/validator/v10"

	"github.com/skillvize/skillvize/internal/analysis"
	"github.com/skillvize/skillvize/internal/config"
	"github.com/skillvize/skillvize/internal/db"
	"github.com/skillvize/skillvize/internal/llm"
	"github.com/skillvize/skillvize/internal/roadmap"
	"github.com/skillvize/skillvize/internal/server/middleware"
)

// Server is the HTTP server and its wired dependencies.
type Server struct {
	httpServer    *http.Server
	db            *db.DB
	oracle        llm.Client
	analyzer      Analyzer
	roadmaps      RoadmapService
	jwtService    *JWTService
	authHandler   *AuthHandler
	validator     *validator.Validate
	oracleTimeout time.Duration
}

// New connects the database, builds the oracle client, and wires the
// analysis and roadmap pipelines onto the router.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}

	oracle, err := newOracleClient(ctx, cfg)
	if err != nil {
		database.Close()
		return nil, err
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	s := &Server{
		db:            database,
		oracle:        oracle,
		analyzer:      analysis.NewAnalyzer(oracle),
		validator:     validator.New(),
		oracleTimeout: cfg.OracleTimeout,
	}

	synthesizer := roadmap.NewSynthesizer(oracle)
	guard := roadmap.NewGuard(database, cfg.DedupWindow)
	s.roadmaps = roadmap.NewService(synthesizer, guard, database)

	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(NewUserService(database, passwordConfig), s.jwtService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", s.authHandler.Login)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)

	authed := middleware.Auth(s.jwtService.AsTokenValidator())
	mux.Handle("POST /api/roadmap", authed(http.HandlerFunc(s.handleGenerateRoadmap)))
	mux.Handle("GET /api/roadmap", authed(http.HandlerFunc(s.handleListRoadmaps)))
	mux.Handle("DELETE /api/roadmap/{id}", authed(http.HandlerFunc(s.handleDeleteRoadmap)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.OracleTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func newOracleClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		return llm.NewClient(ctx, llm.DefaultOpenAIConfig(cfg.OpenAIBaseURL), cfg.OpenAIAPIKey)
	default:
		return llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	}
}

// Start begins listening and blocks until interrupted, then shuts down
// gracefully.
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

	if err := s.oracle.Close(); err != nil {
		log.Printf("Error closing oracle client: %v", err)
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// writeError writes an error JSON response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
