package webview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const shutdownTimeout = 5 * time.Second

// Config describes the remote model to show
type Config struct {
	// Addr to listen on, "127.0.0.1:0" picks a free port
	Addr        string
	Name        string
	ModelURL    string
	Description string
	// AllowedOrigins for the model info endpoint, any origin when empty
	AllowedOrigins []string
}

// ModelInfo is the JSON served at /api/model
type ModelInfo struct {
	Name        string `json:"name"`
	ModelURL    string `json:"modelUrl"`
	Description string `json:"description,omitempty"`
}

// Server serves a page that renders a remote model with the model-viewer web component
type Server struct {
	handler http.Handler
	logger  *slog.Logger
	cfg     Config
}

// NewServer creates a server for cfg
func NewServer(cfg Config, logger *slog.Logger) (*Server, error) {
	if cfg.ModelURL == "" {
		return nil, errors.New("model url is empty")
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:0"
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{cfg: cfg, logger: logger}
	s.handler = s.routes()
	return s, nil
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger(s.logger), recoverer(s.logger))

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handlePage)
	r.Get("/api/model", s.handleModel)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.logger, map[string]string{"status": "ok"})
	})

	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Name:        s.cfg.Name,
		ModelURL:    s.cfg.ModelURL,
		Description: s.cfg.Description,
		Script:      modelViewerScript,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("failed to render viewer page", "error", err)
	}
}

func (s *Server) handleModel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, ModelInfo{
		Name:        s.cfg.Name,
		ModelURL:    s.cfg.ModelURL,
		Description: s.cfg.Description,
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// Run listens on cfg.Addr and serves until ctx is canceled, then shuts down gracefully.
// ready, if not nil, receives the page URL once the listener is up.
func (s *Server) Run(ctx context.Context, ready func(url string)) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}

	server := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	url := "http://" + ln.Addr().String() + "/"
	s.logger.InfoContext(ctx, "web viewer available", "url", url, "model", s.cfg.ModelURL)
	if ready != nil {
		ready(url)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("web viewer shutdown failed: %w", err)
		}
		s.logger.Info("web viewer stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}
