// Package server exposes the HTTP surface: transcription upload, transcript
// processing, folder and entry management, websocket events, and the static
// frontend.
package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"cortex/internal/config"
	"cortex/internal/logger"
	"cortex/internal/notes"
	"cortex/internal/pipeline"
	"cortex/internal/transcriber"
	"cortex/internal/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Server struct {
	cfg         *config.Config
	logger      logger.Logger
	store       notes.Store
	pipeline    pipeline.Pipeline
	transcriber transcriber.Transcriber
	hub         *ws.Hub
}

func New(cfg *config.Config, log logger.Logger, store notes.Store, pl pipeline.Pipeline, tr transcriber.Transcriber, hub *ws.Hub) *Server {
	return &Server{
		cfg:         cfg,
		logger:      log,
		store:       store,
		pipeline:    pl,
		transcriber: tr,
		hub:         hub,
	}
}

// Router builds the full mux with CORS applied to every route.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/transcribe", s.methodOnly(http.MethodPost, s.handleTranscribe))
	mux.HandleFunc("/api/process", s.methodOnly(http.MethodPost, s.handleProcess))
	mux.HandleFunc("/api/folders", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			s.handleListFolders(w, r)
		case http.MethodPost:
			s.handleCreateFolder(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/entries", s.methodOnly(http.MethodGet, s.handleListEntries))
	mux.HandleFunc("/api/entries/", s.methodOnly(http.MethodGet, s.handleExportEntry))
	mux.HandleFunc("/ws", s.handleWebSocket)

	s.mountFrontend(mux)

	return corsMiddleware(mux)
}

func (s *Server) methodOnly(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.hub.Register(conn)
	s.hub.Serve(conn)
}
