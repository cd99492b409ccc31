package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"cortex/internal/notes"
)

type transcribeResponse struct {
	Transcript string  `json:"transcript"`
	Timestamp  string  `json:"timestamp"`
	Duration   float64 `json:"duration"`
}

type processRequest struct {
	Transcript string `json:"transcript"`
	Folder     string `json:"folder"`
	Timestamp  string `json:"timestamp"`
}

func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !s.transcriber.Ready() {
		http.Error(w, "Whisper model not loaded", http.StatusServiceUnavailable)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, "audio file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".webm"
	}
	tempPath := filepath.Join(os.TempDir(), uuid.NewString()+ext)

	out, err := os.Create(tempPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer os.Remove(tempPath)

	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	out.Close()

	result, err := s.transcriber.Transcribe(ctx, tempPath)
	if err != nil {
		s.logger.Error(ctx, "Transcription failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	timestamp := r.FormValue("timestamp")
	if timestamp == "" {
		timestamp = time.Now().Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, transcribeResponse{
		Transcript: result.Text,
		Timestamp:  timestamp,
		Duration:   result.Duration,
	})
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := s.pipeline.Process(ctx, req.Transcript, req.Folder, req.Timestamp)
	if err != nil {
		if errors.Is(err, notes.ErrBadTimestamp) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.logger.Error(ctx, "Pipeline failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.hub.EntryCreated(&notes.Entry{
		ID:        outcome.ID,
		Preview:   outcome.Preview,
		Folder:    outcome.Folder,
		Timestamp: req.Timestamp,
		Title:     outcome.Title,
	})

	writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := s.store.ListFolders()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, folders)
}

func (s *Server) handleCreateFolder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Folder name required", http.StatusBadRequest)
		return
	}

	folder, err := s.store.CreateFolder(req.Name, req.Description)
	if err != nil {
		if errors.Is(err, notes.ErrFolderExists) {
			http.Error(w, "Folder already exists", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, folder)
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := s.store.ListEntries(r.Context(), r.URL.Query().Get("folder"), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []notes.Entry{}
	}

	writeJSON(w, http.StatusOK, entries)
}

// handleExportEntry serves GET /api/entries/{id}/export as a docx download.
func (s *Server) handleExportEntry(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/entries/")
	id, ok := strings.CutSuffix(rest, "/export")
	if !ok || id == "" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	path, content, err := s.store.FindEntryFile(id)
	if err != nil {
		http.Error(w, "Entry not found", http.StatusNotFound)
		return
	}

	stem := strings.TrimSuffix(filepath.Base(path), notes.Extension)
	docxPath := filepath.Join(os.TempDir(), stem+".docx")
	defer os.Remove(docxPath)

	if err := notes.ExportDocx(content, docxPath); err != nil {
		s.logger.Error(r.Context(), "Docx export failed for %s: %v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", stem+".docx"))
	http.ServeFile(w, r, docxPath)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
