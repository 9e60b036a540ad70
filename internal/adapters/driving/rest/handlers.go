package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tracedocs/ddsdocs-cli/internal/core/domain"
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driving"
)

// searchResult is the wire form of one document hit.
type searchResult struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Format   string `json:"format"`
	Snippet  string `json:"snippet,omitempty"`
}

// listResponse wraps a collection with its length.
type listResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// infoResponse describes the running service.
type infoResponse struct {
	Name    string                  `json:"name"`
	Version string                  `json:"version"`
	Stats   *driving.KnowledgeStats `json:"stats"`
	Ingest  *ingestStatus           `json:"ingest,omitempty"`
}

type ingestStatus struct {
	RunID              string `json:"runId"`
	FilesDiscovered    int    `json:"filesDiscovered"`
	DocumentsProcessed int    `json:"documentsProcessed"`
	FilesSkipped       int    `json:"filesSkipped"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	stats, err := s.ports.Query.Stats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	info := infoResponse{
		Name:    "ddsdocs",
		Version: Version,
		Stats:   stats,
	}
	if s.ports.Ingest != nil {
		if status := s.ports.Ingest.Status(); status != nil {
			info.Ingest = &ingestStatus{
				RunID:              status.RunID,
				FilesDiscovered:    status.FilesDiscovered,
				DocumentsProcessed: status.DocumentsProcessed,
				FilesSkipped:       status.FilesSkipped,
			}
		}
	}
	respondJSON(w, http.StatusOK, info)
}

func (s *Server) handleSearchDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	matches, err := s.ports.Query.SearchDocuments(r.Context(), query, category, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	results := make([]searchResult, len(matches))
	for i := range matches {
		doc := matches[i].Document
		results[i] = searchResult{
			Filename: doc.Filename,
			Title:    doc.Title,
			Category: doc.Category,
			Format:   string(doc.Format),
			Snippet:  matches[i].Snippet,
		}
	}
	respondJSON(w, http.StatusOK, listResponse[searchResult]{Items: results, Count: len(results)})
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	doc, err := s.ports.Query.Document(r.Context(), filename)
	if errors.Is(err, domain.ErrNotFound) {
		respondError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handleEndpoints(w http.ResponseWriter, r *http.Request) {
	endpoints, err := s.ports.Query.Endpoints(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, listResponse[domain.Endpoint]{Items: endpoints, Count: len(endpoints)})
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	exampleType := domain.ExampleType(r.URL.Query().Get("type"))
	if exampleType != "" && exampleType != domain.ExampleRequest && exampleType != domain.ExampleResponse {
		respondError(w, http.StatusBadRequest, "type must be request or response")
		return
	}

	examples, err := s.ports.Query.Examples(r.Context(), r.URL.Query().Get("operation"), exampleType)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, listResponse[domain.Example]{Items: examples, Count: len(examples)})
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	rules, err := s.ports.Query.Rules(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, listResponse[domain.Rule]{Items: rules, Count: len(rules)})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.ports.Query.Categories(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, listResponse[driving.CategoryCount]{Items: categories, Count: len(categories)})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.ports.Query.Stats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// respondError writes a JSON error body.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
