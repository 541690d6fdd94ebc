package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/boxflow/pkg/buildinfo"
	"github.com/matzehuels/boxflow/pkg/errors"
	"github.com/matzehuels/boxflow/pkg/observability"
	"github.com/matzehuels/boxflow/pkg/pipeline"
	"github.com/matzehuels/boxflow/pkg/render"
	"github.com/matzehuels/boxflow/pkg/store"
)

// solveRequest is the body of POST /v1/solve.
type solveRequest struct {
	// Manifest is the layout manifest as a JSON object.
	Manifest json.RawMessage `json:"manifest"`
	Width    float64         `json:"width,omitempty"`
	Height   float64         `json:"height,omitempty"`
	Refresh  bool            `json:"refresh,omitempty"`
}

// solveResponse is the body of a successful solve.
type solveResponse struct {
	Document     render.Document `json:"document"`
	ManifestHash string          `json:"manifest_hash"`
	CacheHit     bool            `json:"cache_hit"`
}

// snapshotRequest is the body of POST /v1/snapshots.
type snapshotRequest struct {
	Name     string          `json:"name"`
	Manifest json.RawMessage `json:"manifest"`
	Width    float64         `json:"width,omitempty"`
	Height   float64         `json:"height,omitempty"`
}

// listResponse is the body of GET /v1/snapshots.
type listResponse struct {
	Snapshots []*store.Snapshot `json:"snapshots"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if len(req.Manifest) == 0 {
		s.respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "manifest is required"))
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Manifest: string(req.Manifest),
		Source:   pipeline.SourceJSON,
		Width:    req.Width,
		Height:   req.Height,
		Refresh:  req.Refresh,
		Formats:  []string{pipeline.FormatJSON},
		Logger:   s.logger,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, solveResponse{
		Document:     result.Document,
		ManifestHash: result.ManifestHash,
		CacheHit:     result.CacheInfo.SolveHit,
	})
}

func (s *Server) handleCreateSnapshot(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if req.Name == "" {
		s.respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "name is required"))
		return
	}
	if err := errors.ValidateLabel(req.Name); err != nil {
		s.respondError(w, r, err)
		return
	}
	if len(req.Manifest) == 0 {
		s.respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "manifest is required"))
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Manifest: string(req.Manifest),
		Source:   pipeline.SourceJSON,
		Width:    req.Width,
		Height:   req.Height,
		Formats:  []string{pipeline.FormatJSON},
		Logger:   s.logger,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	snap := store.New(req.Name, string(req.Manifest), result.Document)
	if err := s.store.Put(r.Context(), snap); err != nil {
		s.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.respondError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid limit: %q", raw))
			return
		}
		limit = n
	}

	snaps, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if snaps == nil {
		snaps = []*store.Snapshot{}
	}

	respondJSON(w, http.StatusOK, listResponse{Snapshots: snaps})
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (s *Server) handleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps structured error codes to HTTP statuses and writes a
// JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)

	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}

	respondJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound,
		errors.ErrCodeNodeNotFound,
		errors.ErrCodeFileNotFound,
		errors.ErrCodeSnapshotNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidPadding,
		errors.ErrCodeInvalidSpacing,
		errors.ErrCodeInvalidSizing,
		errors.ErrCodeInvalidAlignment,
		errors.ErrCodeInvalidManifest,
		errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
