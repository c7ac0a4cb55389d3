package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swiftscout/swiftscout/pkg/errors"
	"github.com/swiftscout/swiftscout/pkg/integrations/spi"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadme(w http.ResponseWriter, r *http.Request) {
	owner, repo := chi.URLParam(r, "owner"), chi.URLParam(r, "repo")
	refresh := r.URL.Query().Get("refresh") == "true"

	result, err := s.service.GetReadme(r.Context(), owner, repo, refresh)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	owner, repo := chi.URLParam(r, "owner"), chi.URLParam(r, "repo")
	refresh := r.URL.Query().Get("refresh") == "true"

	info, err := s.service.GetInfo(r.Context(), owner, repo, refresh)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := spi.SearchFilters{
		Author:   q.Get("author"),
		Keyword:  q.Get("keyword"),
		Platform: q.Get("platform"),
		License:  q.Get("license"),
	}
	refresh := q.Get("refresh") == "true"

	page, err := s.service.Search(r.Context(), q.Get("q"), filters, refresh)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Stats())
}

func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	s.service.ClearCache()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// statusForCode maps structured error codes to HTTP statuses.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPackage, errors.ErrCodeInvalidQuery:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePackageNotFound, errors.ErrCodeReadmeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusForCode(code)
	if status >= 500 {
		s.logger.Error("server: request failed",
			"path", r.URL.Path,
			"error", err,
			"request_id", requestIDFromContext(r.Context()),
		)
	}
	writeErrorStatus(w, status, string(code), err.Error())
}

func writeErrorStatus(w http.ResponseWriter, status int, code, message string) {
	var resp errorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
