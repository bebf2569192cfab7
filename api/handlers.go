package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gaurav-prasanna/easyread/core"
)

// Response is the envelope for every API response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
	Meta    Meta   `json:"meta"`
}

// Error describes a failed request.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta contains response metadata.
type Meta struct {
	Timestamp string `json:"timestamp"`
}

// TextRequest is the body of POST /api/rewrite. A missing difficulty
// means original.
type TextRequest struct {
	Text       string  `json:"text"`
	Difficulty *string `json:"difficulty"`
}

// TextResult is the data of a successful text rewrite.
type TextResult struct {
	Text string `json:"text"`
}

// HTMLRequest is the body of POST /api/rewrite-html.
type HTMLRequest struct {
	HTML       string  `json:"html"`
	Difficulty *string `json:"difficulty"`
}

// HTMLResult is the data of a successful HTML rewrite.
type HTMLResult struct {
	HTML string `json:"html"`
}

// HealthInfo is the health check response.
type HealthInfo struct {
	Status string   `json:"status"`
	Uptime string   `json:"uptime"`
	Levels []string `json:"levels"`
}

func (s *Server) handleRewriteText(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !s.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.respond(w, http.StatusOK, TextResult{})
		return
	}
	level, ok := s.parseLevel(w, req.Difficulty)
	if !ok {
		return
	}

	out, err := s.rewriter.RewriteText(req.Text, level)
	if err != nil {
		s.log.Error("rewrite text", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "INTERNAL", "rewrite failed")
		return
	}
	s.respond(w, http.StatusOK, TextResult{Text: out})
}

func (s *Server) handleRewriteHTML(w http.ResponseWriter, r *http.Request) {
	var req HTMLRequest
	if !s.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.HTML) == "" {
		s.respond(w, http.StatusOK, HTMLResult{})
		return
	}
	level, ok := s.parseLevel(w, req.Difficulty)
	if !ok {
		return
	}

	out, err := s.rewriter.RewriteHTML(req.HTML, level)
	if err != nil {
		s.log.Error("rewrite html", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "INTERNAL", "rewrite failed")
		return
	}
	s.respond(w, http.StatusOK, HTMLResult{HTML: out})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
		return
	}
	levels := make([]string, 0, 3)
	for _, d := range core.Difficulties() {
		levels = append(levels, d.String())
	}
	s.respond(w, http.StatusOK, HealthInfo{
		Status: "ok",
		Uptime: time.Since(s.started).Round(time.Second).String(),
		Levels: levels,
	})
}

// decode reads a JSON POST body into v, writing the error response itself
// when it returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, http.StatusRequestEntityTooLarge, "TOO_LARGE", "Request body too large")
			return false
		}
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", "Bad request")
		return false
	}
	return true
}

// parseLevel defaults an absent difficulty to original; a present one must
// match a level exactly.
func (s *Server) parseLevel(w http.ResponseWriter, raw *string) (core.Difficulty, bool) {
	if raw == nil {
		return core.Original, true
	}
	level, err := core.ParseDifficulty(*raw)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "INVALID_DIFFICULTY", "Invalid difficulty")
		return "", false
	}
	return level, true
}

func (s *Server) respond(w http.ResponseWriter, status int, data any) {
	s.write(w, status, Response{Success: true, Data: data, Meta: newMeta()})
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.write(w, status, Response{Error: &Error{Code: code, Message: message}, Meta: newMeta()})
}

func (s *Server) write(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; the client has usually gone away.
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Warn("writing response", zap.Error(err))
	}
}

func newMeta() Meta {
	return Meta{Timestamp: time.Now().UTC().Format(time.RFC3339)}
}
