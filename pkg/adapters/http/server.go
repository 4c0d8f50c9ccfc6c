package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/helix"
	"github.com/aretw0/helix/pkg/domain"
	"github.com/aretw0/helix/pkg/ports"
	"github.com/aretw0/helix/pkg/runner"
	"github.com/aretw0/helix/pkg/schema"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
)

// bodyOverhead is the allowance for JSON framing and escaping on top of the
// payload size limit when capping request bodies.
const bodyOverhead = 4096

// GetTranscodeParams are the query parameters of GET /api/transcode.
type GetTranscodeParams struct {
	Mode string `form:"mode" json:"mode"`
	Text string `form:"text" json:"text"`
}

// Server serves the transcoder over HTTP.
type Server struct {
	Engine       ports.Transcoder
	Logger       *slog.Logger
	MaxInputSize int

	cors        bool
	metricsPath string
	metrics     http.Handler
}

// Option configures the HTTP handler.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithMaxInputSize caps the payload size in bytes. Zero or less keeps the default.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.MaxInputSize = n
		}
	}
}

// WithCORS toggles the permissive CORS headers. Enabled by default.
func WithCORS(enabled bool) Option {
	return func(s *Server) {
		s.cors = enabled
	}
}

// WithMetrics mounts a metrics handler at path ("/metrics" when empty).
func WithMetrics(path string, h http.Handler) Option {
	return func(s *Server) {
		if path == "" {
			path = "/metrics"
		}
		s.metricsPath, s.metrics = path, h
	}
}

// NewHandler creates a new HTTP handler for the transcoder.
func NewHandler(engine ports.Transcoder, opts ...Option) http.Handler {
	s := &Server{
		Engine:       engine,
		Logger:       slog.Default(),
		MaxInputSize: runner.DefaultMaxInputSize,
		cors:         true,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	if s.cors {
		r.Use(enableCORS)
	}

	r.Post("/api/transcode", s.PostTranscode)
	r.Get("/api/transcode", s.getTranscodeWrapper)
	r.Post("/encode", s.PostEncode)
	r.Post("/decode", s.PostDecode)
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiYAML)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	if s.metrics != nil {
		r.Method(http.MethodGet, s.metricsPath, s.metrics)
	}
	return r
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Helix API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// PostTranscode handles the POST /api/transcode request.
func (s *Server) PostTranscode(w http.ResponseWriter, r *http.Request) {
	var body schema.TranscodeRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	mode, err := body.ParseMode()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.transcode(w, r, mode, body.Text)
}

// getTranscodeWrapper binds the query string the way generated chi servers do.
func (s *Server) getTranscodeWrapper(w http.ResponseWriter, r *http.Request) {
	var params GetTranscodeParams
	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, true, "mode", query, &params.Mode); err != nil {
		s.fail(w, r, &schema.ValidationError{Key: "mode", Reason: fmt.Sprintf("invalid format for parameter mode: %v", err), Err: err})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "text", query, &params.Text); err != nil {
		s.fail(w, r, &schema.ValidationError{Key: "text", Reason: fmt.Sprintf("invalid format for parameter text: %v", err), Err: err})
		return
	}
	s.GetTranscode(w, r, params)
}

// GetTranscode handles the GET /api/transcode request.
func (s *Server) GetTranscode(w http.ResponseWriter, r *http.Request, params GetTranscodeParams) {
	mode, err := schema.TranscodeRequest{Mode: params.Mode}.ParseMode()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.transcode(w, r, mode, params.Text)
}

// PostEncode handles the legacy POST /encode request.
func (s *Server) PostEncode(w http.ResponseWriter, r *http.Request) {
	var body schema.EncodeRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	s.transcode(w, r, domain.ModeEncode, body.Text)
}

// PostDecode handles the legacy POST /decode request.
func (s *Server) PostDecode(w http.ResponseWriter, r *http.Request) {
	var body schema.DecodeRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	s.transcode(w, r, domain.ModeDecode, body.DNA)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "helix-http",
		"version":     strings.TrimSpace(helix.Version),
		"api_version": apiVersion,
	})
}

func (s *Server) transcode(w http.ResponseWriter, r *http.Request, mode domain.Mode, payload string) {
	clean, err := runner.SanitizeInputLimit(payload, s.MaxInputSize)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if mode == domain.ModeDecode {
		if err := schema.CheckDNA("text", clean); err != nil {
			s.fail(w, r, err)
			return
		}
	}

	res, err := s.Engine.Transcode(r.Context(), mode, clean)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schema.FromResult(res))
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.MaxInputSize)*2+bodyOverhead)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, r, fmt.Errorf("%w: %v", runner.ErrInputTooLarge, err))
			return false
		}
		s.fail(w, r, &schema.ValidationError{Key: "body", Reason: "invalid request body", Err: err})
		return false
	}
	return true
}

// fail writes the error envelope with the status matching err.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := classify(err)
	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"request_id", w.Header().Get(headerRequestID),
		"error", err,
	}
	if status >= http.StatusInternalServerError {
		s.Logger.ErrorContext(r.Context(), "transcode request failed", attrs...)
	} else {
		s.Logger.WarnContext(r.Context(), "transcode request rejected", attrs...)
	}
	writeJSON(w, status, schema.ErrorResponse(msg))
}

// classify maps an error to an HTTP status and the message returned to clients.
func classify(err error) (int, string) {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Reason
	case errors.Is(err, runner.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge, runner.ErrInputTooLarge.Error()
	case errors.Is(err, runner.ErrInvalidUTF8):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnknownMode):
		return http.StatusBadRequest, schema.MsgUnknownMode
	case errors.Is(err, domain.ErrEmptySequence):
		return http.StatusBadRequest, schema.MsgEmptySequence
	case errors.Is(err, domain.ErrInvalidSymbol):
		return http.StatusBadRequest, schema.MsgInvalidCharacters
	case domain.IsInputError(err):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
