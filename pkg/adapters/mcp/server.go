package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/helix"
	"github.com/aretw0/helix/pkg/codec"
	"github.com/aretw0/helix/pkg/domain"
	"github.com/aretw0/helix/pkg/ports"
	"github.com/aretw0/helix/pkg/runner"
	"github.com/aretw0/helix/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

// ComplementResult is the structured output of complement_dna.
type ComplementResult struct {
	Sequence   string `json:"sequence" jsonschema_description:"Canonical input sequence"`
	Complement string `json:"complement" jsonschema_description:"Base-wise complement (A<->T, G<->C)"`
}

// Server wraps the transcoder and exposes it as an MCP Server.
type Server struct {
	engine       ports.Transcoder
	mcpServer    *server.MCPServer
	maxInputSize int
}

// Option configures the MCP server.
type Option func(*Server)

// WithMaxInputSize caps tool payloads in bytes.
func WithMaxInputSize(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxInputSize = n
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Transcoder, opts ...Option) *Server {
	s := &Server{
		engine:       engine,
		mcpServer:    server.NewMCPServer("helix-mcp", strings.TrimSpace(helix.Version)),
		maxInputSize: runner.DefaultMaxInputSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	encodeTool := mcp.NewTool("encode_text",
		mcp.WithDescription("Encode UTF-8 text as a DNA sequence (00=A, 01=T, 10=G, 11=C) and derive its complement strand."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to encode")),
		mcp.WithBoolean("group", mcp.Description("Render binary as space-separated octets")),
		mcp.WithOutputSchema[schema.TranscodeResponse](),
	)
	s.mcpServer.AddTool(encodeTool, mcp.NewStructuredToolHandler(s.handleEncode))

	decodeTool := mcp.NewTool("decode_dna",
		mcp.WithDescription("Decode a DNA sequence (A, C, G, T; case-insensitive) back to UTF-8 text."),
		mcp.WithString("sequence", mcp.Required(), mcp.Description("DNA sequence to decode")),
		mcp.WithBoolean("group", mcp.Description("Render binary as space-separated octets")),
		mcp.WithOutputSchema[schema.TranscodeResponse](),
	)
	s.mcpServer.AddTool(decodeTool, mcp.NewStructuredToolHandler(s.handleDecode))

	complementTool := mcp.NewTool("complement_dna",
		mcp.WithDescription("Return the Watson-Crick complement of a DNA sequence."),
		mcp.WithString("sequence", mcp.Required(), mcp.Description("DNA sequence")),
		mcp.WithOutputSchema[ComplementResult](),
	)
	s.mcpServer.AddTool(complementTool, mcp.NewStructuredToolHandler(s.handleComplement))
}

func (s *Server) handleEncode(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (schema.TranscodeResponse, error) {
	text, _ := args["text"].(string)
	return s.transcode(ctx, domain.ModeEncode, text, args)
}

func (s *Server) handleDecode(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (schema.TranscodeResponse, error) {
	seq, _ := args["sequence"].(string)
	if err := schema.CheckDNA("sequence", seq); err != nil {
		return schema.TranscodeResponse{}, err
	}
	return s.transcode(ctx, domain.ModeDecode, seq, args)
}

func (s *Server) handleComplement(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ComplementResult, error) {
	seq, _ := args["sequence"].(string)
	clean, err := runner.SanitizeInputLimit(seq, s.maxInputSize)
	if err != nil {
		slog.Warn("MCP complement: input rejected", "error", err, "size", len(seq))
		return ComplementResult{}, fmt.Errorf("input rejected: %w", err)
	}
	comp, err := s.engine.Complement(ctx, clean)
	if err != nil {
		return ComplementResult{}, fmt.Errorf("complement failed: %w", err)
	}
	return ComplementResult{Sequence: codec.Canonicalize(clean), Complement: comp}, nil
}

func (s *Server) transcode(ctx context.Context, mode domain.Mode, payload string, args map[string]interface{}) (schema.TranscodeResponse, error) {
	clean, err := runner.SanitizeInputLimit(payload, s.maxInputSize)
	if err != nil {
		slog.Warn("MCP transcode: input rejected", "mode", mode, "error", err, "size", len(payload))
		return schema.TranscodeResponse{}, fmt.Errorf("input rejected: %w", err)
	}

	res, err := s.engine.Transcode(ctx, mode, clean)
	if err != nil {
		return schema.TranscodeResponse{}, fmt.Errorf("%s failed: %w", mode, err)
	}

	var opts []schema.ViewOption
	if group, _ := args["group"].(bool); group {
		opts = append(opts, schema.WithGroupedBinary())
	}
	return schema.FromResult(res, opts...), nil
}
