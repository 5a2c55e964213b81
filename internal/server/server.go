package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/localrivet/dragonsumm/internal/errortypes"
	"github.com/localrivet/dragonsumm/internal/preprocess"
	"github.com/localrivet/dragonsumm/internal/tools"
	"github.com/localrivet/dragonsumm/internal/util"
	"github.com/localrivet/gomcp/server"
)

// Common server error types
var (
	ErrServerNotInitialized = errors.New("server not initialized")
	ErrMissingDependencies  = errors.New("one or more required dependencies are nil")
)

// MCPSummaryToolServer implements the SummaryToolServer interface
// for handling MCP tool calls that summarize and normalize text.
type MCPSummaryToolServer struct {
	summarizer LevelSummarizer
	mcpServer  server.Server
}

// NewSummaryToolServer creates a new MCPSummaryToolServer instance.
func NewSummaryToolServer(summarizer LevelSummarizer) *MCPSummaryToolServer {
	return &MCPSummaryToolServer{
		summarizer: summarizer,
	}
}

// Initialize initializes the server with dependencies and configurations.
func (s *MCPSummaryToolServer) Initialize() error {
	slog.Info("Initializing MCP Summary Tool Server")

	if s.summarizer == nil {
		return errortypes.ConfigError(ErrMissingDependencies, "server initialization failed")
	}

	// Create the MCP server
	srv := server.NewServer("dragonsumm")

	// Register summarize tool
	srv = srv.Tool(tools.ToolSummarize, "Extract the most central sentences of a text, at the strong or weak compression level",
		s.handleSummarize)

	// Register normalize tool
	srv = srv.Tool(tools.ToolNormalize, "Replace semicolons and colons with periods before sentence splitting",
		s.handleNormalize)

	// Register summarizer_health tool
	srv = srv.Tool(tools.ToolSummarizerHealth, "Report summarizer health and usage metrics",
		s.handleHealth)

	s.mcpServer = srv
	slog.Info("MCP Summary Tool Server initialized successfully", "tool_count", 3)
	return nil
}

// Start starts the MCP server on the stdio transport.
func (s *MCPSummaryToolServer) Start() error {
	if s.mcpServer == nil {
		return errortypes.ConfigError(ErrServerNotInitialized, "cannot start server")
	}

	slog.Info("Starting MCP Summary Tool Server")

	// Start the server using stdio transport
	stdioServer := s.mcpServer.AsStdio()
	return stdioServer.Run()
}

// Stop gracefully shuts down the MCP server.
func (s *MCPSummaryToolServer) Stop() error {
	slog.Info("Stopping MCP Summary Tool Server")
	// The server will exit when stdin is closed
	return nil
}

// handleSummarize handles the summarize MCP tool call.
func (s *MCPSummaryToolServer) handleSummarize(ctx *server.Context, req tools.SummarizeRequest) (tools.SummarizeResponse, error) {
	docID := util.DocumentID(req.Text)
	level := req.Level
	if level == "" {
		level = tools.DefaultLevel
	}
	slog.Info("Processing summarize request",
		"doc_id", docID,
		"text_length", len(req.Text),
		"level", level,
		"sentence_count", req.SentenceCount)

	response := tools.SummarizeResponse{
		Status: tools.StatusSuccess,
	}

	if req.SentenceCount < 0 {
		err := errortypes.ValidationError(errors.New("sentence_count cannot be negative"), "invalid summarize request").
			WithField("sentence_count", req.SentenceCount)
		response.Status = tools.StatusError
		response.Error, response.ErrorCode = toolError(err)
		return response, nil
	}

	result, err := s.summarizer.SummarizeLevel(context.Background(), req.Text, level, req.SentenceCount)
	if err != nil {
		var appErr *errortypes.AppError
		if errors.As(err, &appErr) {
			appErr.WithField("doc_id", docID)
		} else {
			err = errortypes.InternalError(err, "failed to summarize text").
				WithField("doc_id", docID)
		}

		response.Status = tools.StatusError
		response.Error, response.ErrorCode = toolError(err)
		return response, nil
	}

	response.Summary = result.Summary
	response.SentenceCount = result.SentenceCount
	response.Converged = result.Converged
	response.Iterations = result.Iterations
	slog.Info("Successfully summarized text",
		"doc_id", docID,
		"sentences", result.TotalSentences,
		"selected", result.SentenceCount,
		"converged", result.Converged)

	return response, nil
}

// handleNormalize handles the normalize MCP tool call.
func (s *MCPSummaryToolServer) handleNormalize(ctx *server.Context, req tools.NormalizeRequest) (tools.NormalizeResponse, error) {
	slog.Debug("Processing normalize request", "text_length", len(req.Text))

	return tools.NormalizeResponse{
		Status: tools.StatusSuccess,
		Text:   preprocess.Normalize(req.Text),
	}, nil
}

// handleHealth handles the summarizer_health MCP tool call.
func (s *MCPSummaryToolServer) handleHealth(ctx *server.Context, req tools.HealthRequest) (tools.HealthResponse, error) {
	slog.Debug("Processing summarizer_health request")

	response := tools.HealthResponse{
		Status: tools.StatusSuccess,
	}

	report, err := s.summarizer.HealthReportJSON()
	if err != nil {
		err = errortypes.InternalError(err, "failed to create health report")
		response.Status = tools.StatusError
		response.Error, response.ErrorCode = toolError(err)
		return response, nil
	}

	response.Report = report
	return response, nil
}
