// Package server provides the MCP server implementation for the dragonsumm service.
package server

import (
	"context"

	"github.com/localrivet/dragonsumm/internal/summarizer"
)

// SummaryToolServer defines the interface for the MCP server that handles
// summarization tool calls from MCP clients.
type SummaryToolServer interface {
	// Initialize initializes the server with dependencies and configurations.
	Initialize() error

	// Start starts the MCP server on the specified transport.
	Start() error

	// Stop gracefully shuts down the MCP server.
	Stop() error
}

// LevelSummarizer is the summarizer the tool server drives.
type LevelSummarizer interface {
	summarizer.Summarizer

	// SummarizeLevel summarizes text at the named compression level.
	SummarizeLevel(ctx context.Context, text, level string, count int) (*summarizer.Result, error)

	// HealthReportJSON returns the summarizer's health report as JSON.
	HealthReportJSON() (string, error)
}
