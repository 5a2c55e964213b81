// Package tools defines the request and response schemas of the
// dragonsumm MCP tools.
package tools

const (
	// ToolSummarize is the name of the summarize MCP tool
	ToolSummarize = "summarize"

	// ToolNormalize is the name of the normalize MCP tool
	ToolNormalize = "normalize"

	// ToolSummarizerHealth is the name of the summarizer_health MCP tool
	ToolSummarizerHealth = "summarizer_health"

	// DefaultLevel is the compression level used when a summarize request
	// does not name one
	DefaultLevel = "strong"

	// StatusSuccess and StatusError are the values of every response Status.
	StatusSuccess = "success"
	StatusError   = "error"
)

// SummarizeRequest defines the input schema for the summarize tool
type SummarizeRequest struct {
	// Text is the document to summarize
	Text string `json:"text"`

	// Level is "strong" or "weak". Empty means DefaultLevel.
	Level string `json:"level,omitempty"`

	// SentenceCount overrides the level's summary length when positive
	SentenceCount int `json:"sentence_count,omitempty"`
}

// SummarizeResponse defines the output schema for the summarize tool
type SummarizeResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Summary is the selected sentences in reading order
	Summary string `json:"summary"`

	// SentenceCount is the number of sentences in Summary
	SentenceCount int `json:"sentence_count"`

	// Converged is false when ranking stopped at the iteration bound
	Converged bool `json:"converged"`

	// Iterations is the number of power iterations performed
	Iterations int `json:"iterations"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`

	// ErrorCode categorizes Error, such as VALIDATION_ERROR
	ErrorCode string `json:"error_code,omitempty"`
}

// NormalizeRequest defines the input schema for the normalize tool
type NormalizeRequest struct {
	// Text is the text to normalize
	Text string `json:"text"`
}

// NormalizeResponse defines the output schema for the normalize tool
type NormalizeResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Text is the normalized text
	Text string `json:"text"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`

	// ErrorCode categorizes Error, such as VALIDATION_ERROR
	ErrorCode string `json:"error_code,omitempty"`
}

// HealthRequest defines the input schema for the summarizer_health tool.
// It takes no arguments.
type HealthRequest struct{}

// HealthResponse defines the output schema for the summarizer_health tool
type HealthResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Report is the JSON health report of the summarizer
	Report string `json:"report"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`

	// ErrorCode categorizes Error, such as VALIDATION_ERROR
	ErrorCode string `json:"error_code,omitempty"`
}
