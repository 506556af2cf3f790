package mcpadapter

import (
	"context"

	"github.com/avasilev/estate-doc-agent/internal/classifier"
	"github.com/avasilev/estate-doc-agent/internal/models"
	"github.com/avasilev/estate-doc-agent/internal/pipeline"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ProcessInput is the MCP tool input schema (matches HTTP API field names).
type ProcessInput struct {
	DocumentID string `json:"document_id,omitempty" jsonschema:"document identifier, defaults to unknown"`
	Content    string `json:"content" jsonschema:"plain text content of the document"`
}

// NewProcessHandler returns a tool handler running the whole pipeline.
// Pass the returned function to mcp.AddTool.
func NewProcessHandler(pipe *pipeline.Pipeline) func(context.Context, *mcp.CallToolRequest, ProcessInput) (*mcp.CallToolResult, models.ProcessingResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ProcessInput) (*mcp.CallToolResult, models.ProcessingResult, error) {
		result := pipe.Process(models.Document{
			DocumentID: input.DocumentID,
			Content:    input.Content,
		})
		return nil, result, nil
	}
}

// NewClassifyHandler returns a tool handler that classifies without running
// compliance validation. Faster than the full pipeline.
func NewClassifyHandler(cls *classifier.Classifier) func(context.Context, *mcp.CallToolRequest, ProcessInput) (*mcp.CallToolResult, models.ClassificationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ProcessInput) (*mcp.CallToolResult, models.ClassificationResult, error) {
		result := cls.Classify(models.Document{
			DocumentID: input.DocumentID,
			Content:    input.Content,
		})
		return nil, result, nil
	}
}
