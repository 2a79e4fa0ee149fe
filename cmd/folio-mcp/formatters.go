package main

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/ternarybob/arbor"
)

// jsonResult serializes a tool result as indented JSON text content.
// Result shapes are stable JSON-tagged structs, so marshaling only fails
// on programmer error.
func jsonResult(v interface{}, logger arbor.ILogger) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to marshal tool result")
		return errorResult(fmt.Sprintf("Serialization error: %v", err)), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(data)),
		},
	}, nil
}

// errorResult builds a tool failure with a plain-text message
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
	}
}
