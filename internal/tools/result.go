package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func textResult(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}

func errorResult(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + msg)
}

func prettyJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func jsonResult(v any) *mcp.CallToolResult {
	s, err := prettyJSON(v)
	if err != nil {
		return errorResult(err.Error())
	}
	return textResult(s)
}

// confirmedResult prefixes the JSON result with a confirmation line.
func confirmedResult(confirm string, v any) *mcp.CallToolResult {
	s, err := prettyJSON(v)
	if err != nil {
		return errorResult(err.Error())
	}
	return textResult(confirm + ":\n" + s)
}
