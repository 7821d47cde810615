package tools

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownTool     = errors.New("unknown tool")
	ErrUnknownResource = errors.New("unknown resource")
)

// UnknownToolError is raised, not enveloped, when no operation has the
// requested name. Suggestions are informational only.
type UnknownToolError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownToolError) Error() string {
	msg := fmt.Sprintf("unknown tool: %s", e.Name)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

func (e *UnknownToolError) Unwrap() error { return ErrUnknownTool }

type UnknownResourceError struct {
	URI string
}

func (e *UnknownResourceError) Error() string {
	return "unknown resource: " + e.URI
}

func (e *UnknownResourceError) Unwrap() error { return ErrUnknownResource }
