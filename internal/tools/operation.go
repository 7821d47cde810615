package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/golovatskygroup/repsona-mcp/internal/repsona"
)

// Operation is one invocable tool. The gateway derives its listing, its
// dispatch lookup, schema checks and categories from a single slice of
// these.
type Operation struct {
	Name        string
	Description string
	Category    string
	Schema      json.RawMessage

	// Routing lists the argument keys that end up in the request path or
	// query. They are removed from Input.Payload.
	Routing []string

	Mutates     bool
	Destructive bool

	Call func(ctx context.Context, c *repsona.Client, in Input) (any, error)

	// Confirm builds the line that prefixes the result of a mutation.
	Confirm func(in Input) string
	// Quiet replaces the JSON result with the Confirm line alone.
	Quiet bool
}

// Input is the argument record of one invocation, split into routing
// values and the payload forwarded as the request body.
type Input struct {
	Args    repsona.Body
	Payload repsona.Body
	route   map[string]string
}

func newInput(args map[string]any, routing []string) Input {
	in := Input{
		Args:    args,
		Payload: make(repsona.Body, len(args)),
		route:   make(map[string]string, len(routing)),
	}
	for k, v := range args {
		in.Payload[k] = v
	}
	for _, k := range routing {
		in.route[k] = routeValue(in.Args[k])
		delete(in.Payload, k)
	}
	return in
}

// Route returns a routing argument as text, or "" when it was not given.
func (in Input) Route(key string) string {
	return in.route[key]
}

// Field returns one payload argument as-is.
func (in Input) Field(key string) any {
	return in.Payload[key]
}

// Decode converts the payload into a typed value such as a query filter.
func (in Input) Decode(v any) error {
	b, err := json.Marshal(in.Payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// routeValue renders an identifier for a URL. Agents send ids as strings
// or numbers interchangeably.
func routeValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	}
	return fmt.Sprint(v)
}
