package parse

import "context"

// Completer produces a JSON-shaped completion for a system+user prompt.
type Completer interface {
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}
