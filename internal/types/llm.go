package types

import "context"

// Generator produces text completions from prompts. It is the boundary to
// the external text-generation collaborator; callers must treat any error
// as non-fatal and fall back to a canned message.
type Generator interface {
	Complete(ctx context.Context, prompt string, opts map[string]any) (string, error)
	Model() string
}
