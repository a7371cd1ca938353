package generate

import (
	"context"
	"strings"
	"time"

	"github.com/malakstore/souq/internal/types"
)

type MockGenerator struct {
	model string
}

func NewMockGenerator(model string) *MockGenerator {
	return &MockGenerator{model: model}
}

func (g *MockGenerator) Complete(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	// Simulate API delay
	time.Sleep(200 * time.Millisecond)

	// The assistant asks for JSON when it is running the chat flow.
	if val, ok := opts["json"].(bool); ok && val {
		return g.generateChatReply(prompt), nil
	}

	return g.generateDescription(prompt), nil
}

func (g *MockGenerator) Model() string {
	return g.model + "-mock"
}

func (g *MockGenerator) generateChatReply(prompt string) string {
	// Echo back the first product id found in the context block so
	// handler tests can assert the suggestion path end to end.
	lower := strings.ToLower(prompt)
	if idx := strings.Index(lower, `id: "`); idx >= 0 {
		rest := prompt[idx+len(`id: "`):]
		if end := strings.Index(rest, `"`); end > 0 {
			return `{"text": "We have just the thing for you in stock today!", "productId": "` + rest[:end] + `"}`
		}
	}
	return `{"text": "Happy to help! Ask me about anything on our shelves.", "productId": null}`
}

func (g *MockGenerator) generateDescription(prompt string) string {
	lower := strings.ToLower(prompt)

	switch {
	case strings.Contains(lower, "fruits"), strings.Contains(lower, "veg"):
		return "Farm-fresh and full of flavor, picked at peak ripeness just for you."
	case strings.Contains(lower, "meat"):
		return "Premium quality cuts, sourced locally and prepared daily."
	case strings.Contains(lower, "cake"), strings.Contains(lower, "biscuit"):
		return "A sweet treat baked to perfection. One bite is never enough!"
	case strings.Contains(lower, "clean"):
		return "Tough on grime, gentle on your home. Sparkling results every time."
	default:
		return "A customer favorite, now available at a great price."
	}
}

// Compile-time interface check
var _ types.Generator = (*MockGenerator)(nil)
