// Package assistant wraps the text-generation collaborator behind the two
// capabilities the store needs: product descriptions and catalog-aware
// chat. Every failure of the collaborator degrades to a canned fallback;
// nothing here ever returns a hard error to the caller.
package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/types"
)

const (
	// FallbackDescription is used when the collaborator is unreachable or
	// replies with something unusable.
	FallbackDescription = "A high-quality product, available now at our store."

	// FallbackChatReply is the apology shown when the chat call fails.
	FallbackChatReply = "Sorry, the smart assistant ran into a problem. Please try again later."
)

// ChatReply is the structured answer of the store chat: a message plus an
// optional catalog reference.
type ChatReply struct {
	Text      string `json:"text"`
	ProductID string `json:"productId,omitempty"`
}

type Assistant struct {
	generator types.Generator
}

func New(generator types.Generator) *Assistant {
	return &Assistant{generator: generator}
}

// Describe generates a short marketing description for a product. On any
// failure it returns the fallback text; description generation is never
// allowed to block a catalog edit.
func (a *Assistant) Describe(ctx context.Context, name string, category models.ProductCategory) string {
	text, err := a.generator.Complete(ctx, buildDescriptionPrompt(name, category), map[string]any{
		"system":     descriptionSystem,
		"max_tokens": 120,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		return FallbackDescription
	}
	return strings.TrimSpace(text)
}

// Chat answers a free-text customer query against the current catalog. The
// collaborator is asked for strict JSON; replies wrapped in code fences are
// tolerated. Any failure yields the canned apology.
func (a *Assistant) Chat(ctx context.Context, query string, products []models.Product) ChatReply {
	raw, err := a.generator.Complete(ctx, buildChatPrompt(query, products), map[string]any{
		"system":     chatSystem,
		"json":       true,
		"max_tokens": 512,
	})
	if err != nil {
		return ChatReply{Text: FallbackChatReply}
	}

	var reply ChatReply
	if err := json.Unmarshal([]byte(stripFences(raw)), &reply); err != nil || reply.Text == "" {
		return ChatReply{Text: FallbackChatReply}
	}

	// Drop dangling references to products the model invented.
	if reply.ProductID != "" {
		found := false
		for _, p := range products {
			if p.ID == reply.ProductID {
				found = true
				break
			}
		}
		if !found {
			reply.ProductID = ""
		}
	}
	return reply
}

// stripFences unwraps ```json ... ``` style blocks some models emit even
// when asked for raw JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
