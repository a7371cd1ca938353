package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/malakstore/souq/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator returns a fixed completion or error.
type stubGenerator struct {
	reply string
	err   error

	lastPrompt string
	lastOpts   map[string]any
}

func (g *stubGenerator) Complete(_ context.Context, prompt string, opts map[string]any) (string, error) {
	g.lastPrompt = prompt
	g.lastOpts = opts
	return g.reply, g.err
}

func (g *stubGenerator) Model() string { return "stub" }

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Fresh Apples", Category: models.CategoryFruitsVeg, Price: 8.5},
		{ID: "p2", Name: "Orange Juice", Category: models.CategoryJuices, Price: 12, Discount: 10},
	}
}

func TestDescribe(t *testing.T) {
	gen := &stubGenerator{reply: "  Crisp apples, picked this morning! 🍎 "}
	a := New(gen)

	got := a.Describe(context.Background(), "Fresh Apples", models.CategoryFruitsVeg)
	assert.Equal(t, "Crisp apples, picked this morning! 🍎", got)
	assert.Contains(t, gen.lastPrompt, "Fresh Apples")
	assert.Contains(t, gen.lastPrompt, "FRUITS_VEG")
}

func TestDescribeFallsBack(t *testing.T) {
	a := New(&stubGenerator{err: errors.New("upstream down")})
	got := a.Describe(context.Background(), "Fresh Apples", models.CategoryFruitsVeg)
	assert.Equal(t, FallbackDescription, got)

	a = New(&stubGenerator{reply: "   "})
	got = a.Describe(context.Background(), "Fresh Apples", models.CategoryFruitsVeg)
	assert.Equal(t, FallbackDescription, got)
}

func TestChatParsesStructuredReply(t *testing.T) {
	gen := &stubGenerator{reply: `{"text": "We have fresh apples for 8.50!", "productId": "p1"}`}
	a := New(gen)

	reply := a.Chat(context.Background(), "do you have apples?", catalogFixture())
	assert.Equal(t, "We have fresh apples for 8.50!", reply.Text)
	assert.Equal(t, "p1", reply.ProductID)

	// The prompt must carry the catalog context and request JSON output.
	assert.Contains(t, gen.lastPrompt, `"p2"`)
	require.NotNil(t, gen.lastOpts)
	assert.Equal(t, true, gen.lastOpts["json"])
}

func TestChatToleratesCodeFences(t *testing.T) {
	a := New(&stubGenerator{reply: "```json\n{\"text\": \"Sure!\", \"productId\": \"p2\"}\n```"})

	reply := a.Chat(context.Background(), "any juice offers?", catalogFixture())
	assert.Equal(t, "Sure!", reply.Text)
	assert.Equal(t, "p2", reply.ProductID)
}

func TestChatDropsInventedProductID(t *testing.T) {
	a := New(&stubGenerator{reply: `{"text": "Try this!", "productId": "made-up"}`})

	reply := a.Chat(context.Background(), "anything nice?", catalogFixture())
	assert.Equal(t, "Try this!", reply.Text)
	assert.Empty(t, reply.ProductID)
}

func TestChatFallsBack(t *testing.T) {
	for name, gen := range map[string]*stubGenerator{
		"generator error": {err: errors.New("timeout")},
		"malformed json":  {reply: "I think you should buy apples"},
		"empty text":      {reply: `{"text": "", "productId": "p1"}`},
	} {
		t.Run(name, func(t *testing.T) {
			reply := New(gen).Chat(context.Background(), "hello", catalogFixture())
			assert.Equal(t, FallbackChatReply, reply.Text)
			assert.Empty(t, reply.ProductID)
		})
	}
}
