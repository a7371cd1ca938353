package assistant

import (
	"fmt"
	"strings"

	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/pricing"
)

const descriptionSystem = "You are a marketing copywriter for a neighborhood supermarket."

const chatSystem = "You are a friendly customer support assistant for a neighborhood supermarket."

// buildDescriptionPrompt asks for a short, sales-oriented product blurb.
func buildDescriptionPrompt(name string, category models.ProductCategory) string {
	return fmt.Sprintf(`Write a short, appealing marketing description for the following supermarket product.

Product name: %s
Section: %s

The description must encourage a purchase, stay under 30 words, and use at most one fitting emoji.
Reply with the description text only.`, name, category)
}

// buildChatPrompt embeds a lightweight product context so the model can
// ground its answer in the live catalog.
func buildChatPrompt(query string, products []models.Product) string {
	var ctx strings.Builder
	for _, p := range products {
		fmt.Fprintf(&ctx, "ID: %q, Name: %q, Price: %.2f, Discount: %.0f%%, Category: %q\n",
			p.ID, p.Name, pricing.ProductPrice(p), p.Discount, p.Category)
	}

	return fmt.Sprintf(`User query: %q

Available products:
%s
Instructions:
1. Answer the user politely.
2. If the user asks about a product present above, mention its price and any discount, and suggest it.
3. If the user asks for something not in the list, apologize politely.
4. Return a JSON object only.

Output schema:
{
  "text": "the response message",
  "productId": "the ID of a relevant product from the list, otherwise null"
}`, query, ctx.String())
}
