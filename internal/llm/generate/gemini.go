package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/malakstore/souq/internal/types"
)

type GeminiGenerator struct {
	apiKey string
	model  string
	client *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

func NewGeminiGenerator(model string, apiKeyEnv string, directAPIKey string) (*GeminiGenerator, error) {
	var apiKey string

	// First try direct API key from config
	if directAPIKey != "" {
		apiKey = directAPIKey
	} else if apiKeyEnv != "" {
		// Fallback to environment variable
		apiKey = os.Getenv(apiKeyEnv)
	}

	if apiKey == "" {
		return nil, fmt.Errorf("API key not found in config or environment variable %s", apiKeyEnv)
	}

	return &GeminiGenerator{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

func (g *GeminiGenerator) Complete(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	maxTokens := 1024
	if val, ok := opts["max_tokens"].(int); ok && val > 0 {
		maxTokens = val
	}

	genCfg := &geminiGenerationConfig{
		MaxOutputTokens: maxTokens,
	}
	if val, ok := opts["temperature"].(float64); ok {
		genCfg.Temperature = val
	}
	if val, ok := opts["json"].(bool); ok && val {
		genCfg.ResponseMimeType = "application/json"
	}

	req := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: genCfg,
	}

	if val, ok := opts["system"].(string); ok && val != "" {
		req.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: val}}}
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", g.model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var response geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	return response.Candidates[0].Content.Parts[0].Text, nil
}

func (g *GeminiGenerator) Model() string {
	return g.model
}

// Compile-time interface check
var _ types.Generator = (*GeminiGenerator)(nil)
