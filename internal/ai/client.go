// ABOUTME: AI provider abstraction over OpenAI and Gemini chat models.
// ABOUTME: Both providers share a system role tuned for health assistance.
package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

const systemPrompt = "You are a health assistant. Provide practical advice and meal suggestions. Be friendly and informative."

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultGeminiModel = "gemini-1.5-flash"
)

// Provider sends a prompt to an AI backend and returns the text reply.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// NewProvider builds the configured provider. API keys come from the
// environment: OPENAI_API_KEY or GEMINI_API_KEY.
func NewProvider(ctx context.Context, name, model string) (Provider, error) {
	switch strings.ToLower(name) {
	case "", "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		if model == "" {
			model = defaultOpenAIModel
		}
		return &openAIProvider{client: openai.NewClient(key), model: model}, nil
	case "gemini":
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, option.WithAPIKey(key))
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		if model == "" {
			model = defaultGeminiModel
		}
		return &geminiProvider{client: client, model: model}, nil
	}
	return nil, fmt.Errorf("unknown AI provider %q", name)
}

type openAIProvider struct {
	client *openai.Client
	model  string
}

func (p *openAIProvider) Name() string { return "openai" }

func (p *openAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	model := p.client.GenerativeModel(p.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini completion: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini completion: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini completion: no text parts")
	}
	return sb.String(), nil
}
