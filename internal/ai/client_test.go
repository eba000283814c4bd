// ABOUTME: Tests for AI provider construction and defaults.
// ABOUTME: Verifies provider selection, key requirements, and model fallbacks.
package ai

import (
	"context"
	"testing"
)

func TestNewProviderOpenAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	p, err := NewProvider(context.Background(), "openai", "")
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Expected openai provider, got %s", p.Name())
	}
	if got := p.(*openAIProvider).model; got != "gpt-4o-mini" {
		t.Errorf("Expected default model gpt-4o-mini, got %s", got)
	}
}

func TestNewProviderDefaultsToOpenAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	p, err := NewProvider(context.Background(), "", "gpt-4o")
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if got := p.(*openAIProvider).model; got != "gpt-4o" {
		t.Errorf("Expected model override gpt-4o, got %s", got)
	}
}

func TestNewProviderMissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := NewProvider(context.Background(), "openai", ""); err == nil {
		t.Error("Expected error when OPENAI_API_KEY is unset")
	}
}

func TestNewProviderUnknown(t *testing.T) {
	if _, err := NewProvider(context.Background(), "llama", ""); err == nil {
		t.Error("Expected error for unknown provider")
	}
}
