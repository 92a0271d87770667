package response

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"chattyg-be/internal/constant"
	"chattyg-be/pkg/aierr"
	"chattyg-be/pkg/llm"
)

type fakeLLM struct {
	reply   string
	err     error
	history []llm.Message
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.history = history
	return f.reply, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestRespondBuildsPromptFromContext(t *testing.T) {
	fake := &fakeLLM{reply: "the deploy is friday"}
	g := NewGenerator(fake, quietLogger())

	answer, err := g.Respond(context.Background(), "when is the deploy?", "deploy moved to friday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "the deploy is friday" {
		t.Errorf("answer = %q", answer)
	}

	if len(fake.history) != 2 {
		t.Fatalf("history length = %d, want 2", len(fake.history))
	}
	system := fake.history[0]
	if system.Role != "system" {
		t.Errorf("first message role = %q, want system", system.Role)
	}
	if !strings.HasPrefix(system.Content, constant.AssistantPersonaPrompt) {
		t.Errorf("system prompt does not start with the persona prompt")
	}
	if !strings.Contains(system.Content, "deploy moved to friday") {
		t.Errorf("system prompt does not carry the retrieval context")
	}
	if fake.history[1].Role != "user" || fake.history[1].Content != "when is the deploy?" {
		t.Errorf("user message = %+v", fake.history[1])
	}
}

func TestRespondWithoutContext(t *testing.T) {
	fake := &fakeLLM{reply: "nothing on that in the workspace, sorry!"}
	g := NewGenerator(fake, quietLogger())

	_, err := g.Respond(context.Background(), "what about the offsite?", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No trailing context block when retrieval came back empty
	if fake.history[0].Content != constant.AssistantPersonaPrompt {
		t.Errorf("system prompt should be the bare persona prompt, got %q", fake.history[0].Content)
	}
}

func TestRespondEmptyCompletionFallsBack(t *testing.T) {
	fake := &fakeLLM{reply: "   "}
	g := NewGenerator(fake, quietLogger())

	answer, err := g.Respond(context.Background(), "anything?", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != constant.AssistantEmptyReply {
		t.Errorf("answer = %q, want fallback reply", answer)
	}
}

func TestRespondWrapsProviderError(t *testing.T) {
	fake := &fakeLLM{err: errors.New("connection reset")}
	g := NewGenerator(fake, quietLogger())

	_, err := g.Respond(context.Background(), "q", "ctx")
	if err == nil {
		t.Fatal("expected error")
	}
	if !aierr.Is(err, aierr.KindGenerationFailed) {
		t.Errorf("error kind = %v, want GENERATION_FAILED", err)
	}
}

func TestRespondPreservesTypedProviderError(t *testing.T) {
	fake := &fakeLLM{err: aierr.New(aierr.KindRateLimited, "slow down")}
	g := NewGenerator(fake, quietLogger())

	_, err := g.Respond(context.Background(), "q", "ctx")
	if !aierr.Is(err, aierr.KindRateLimited) {
		t.Errorf("error kind = %v, want RATE_LIMITED", err)
	}
}
