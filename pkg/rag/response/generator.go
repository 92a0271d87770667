package response

import (
	"context"
	"log"
	"strings"

	"chattyg-be/internal/constant"
	"chattyg-be/pkg/aierr"
	"chattyg-be/pkg/llm"
)

// Generator turns a question plus retrieved context into the assistant reply
type Generator struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

// NewGenerator creates a new response generator
func NewGenerator(llmProvider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Respond asks the model for an answer grounded on the supplied context.
// An empty context still produces a conversational reply; the persona
// prompt tells the model to say when nothing relevant was found.
func (g *Generator) Respond(ctx context.Context, question string, contextBlock string) (string, error) {
	systemPrompt := constant.AssistantPersonaPrompt
	if contextBlock != "" {
		systemPrompt = systemPrompt + "\n\n" + contextBlock
	}

	history := []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: question},
	}

	answer, err := g.llmProvider.Chat(ctx, history)
	if err != nil {
		if _, ok := aierr.KindOf(err); ok {
			return "", err
		}
		return "", aierr.Wrap(aierr.KindGenerationFailed, "chat completion failed", err)
	}

	if strings.TrimSpace(answer) == "" {
		g.logger.Printf("[WARN] Model returned empty completion, using fallback reply")
		return constant.AssistantEmptyReply, nil
	}

	return answer, nil
}
