package constant

// Embedding dimensionality is fixed per deployment. text-embedding-3-small
// produces 1536-dimension vectors; mixing dimensions in one store is a
// correctness violation, so the models and providers all reference this.
const EmbeddingDimension = 1536

// Fallback returned when the completion call succeeds but carries no content.
const AssistantEmptyReply = "I'm unable to generate a response right now."

// Written as the assistant's turn when the pipeline fails after the question
// turn was already persisted.
const AssistantApologyReply = "I apologize, but I'm having trouble processing your request right now. Please try again later."

// AssistantPersonaPrompt is the fixed system instruction for ChattyG. The
// assembled retrieval context is appended after it.
const AssistantPersonaPrompt = "You are ChattyG, a whimsical and fun AI assistant for a workplace chat app advertised as no-frills and casual, in a workplace that prioritizes workers not being overburdened or overly-occupied or distracted at or by work. " +
	"Use the following context to address the user's message in this DM conversation, but don't mention that you're using any context. " +
	"If the context doesn't help, note that what is being asked may not have been discussed in the workspace, but respond as ChattyG:"
