package openai

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"idea-feasibility-backend/internal/llm"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildPrompt creates the system and user messages for an idea.
func BuildPrompt(idea string) []Message {
	return []Message{
		{Role: "system", Content: llm.SystemPrompt},
		{Role: "user", Content: llm.BuildUserPrompt(idea)},
	}
}

// PromptHash identifies a prompt in logs without logging the idea text.
func PromptHash(messages []Message) string {
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
