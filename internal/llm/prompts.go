package llm

import (
	_ "embed"
	"encoding/json"
	"strings"

	"idea-feasibility-backend/internal/report"
)

// SystemPrompt is the fixed instruction sent ahead of every idea.
const SystemPrompt = "You are an expert startup advisor. Given an app idea, return a structured feasibility analysis as JSON."

//go:embed prompts/idea_v1.txt
var ideaPromptV1 string

// ShapeJSON is the empty-valued report the provider is asked to fill in.
func ShapeJSON() string {
	raw, err := json.Marshal(report.ShapeExample())
	if err != nil {
		panic(err)
	}
	return string(raw)
}

// BuildUserPrompt embeds the idea and the report shape into the user message.
func BuildUserPrompt(idea string) string {
	replacer := strings.NewReplacer(
		"{{IDEA}}", idea,
		"{{SHAPE}}", ShapeJSON(),
	)
	return strings.TrimRight(replacer.Replace(ideaPromptV1), "\n")
}
