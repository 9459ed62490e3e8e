package main

// Analyze an idea from the shell:
//   go run ./cmd/ideacheck classify "A fitness app with social sharing"
//   go run ./cmd/ideacheck analyze --strict "A recipe sharing app"

import (
	"fmt"
	"os"

	"idea-feasibility-backend/internal/shared/telemetry"
)

func main() {
	defer telemetry.Sync()
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
