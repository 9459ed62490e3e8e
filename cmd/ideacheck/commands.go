package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"idea-feasibility-backend/internal/analyses"
	"idea-feasibility-backend/internal/bootstrap"
	"idea-feasibility-backend/internal/classifier"
	"idea-feasibility-backend/internal/llm/openai"
	"idea-feasibility-backend/internal/shared/config"
	"idea-feasibility-backend/internal/shared/telemetry"
)

type rootOptions struct {
	EnvFile string
	Timeout time.Duration
	Verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "ideacheck",
		Short: "Feasibility reports for app ideas",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// stdout carries only command output so it can be piped.
			if opts.Verbose {
				telemetry.SetOutput(cmd.ErrOrStderr())
			} else {
				telemetry.SetOutput(io.Discard)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file read before the environment")
	pf.DurationVar(&opts.Timeout, "timeout", 2*time.Minute, "remote analysis timeout")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "write structured logs to stderr")

	cmd.AddCommand(
		newClassifyCmd(),
		newAnalyzeCmd(opts),
		newPromptCmd(),
		newCategoriesCmd(),
	)
	return cmd
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <idea>",
		Short: "Build a report with the offline classifier",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idea, err := ideaFromArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "category: %s\n", classifier.Detect(idea))
			return writeJSON(cmd.OutOrStdout(), classifier.Classify(idea))
		},
	}
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "analyze <idea>",
		Short: "Ask the remote analyzer, falling back to the classifier",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idea, err := ideaFromArgs(args)
			if err != nil {
				return err
			}
			cfg := config.LoadFile(opts.EnvFile)
			svc := &analyses.Service{LLM: bootstrap.NewLLMClient(cfg)}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
			defer cancel()

			var a analyses.Analysis
			if strict {
				if a, err = svc.AnalyzeRemote(ctx, idea); err != nil {
					return err
				}
			} else {
				a = svc.Analyze(ctx, idea)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "source: %s\n", a.Source)
			if a.FallbackReason != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "fallback: %s\n", a.FallbackReason)
			}
			return writeJSON(cmd.OutOrStdout(), a.Report)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of falling back to the classifier")
	return cmd
}

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <idea>",
		Short: "Print the chat messages sent to the remote analyzer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idea, err := ideaFromArgs(args)
			if err != nil {
				return err
			}
			messages := openai.BuildPrompt(idea)
			fmt.Fprintf(cmd.ErrOrStderr(), "prompt_hash: %s\n", openai.PromptHash(messages))
			return writeJSON(cmd.OutOrStdout(), messages)
		},
	}
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List classifier categories in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range classifier.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func ideaFromArgs(args []string) (string, error) {
	idea := strings.TrimSpace(strings.Join(args, " "))
	if idea == "" {
		return "", analyses.ErrIdeaRequired
	}
	return idea, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
