package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print today's quiz as JSON (generating it if needed)",
	Long: `Fetch or generate today's question set and print it to stdout.

This is a developer tool for evaluating question quality. It uses the same
daily cache as play, so previewing does not burn extra LLM calls — and a
previewed quiz is the one players get.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, pipeline, err := buildPipeline(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		regen, _ := cmd.Flags().GetBool("regenerate")

		key := pipeline.TodayKey()
		produce := pipeline.QuizFor
		if regen {
			produce = pipeline.Regenerate
		}
		quiz, err := produce(cmd.Context(), key)
		if err != nil {
			return fmt.Errorf("produce quiz: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Quiz for %s (%s), model %s\n", key.Team, key.Day, quiz.Model)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(quiz.Questions)
	},
}

func init() {
	previewCmd.Flags().Bool("regenerate", false, "Discard today's cached quiz and generate a fresh one")
}
