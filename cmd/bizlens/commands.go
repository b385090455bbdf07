package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bizlens/internal/extractor"
	"bizlens/internal/leadscore"
	"bizlens/internal/summarizer"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bizlens",
		Short: "Heuristic analytics for business text",
		Long: `bizlens runs the analyses served by the bizlens API without a server.

Each command reads text from the file given as its argument, or from stdin
when no file is given, and prints the result as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSummarizeCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newLeadCmd())
	return root
}

func newSummarizeCmd() *cobra.Command {
	var maxSentences int
	var explain bool

	cmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Pick the most informative sentences",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if explain {
				ranked := summarizer.Rank(text)
				if ranked == nil {
					ranked = []summarizer.ScoredSentence{}
				}
				return writeJSON(cmd.OutOrStdout(), ranked)
			}
			return writeJSON(cmd.OutOrStdout(), summarizer.Summarize(text, maxSentences))
		},
	}

	cmd.Flags().IntVarP(&maxSentences, "max", "n", summarizer.DefaultMaxSentences, "Maximum number of sentences")
	cmd.Flags().BoolVar(&explain, "explain", false, "Print every sentence with its score in rank order")
	return cmd
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract invoice number, date, total and vendor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), extractor.ExtractInvoiceFields(text))
		},
	}
}

func newLeadCmd() *cobra.Command {
	var company string

	cmd := &cobra.Command{
		Use:   "lead [file]",
		Short: "Score sales notes for buying signals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), leadscore.Score(company, notes))
		},
	}

	cmd.Flags().StringVarP(&company, "company", "c", "", "Company name")
	return cmd
}

// readInput returns the contents of the file argument, or stdin without one.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
