package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/meeting-scribe/internal/exporter"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/spf13/cobra"
)

func newReassembleCommand(configPath *string) *cobra.Command {
	var fromFiles bool

	cmd := &cobra.Command{
		Use:   "reassemble <cleaned_file> <run_id> <output>...",
		Short: "Join cleaned chunk outputs into the final transcript",
		Long: "Outputs are given in chunk order, either as literal text or, with\n" +
			"--from-files, as paths to files holding each cleaned chunk.",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath, false)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			cleanedFile, runID, raw := args[0], args[1], args[2:]

			outputs := raw
			if fromFiles {
				outputs = readOutputs(ctx, a.log, raw)
			}

			res, err := a.pipeline.Reassemble(ctx, runID, len(outputs), indexOutputs(outputs))
			if err != nil {
				return err
			}
			if err := exporter.WriteText(cleanedFile, res.Text); err != nil {
				return fmt.Errorf("failed to save reassembled transcript: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OUTPUT: %s\n", cleanedFile)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromFiles, "from-files", false, "Treat outputs as paths to cleaned chunk files")
	return cmd
}

// readOutputs loads each file. An unreadable file yields an empty output,
// which reassembly reports as a missing chunk.
func readOutputs(ctx context.Context, log logger.Logger, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			log.Error(ctx, "Failed to read chunk %s: %v", p, err)
			continue
		}
		out[i] = string(data)
	}
	return out
}

func indexOutputs(outputs []string) map[int]string {
	m := make(map[int]string, len(outputs))
	for i, o := range outputs {
		m[i+1] = o
	}
	return m
}
