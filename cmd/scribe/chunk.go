package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nguyentantai21042004/meeting-scribe/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-scribe/internal/transcript"
	"github.com/spf13/cobra"
)

func newChunkCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "chunk <raw_file> <run_id>",
		Short: "Split a raw transcript into staged chunks for cleaning",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath, false)
			if err != nil {
				return err
			}
			defer a.close()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read transcript: %w: %v", transcript.ErrInput, err)
			}

			res, err := a.pipeline.Stage(cmd.Context(), args[1], string(data))
			if err != nil {
				return err
			}
			return printChunkReport(cmd.OutOrStdout(), res)
		},
	}
}

// printChunkReport writes the lines an external agent parses to find the chunks.
func printChunkReport(w io.Writer, res *pipeline.Result) error {
	if _, err := fmt.Fprintf(w, "CHUNK_COUNT=%d\n", len(res.Chunks)); err != nil {
		return err
	}
	for _, c := range res.Chunks {
		if _, err := fmt.Fprintf(w, "CHUNK_FILE=%s\n", c.Handle); err != nil {
			return err
		}
	}
	return nil
}
