package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/meeting-scribe/internal/transcript"
	"github.com/spf13/cobra"
)

func newRunCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run <raw_file>",
		Short: "Clean a transcript end to end with the configured cleaner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath, true)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read transcript: %w: %v", transcript.ErrInput, err)
			}

			name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			res, err := a.pipeline.Run(ctx, name, string(data))
			if err != nil {
				return err
			}

			paths, err := a.exporter.Export(ctx, name, &transcript.Document{Text: res.Text, TotalWords: res.WordsOut})
			if err != nil {
				return err
			}
			for _, w := range res.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "WARNING: %s\n", w)
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "OUTPUT: %s\n", p)
			}
			return nil
		},
	}
}
