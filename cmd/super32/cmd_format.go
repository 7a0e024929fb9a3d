package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/super32/internal/format"
)

func newFormatCmd() *cobra.Command {
	var (
		output string
		from   string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "format <image.m32>",
		Short: "Convert an already-assembled image between lines and stream layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromMode, err := format.ParseMode(from)
			if err != nil {
				return err
			}
			toMode, err := format.ParseMode(to)
			if err != nil {
				return err
			}

			in, err := os.Open(args[0]) // #nosec G304 -- user-supplied CLI argument
			if err != nil {
				return fmt.Errorf("failed to open image: %w", err)
			}
			defer in.Close()

			image, err := format.Read(in, fromMode)
			if err != nil {
				return fmt.Errorf("failed to parse image: %w", err)
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output) // #nosec G304 -- user-supplied CLI argument
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			return format.Write(out, image, toMode)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: stdout)")
	cmd.Flags().StringVar(&from, "from", "lines", "input layout: lines or stream")
	cmd.Flags().StringVar(&to, "to", "stream", "output layout: lines or stream")

	return cmd
}
