package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/super32/internal/assemble"
	"github.com/lookbusy1344/super32/internal/config"
	"github.com/lookbusy1344/super32/internal/format"
)

func newAssembleCmd(cfg *config.Config) *cobra.Command {
	var (
		output string
		mode   string
		arch   string
	)

	cmd := &cobra.Command{
		Use:   "assemble <source.s32>",
		Short: "Assemble a source file into a .m32 memory image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadISA()
			if err != nil {
				return err
			}

			source, err := os.ReadFile(args[0]) // #nosec G304 -- user-supplied CLI argument
			if err != nil {
				return fmt.Errorf("failed to read source: %w", err)
			}

			encMode, err := parseArchMode(arch)
			if err != nil {
				return err
			}

			prog, err := assemble.Assemble(set, args[0], string(source), encMode)
			if err != nil {
				return err
			}

			outMode, err := format.ParseMode(mode)
			if err != nil {
				return err
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

			return format.Write(out, prog.Image, outMode)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: stdout)")
	cmd.Flags().StringVar(&mode, "format", cfg.Output.Mode, "output layout: lines or stream")
	cmd.Flags().StringVar(&arch, "arch", cfg.Output.Architecture, "architecture mode: single or multi")

	return cmd
}
