package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/super32/internal/assemble"
	"github.com/lookbusy1344/super32/internal/config"
)

func newDumpSymbolsCmd(cfg *config.Config) *cobra.Command {
	var arch string

	cmd := &cobra.Command{
		Use:   "dump-symbols <source.s32>",
		Short: "Assemble a source file and print its symbol table",
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

			names := make([]string, 0, len(prog.Symbols.All()))
			for name := range prog.Symbols.All() {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				sym, _ := prog.Symbols.Lookup(name)
				fmt.Fprintf(out, "%-24s 0x%08X\n", name, sym.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&arch, "arch", cfg.Output.Architecture, "architecture mode: single or multi")

	return cmd
}
