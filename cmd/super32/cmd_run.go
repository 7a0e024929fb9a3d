package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/super32/internal/config"
	"github.com/lookbusy1344/super32/internal/vm"
)

func newRunCmd(cfg *config.Config) *cobra.Command {
	var arch string
	var maxCycles uint64
	var trace bool

	cmd := &cobra.Command{
		Use:   "run <source.s32>",
		Short: "Assemble and run a source file to completion",
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

			machine := vm.New(set)
			if err := machine.Load(args[0], string(source), encMode); err != nil {
				return err
			}

			machine.SetMaxSteps(maxCycles)
			if trace {
				tracePath := filepath.Join(config.GetLogPath(), "trace.log")
				f, err := os.Create(tracePath) // #nosec G304 -- fixed name under the resolved log directory
				if err != nil {
					return fmt.Errorf("failed to open trace log: %w", err)
				}
				defer f.Close()

				machine.SetTrace(vm.NewTrace(f))
				fmt.Fprintf(cmd.ErrOrStderr(), "tracing to %s\n", tracePath)
			}

			if err := machine.Run(); err != nil {
				return err
			}

			printState(cmd, machine)
			return nil
		},
	}

	cmd.Flags().StringVar(&arch, "arch", cfg.Output.Architecture, "architecture mode: single or multi")
	cmd.Flags().Uint64Var(&maxCycles, "max-cycles", cfg.Execution.MaxSteps, "abort after this many instructions (0 = unbounded)")
	cmd.Flags().BoolVar(&trace, "trace", cfg.Execution.EnableTrace, "write a per-instruction trace to a log file under GetLogPath()")

	return cmd
}

func printState(cmd *cobra.Command, machine *vm.VM) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "state: %s\n", machine.State())
	fmt.Fprintf(out, "i: %d  PC: 0x%08X  Z: %v\n", machine.Index(), machine.CPU.PC, machine.CPU.Z)
	for r := 0; r < 32; r++ {
		fmt.Fprintf(out, "R%-2d = 0x%08X\n", r, machine.CPU.R[r])
	}
}
