package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/super32/internal/vm"
)

func newStepCmd() *cobra.Command {
	var (
		arch        string
		steps       int
		breakpoints []int
	)

	cmd := &cobra.Command{
		Use:   "step <source.s32>",
		Short: "Assemble a source file and single-step it",
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

			for _, line := range breakpoints {
				machine.Breakpoints.Add(line)
			}

			if len(breakpoints) > 0 {
				if err := machine.Run(); err != nil {
					return err
				}
			} else {
				for n := 0; n < steps; n++ {
					if err := machine.Step(); err != nil {
						return err
					}
					if machine.State() == vm.StateHalted {
						break
					}
				}
			}

			printState(cmd, machine)
			return nil
		},
	}

	cmd.Flags().StringVar(&arch, "arch", "single", "architecture mode: single or multi")
	cmd.Flags().IntVar(&steps, "steps", 1, "number of instructions to execute")
	cmd.Flags().IntSliceVarP(&breakpoints, "breakpoint", "b", nil, "editor line to break at (repeatable); when set, runs to the first breakpoint or halt instead of stepping")

	return cmd
}
