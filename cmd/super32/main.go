// Command super32 drives the two-pass assembler and single-cycle
// emulator described by the Super32 toolchain.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/super32/internal/config"
)

// Version information; overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var isaPath string

var driverLog = log.New(os.Stderr, "super32: ", 0)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		driverLog.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "super32",
		Short:   "Assembler and emulator for the Super32 instruction set",
		Version: fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date),
	}

	root.PersistentFlags().StringVar(&isaPath, "isa", "", "path to an instruction-set descriptor (TOML); default: the descriptor at the user config path if present, else the built-in table")

	cfg, err := config.Load()
	if err != nil {
		// Fall back to defaults rather than refusing to run; a malformed
		// config file shouldn't block assembly/emulation entirely.
		driverLog.Println("warning:", err)
		cfg = config.DefaultConfig()
	}

	root.AddCommand(newAssembleCmd(cfg))
	root.AddCommand(newRunCmd(cfg))
	root.AddCommand(newStepCmd())
	root.AddCommand(newDumpSymbolsCmd(cfg))
	root.AddCommand(newFormatCmd())

	return root
}
