// Package isa holds the instruction-set configuration: the mnemonic
// tables and register names that the encoder and the emulator agree on.
// It is loaded once per toolchain invocation and treated as immutable.
package isa

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is the raw, TOML-decodable instruction-set descriptor.
type Config struct {
	Arithmetic map[string]uint32 `toml:"arithmetic"` // mnemonic -> 6-bit function code
	Storage    map[string]uint32 `toml:"storage"`     // mnemonic -> 6-bit opcode
	Branch     map[string]uint32 `toml:"branch"`      // mnemonic -> 6-bit opcode
	Registers  map[string]uint32 `toml:"registers"`   // R0..R31 -> 5-bit code
}

// DefaultConfig returns the stock Super32 instruction set.
func DefaultConfig() *Config {
	cfg := &Config{
		Arithmetic: map[string]uint32{
			"ADD":  0,
			"SUB":  1,
			"AND":  2,
			"OR":   3,
			"NOR":  4,
			"NAND": 5,
			"SHL":  6,
			"SLR":  7,
			"SAR":  8,
		},
		Storage: map[string]uint32{
			"LW": 1,
			"SW": 2,
			"LI": 3,
		},
		Branch: map[string]uint32{
			"BEQ": 4,
		},
		Registers: make(map[string]uint32, 32),
	}

	for i := 0; i < 32; i++ {
		cfg.Registers[fmt.Sprintf("R%d", i)] = uint32(i)
	}

	return cfg
}

// LoadConfigFile loads an instruction-set descriptor from a TOML file.
func LoadConfigFile(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse instruction set file: %w", err)
	}
	return cfg, nil
}

// SaveConfigFile writes an instruction-set descriptor to a TOML file.
func SaveConfigFile(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create instruction set directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- caller-provided config path
	if err != nil {
		return fmt.Errorf("failed to create instruction set file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode instruction set: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the platform-specific path for a
// user-overridden instruction-set descriptor.
func DefaultConfigPath() string {
	var dir string

	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "super32")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "instructionset.toml"
		}
		dir = filepath.Join(home, ".config", "super32")
	}

	return filepath.Join(dir, "instructionset.toml")
}
