package main

import (
	"os"

	"github.com/lookbusy1344/super32/internal/isa"
)

// loadISA compiles, in order of precedence, the TOML descriptor named by
// --isa, a descriptor found at isa.DefaultConfigPath(), or the built-in
// instruction set.
func loadISA() (*isa.ISA, error) {
	path := isaPath
	if path == "" {
		if _, err := os.Stat(isa.DefaultConfigPath()); err == nil {
			path = isa.DefaultConfigPath()
		}
	}
	if path == "" {
		return isa.Default(), nil
	}

	cfg, err := isa.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return isa.Compile(cfg), nil
}
