package main

import (
	"fmt"

	"github.com/lookbusy1344/super32/internal/encoder"
)

// parseArchMode maps the --arch flag to an encoder.Mode, rejecting anything
// other than "single" or "multi" so a typo fails fast instead of silently
// falling back to single-region mode.
func parseArchMode(arch string) (encoder.Mode, error) {
	switch arch {
	case "single":
		return encoder.ModeSingle, nil
	case "multi":
		return encoder.ModeMulti, nil
	default:
		return 0, fmt.Errorf("unknown architecture mode %q (want single or multi)", arch)
	}
}
