// Package bar renders the overall-progress bar.
package bar

import (
	"fmt"
	"strings"
)

const cells = 20

// Render draws a fixed-width bar where each cell stands for 5%:
// [██████              ] 30.0%
func Render(percent float64) string {
	filled := int(percent / 5)
	if filled < 0 {
		filled = 0
	}
	if filled > cells {
		filled = cells
	}
	return fmt.Sprintf("[%s%s] %.1f%%", strings.Repeat("█", filled), strings.Repeat(" ", cells-filled), percent)
}
