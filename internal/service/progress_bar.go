package service

import (
	"fmt"
	"strings"
)

// ProgressBar renders current out of total as a bracketed bar of length
// cells, e.g. "[█████░░░░░]".
func ProgressBar(current, total, length int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}
