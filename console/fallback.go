package console

import (
	"os"
	"strconv"
)

// fallbackTermSize reads COLUMNS and LINES.
func fallbackTermSize() (width, height int) {
	if v, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && v > 0 {
		width = v
	}
	if v, err := strconv.Atoi(os.Getenv("LINES")); err == nil && v > 0 {
		height = v
	}
	return width, height
}
