package output

import (
	"io"
	"os"
)

// Environment conventions honored in auto mode (https://no-color.org and
// the CLICOLOR family). An explicit --color always wins over both.
const (
	envNoColor    = "NO_COLOR"
	envColorForce = "CLICOLOR_FORCE"
)

// ResolveColorMode reports whether styled output should be used.
// colorMode is "never", "always" or "auto"; anything else counts as auto.
// In auto mode a non-empty NO_COLOR disables color, a CLICOLOR_FORCE other
// than "0" enables it, and otherwise isTTY decides.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	return resolveColor(colorMode, isTTY, os.Getenv)
}

func resolveColor(colorMode string, isTTY bool, getenv func(string) string) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	}

	if getenv(envNoColor) != "" {
		return false
	}
	if force := getenv(envColorForce); force != "" && force != "0" {
		return true
	}
	return isTTY
}

// IsTTY reports whether writer is a character device such as a terminal.
// Buffers, pipes and regular files are not.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
