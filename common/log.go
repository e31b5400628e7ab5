package common

import (
	"fmt"
	"log"

	"github.com/gookit/color"
)

var (
	infoTag  = color.FgCyan.Render("INFO")
	errorTag = color.FgRed.Render("ERROR")
)

// Infof logs an informational diagnostic line.
func Infof(format string, args ...any) {
	log.Printf("%s: %s", infoTag, fmt.Sprintf(format, args...))
}

// Errorf logs a recoverable failure. The caller is expected to fall back to a
// degraded state and keep running.
func Errorf(format string, args ...any) {
	log.Printf("%s: %s", errorTag, fmt.Sprintf(format, args...))
}
