package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color functions for terminal output
var (
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
)

// SetNoColor disables or enables colored output globally
func SetNoColor(disabled bool) {
	color.NoColor = disabled
}

// errOut is where PrintError writes
var errOut io.Writer = os.Stderr

// PrintError prints an error message in red to stderr
func PrintError(msg string, args ...interface{}) {
	if len(args) > 0 {
		fmt.Fprintln(errOut, Red(msg+": "+fmt.Sprintf("%v", args[0])))
	} else {
		fmt.Fprintln(errOut, Red(msg))
	}
}
