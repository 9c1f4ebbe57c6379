// Package log provides colored console output for the library and
// the CLI built on it.
package log

import (
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var yellow = color.New(color.FgYellow).FprintfFunc()

var verbose = false

// SetVerbose enables or disables verbose messages globally.
func SetVerbose(v bool) {
	verbose = v
}

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}

// VerboseMsg prints a message to stderr in yellow color, but only
// when verbose output is enabled.
func VerboseMsg(format string, a ...interface{}) {
	if !verbose {
		return
	}
	yellow(os.Stderr, "[*] "+format, a...)
}
