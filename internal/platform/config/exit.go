package config

import (
	"fmt"
	"os"
)

// ExitCodef writes a formatted message to stderr and exits with code.
func ExitCodef(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

// Exitf is ExitCodef with exit code 1, the fatal exit of every command.
func Exitf(format string, args ...any) {
	ExitCodef(1, format, args...)
}
