// Package logging provides process-wide log helpers with a global quiet
// switch so CLI subcommands can suppress server chatter.
package logging

import (
	"log"
	"os"
)

var (
	quiet  = false
	logger = log.New(os.Stdout, "", log.LstdFlags)
)

// Disable turns off all logging (used by CLI subcommands).
func Disable() {
	quiet = true
}

// Enable turns logging back on.
func Enable() {
	quiet = false
}

// Info logs an info message.
func Info(v ...any) {
	if !quiet {
		logger.Println(v...)
	}
}

// Infof logs a formatted info message.
func Infof(format string, v ...any) {
	if !quiet {
		logger.Printf(format, v...)
	}
}

// Warnf logs a formatted warning message.
func Warnf(format string, v ...any) {
	if !quiet {
		logger.Printf("warn: "+format, v...)
	}
}

// Error logs an error message.
func Error(v ...any) {
	if !quiet {
		logger.Println(append([]any{"error:"}, v...)...)
	}
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...any) {
	if !quiet {
		logger.Printf("error: "+format, v...)
	}
}
