package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Escape sequences for emergency terminal restore, written raw because
// the screen object may be unusable by the time a panic reaches us
var resetSequences = []string{
	"\x1b[?1003l", // mouse motion off
	"\x1b[?1002l", // mouse drag off
	"\x1b[?1000l", // mouse click off
	"\x1b[?1006l", // SGR mouse off
	"\x1b[?25h",   // cursor show
	"\x1b[?1049l", // alternate screen exit
	"\x1b[0m",     // attribute reset
}

// EmergencyReset restores the terminal to a usable state from panic recovery
func EmergencyReset() {
	for _, seq := range resetSequences {
		os.Stdout.WriteString(seq)
	}
	os.Stdout.Sync()
}

// HandleCrash is the unified panic handler: reset the terminal, print the stack, exit
func HandleCrash(r any) {
	if r == nil {
		return
	}

	EmergencyReset()

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()
	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
