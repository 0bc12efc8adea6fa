package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// resetHook restores the host display before a crash report is printed
var resetHook atomic.Pointer[func()]

// SetCrashReset registers the display restore function, tcell hosts pass screen.Fini
func SetCrashReset(fn func()) {
	if fn == nil {
		resetHook.Store(nil)
		return
	}
	resetHook.Store(&fn)
}

// HandleCrash is the unified panic handler that resets the display and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := resetHook.Load(); fn != nil {
		(*fn)()
	}

	LogError("crash", "panic", r)

	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure display cleanup on crash.
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
