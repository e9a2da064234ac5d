package panics

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/dana-network/danad/infrastructure/logger"
)

const exitHandlerTimeout = 5 * time.Second

// HandlePanic recovers a panic, logs it with its stack trace, flushes the
// log and exits. Use with defer.
func HandlePanic(log *logger.Logger) {
	err := recover()
	if err == nil {
		return
	}

	reason := fmt.Sprintf("Fatal error: %+v", err)
	exit(log, reason, debug.Stack())
}

// Exit logs the given reason, flushes the log and exits.
func Exit(log *logger.Logger, reason string) {
	exit(log, reason, nil)
}

func exit(log *logger.Logger, reason string, stackTrace []byte) {
	exitHandlerDone := make(chan struct{})
	go func() {
		log.Criticalf("Exiting: %s", reason)
		if stackTrace != nil {
			log.Criticalf("Stack trace: %s", stackTrace)
		}
		log.Backend().Close()
		close(exitHandlerDone)
	}()

	select {
	case <-time.After(exitHandlerTimeout):
		fmt.Fprintln(os.Stderr, "Couldn't exit gracefully.")
	case <-exitHandlerDone:
	}
	// Logs may be off or not yet initialized.
	fmt.Fprintln(os.Stderr, reason)
	os.Exit(1)
}
