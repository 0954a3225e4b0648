package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// exit is swapped in tests.
var exit = Shutdown

// HandleSIGTERM registers for SIGINT/SIGTERM before returning, then cancels
// the run on the first signal and exits on the second. The returned stop
// func unregisters the handler.
func HandleSIGTERM(cancel context.CancelFunc) (stop func()) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-c:
		case <-done:
			return
		}

		cancel()
		slog.Error("Keyboard Interrupt Received (SIGTERM): cancelled pending datasets.")

		select {
		case <-c:
		case <-done:
			return
		}
		slog.Error("Second interrupt received: exiting immediately.")
		exit(1)
	}()

	return func() {
		signal.Stop(c)
		close(done)
	}
}

// Shutdown leaves the log handler a moment to flush, then exits.
func Shutdown(code int) {
	time.Sleep(250 * time.Millisecond)
	os.Exit(code)
}
