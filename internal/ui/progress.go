// Package ui provides spinner components for long-running steps.
package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

var (
	spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinnerMu     sync.Mutex
	spinnerStop   chan struct{}
	spinnerActive bool
)

// StartSpinner starts an animated spinner with a message.
// No-op in quiet mode or when stdout is not a terminal, so piped
// output never contains carriage returns.
//
// Parameters:
//   - message: The message to display next to the spinner
func StartSpinner(message string) {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if spinnerActive || quietMode || !IsInteractive() {
		return
	}

	spinnerActive = true
	spinnerStop = make(chan struct{})

	go func(stop chan struct{}) {
		i := 0
		for {
			select {
			case <-stop:
				// Clear the spinner line
				fmt.Printf("\r%s\r", strings.Repeat(" ", len(message)+4))
				return
			default:
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Printf("\r%s %s", SpinnerStyle.Render(frame), message)
				i++
				time.Sleep(80 * time.Millisecond)
			}
		}
	}(spinnerStop)
}

// StopSpinner stops the current spinner, if any.
func StopSpinner() {
	spinnerMu.Lock()
	defer spinnerMu.Unlock()

	if !spinnerActive {
		return
	}

	close(spinnerStop)
	spinnerActive = false
	time.Sleep(100 * time.Millisecond) // Allow cleanup
}

// WithSpinner runs fn while showing a spinner, stopping it when fn
// returns.
//
// Parameters:
//   - message: The spinner message
//   - fn: The work to perform
//
// Returns:
//   - error: Whatever fn returns
func WithSpinner(message string, fn func() error) error {
	StartSpinner(message)
	defer StopSpinner()
	return fn()
}
