package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Spinner represents a loading animation
type Spinner struct {
	out      io.Writer
	frames   []string
	message  string
	interval time.Duration
	mu       sync.Mutex
	active   bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewSpinner creates a new spinner writing to stderr
func NewSpinner(message string) *Spinner {
	return &Spinner{
		out: os.Stderr,
		frames: []string{
			"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏",
		},
		message:  message,
		interval: 100 * time.Millisecond,
	}
}

// Start begins the spinner animation
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.active = true
	s.done = make(chan struct{})

	go s.spin(ctx, s.done)
}

// Stop ends the spinner animation and clears its line
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}

	s.active = false
	s.cancel()
	done := s.done
	s.mu.Unlock()

	<-done
	fmt.Fprint(s.out, "\r\033[K")
}

// UpdateMessage changes the spinner message
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// spin runs the animation loop
func (s *Spinner) spin(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	frameIndex := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			if !s.active {
				s.mu.Unlock()
				return
			}

			frame := s.frames[frameIndex]
			message := s.message
			s.mu.Unlock()

			fmt.Fprintf(s.out, "\r%s %s %s",
				BrightBlue(frame),
				BrightCyan("computing..."),
				Dim(message))

			frameIndex = (frameIndex + 1) % len(s.frames)
		}
	}
}

// ShowComputing displays a spinner while an evaluation runs
func ShowComputing(message string) *Spinner {
	spinner := NewSpinner(message)
	spinner.frames = []string{"◐", "◓", "◑", "◒"}
	spinner.interval = 150 * time.Millisecond
	spinner.Start()
	return spinner
}
