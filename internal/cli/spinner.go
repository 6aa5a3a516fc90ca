package cli

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"strings"
	"sync"
	"time"
)

// spinnerWord is drawn one bracket per tick while an enumeration runs.
const spinnerWord = "(()(()))"

const spinnerInterval = 90 * time.Millisecond

// Spinner draws a growing bracket word on w next to a label until stopped
// or until its context is cancelled.
type Spinner struct {
	w      io.Writer
	label  string
	frames []string

	parent   context.Context
	ctx      context.Context
	cancel   context.CancelFunc
	stopped  chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
}

// newSpinner creates a spinner for enumerating the words with n pairs.
// total is the expected word count; nil leaves it out of the label.
func newSpinner(ctx context.Context, w io.Writer, n int, total *big.Int) *Spinner {
	label := fmt.Sprintf("Enumerating %d-pair words", n)
	if total != nil {
		label = fmt.Sprintf("Enumerating Catalan(%d) = %s words", n, total)
	}
	spinCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		label:   label,
		frames:  bracketFrames(spinnerWord),
		parent:  ctx,
		ctx:     spinCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// bracketFrames returns every non-empty prefix of word, padded to its full
// width so frames overwrite each other cleanly.
func bracketFrames(word string) []string {
	frames := make([]string, len(word))
	for i := range frames {
		frames[i] = word[:i+1] + strings.Repeat(" ", len(word)-i-1)
	}
	return frames
}

// Start draws frames until Stop or cancellation.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		s.draw(s.frames[0])
		for i := 1; ; i++ {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.draw(s.frames[i%len(s.frames)])
			}
		}
	}()
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.label))
}

// Stop ends the animation and blanks the line. It may be called more than
// once.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.stopped
		s.mu.Lock()
		defer s.mu.Unlock()
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(spinnerWord)+1+len(s.label)))
	})
}

// Cancelled reports whether the parent context ended, as opposed to a
// plain Stop.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
