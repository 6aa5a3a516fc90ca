package cli

import (
	"bytes"
	"context"
	"io"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/cosmos/pkg/errors"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestBracketFrames(t *testing.T) {
	frames := bracketFrames(spinnerWord)
	if len(frames) != len(spinnerWord) {
		t.Fatalf("got %d frames, want %d", len(frames), len(spinnerWord))
	}
	for i, f := range frames {
		if len(f) != len(spinnerWord) {
			t.Errorf("frame %d %q has width %d", i, f, len(f))
		}
		if !strings.HasPrefix(spinnerWord, strings.TrimRight(f, " ")) {
			t.Errorf("frame %d %q is not a prefix of %q", i, f, spinnerWord)
		}
	}
	if err := errors.ValidateBracketText(frames[len(frames)-1]); err != nil {
		t.Errorf("last frame: %v", err)
	}
}

func TestSpinnerLabel(t *testing.T) {
	var buf syncBuffer
	s := newSpinner(context.Background(), &buf, 12, big.NewInt(208012))
	s.Start()
	time.Sleep(2 * spinnerInterval)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Catalan(12) = 208012 words") {
		t.Errorf("spinner output missing label: %q", out)
	}
	if !strings.Contains(out, s.frames[0]) {
		t.Errorf("spinner output missing a bracket frame: %q", out)
	}
	if s.Cancelled() {
		t.Error("Stop is not a cancellation")
	}

	if got := newSpinner(context.Background(), io.Discard, 5, nil).label; got != "Enumerating 5-pair words" {
		t.Errorf("label without total = %q", got)
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, io.Discard, 11, nil)
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner kept drawing after cancellation")
	}
	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinner(ctx, io.Discard, 11, nil)
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf syncBuffer
	s := newSpinner(context.Background(), &buf, 11, nil)
	s.Start()

	s.Stop()
	n := len(buf.String())
	s.Stop()
	s.Stop()
	if len(buf.String()) != n {
		t.Error("repeated Stop should not write again")
	}
}
