package cli

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerSilentWhenNotATerminal(t *testing.T) {
	var out lockedBuffer
	spinner := NewSpinner(&out)

	spinner.Start()
	spinner.Stop()

	assert.Empty(t, out.String())
}

func TestSpinnerDrawsAndClears(t *testing.T) {
	var out lockedBuffer
	spinner := NewSpinner(&out)
	spinner.enabled = true
	spinner.interval = time.Millisecond

	spinner.Start()
	time.Sleep(10 * time.Millisecond)
	spinner.Stop()
	spinner.Stop()

	got := out.String()
	assert.Contains(t, got, spinner.frames[0])
	assert.Contains(t, got, "\r\033[K")

	// Restartable after Stop.
	spinner.Start()
	spinner.Stop()
}
