// Package entropy provides the random source used for secrets and nonces.
package entropy

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// Generator serialises reads from an underlying byte source so a single
// instance can be shared between goroutines.
type Generator struct {
	mu  sync.Mutex
	src io.Reader
}

// New wraps src. Tests pass a deterministic reader here.
func New(src io.Reader) *Generator {
	return &Generator{src: src}
}

var defaultGenerator = New(rand.Reader)

// Default returns the process-wide generator backed by crypto/rand.
func Default() *Generator {
	return defaultGenerator
}

// Read fills p completely or returns an error.
func (g *Generator) Read(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, err := io.ReadFull(g.src, p)
	if err != nil {
		return n, errors.Wrap(err, "entropy: read")
	}
	return n, nil
}

// NextBytes returns n fresh random bytes.
func (g *Generator) NextBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := g.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
