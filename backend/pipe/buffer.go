package pipe

import (
	"bytes"
	"io"
	"sync"

	"github.com/jmgilman/go/streamio/core"
)

// buffer is the shared state of one pipe direction.
type buffer struct {
	data     bytes.Buffer
	mu       sync.Mutex
	dataCond *sync.Cond
	rclosed  bool
	wclosed  bool
	block    bool
}

func newBuffer(block bool) *buffer {
	b := &buffer{block: block}
	b.dataCond = sync.NewCond(&b.mu)
	return b
}

func (b *buffer) write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.wclosed {
		return 0, core.ErrClosed
	}
	if b.rclosed {
		return 0, io.ErrClosedPipe
	}

	n, err := b.data.Write(p)
	b.dataCond.Signal()
	return n, err
}

func (b *buffer) read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.block {
		for b.data.Len() == 0 && !b.wclosed && !b.rclosed {
			b.dataCond.Wait()
		}
	}

	if b.rclosed {
		return 0, core.ErrClosed
	}
	if b.data.Len() == 0 {
		return 0, io.EOF
	}

	return b.data.Read(p)
}

func (b *buffer) closeRead() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rclosed = true
	b.dataCond.Broadcast()
}

func (b *buffer) closeWrite() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.wclosed = true
	b.dataCond.Broadcast()
}

func (b *buffer) readClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rclosed
}

func (b *buffer) writeClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.wclosed
}

func (b *buffer) size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data.Len()
}
