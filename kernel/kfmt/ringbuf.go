package kfmt

import "io"

// earlyBufferSize defines the capacity of the ring buffer that captures boot
// output generated before the framebuffer console is up. It must be a power
// of 2.
const earlyBufferSize = 4096

// ringBuffer is a fixed-capacity byte ring. When the writer laps the reader
// the oldest data is dropped; early boot output favors the most recent
// messages since those describe the failure that matters.
type ringBuffer struct {
	buffer         [earlyBufferSize]byte
	rIndex, wIndex int
	full           bool
}

// Write appends p to the ring, discarding the oldest bytes on overflow.
func (rb *ringBuffer) Write(p []byte) (int, error) {
	for _, b := range p {
		rb.buffer[rb.wIndex] = b
		rb.wIndex = (rb.wIndex + 1) & (earlyBufferSize - 1)
		if rb.full {
			rb.rIndex = rb.wIndex
		}
		if rb.wIndex == rb.rIndex {
			rb.full = true
		}
	}

	return len(p), nil
}

// Read copies up to len(p) buffered bytes into p, consuming them. It returns
// io.EOF once the ring is empty.
func (rb *ringBuffer) Read(p []byte) (int, error) {
	if rb.rIndex == rb.wIndex && !rb.full {
		return 0, io.EOF
	}

	var n int
	for n < len(p) {
		p[n] = rb.buffer[rb.rIndex]
		n++
		rb.full = false
		rb.rIndex = (rb.rIndex + 1) & (earlyBufferSize - 1)
		if rb.rIndex == rb.wIndex {
			break
		}
	}

	return n, nil
}
