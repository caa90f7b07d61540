// Package wireenc is a zero-allocation cursor over a caller-supplied
// fixed-size buffer, writing the big-endian length-prefixed fields the
// SSH wire format uses.
package wireenc

import (
	"encoding/binary"
	"fmt"
)

// Encoder writes into buf starting at cursor 0. It never allocates and
// never grows buf; writes past the end panic via ErrOverflow.
type Encoder struct {
	buf    []byte
	cursor int
}

// ErrOverflow indicates a write would exceed the encoder's buffer.
// A well-sized buffer (as computed from the format's derived sizes)
// never triggers it; seeing it means a constant is wrong.
type ErrOverflow struct {
	Cursor, Need, Cap int
}

func (e *ErrOverflow) Error() string {
	return fmt.Sprintf("wireenc: write of %d bytes at cursor %d exceeds buffer of %d", e.Need, e.Cursor, e.Cap)
}

// New wraps buf for writing. The caller owns buf's lifetime.
func New(buf []byte) *Encoder {
	return &Encoder{buf: buf}
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return e.cursor }

func (e *Encoder) require(n int) {
	if e.cursor+n > len(e.buf) {
		panic(&ErrOverflow{Cursor: e.cursor, Need: n, Cap: len(e.buf)})
	}
}

// WriteU32 writes v as 4 big-endian bytes.
func (e *Encoder) WriteU32(v uint32) {
	e.require(4)
	binary.BigEndian.PutUint32(e.buf[e.cursor:], v)
	e.cursor += 4
}

// WriteBytes copies b verbatim.
func (e *Encoder) WriteBytes(b []byte) {
	e.require(len(b))
	copy(e.buf[e.cursor:], b)
	e.cursor += len(b)
}

// WriteSSHString writes the SSH "string" encoding: a big-endian u32
// length prefix followed by the raw bytes.
func (e *Encoder) WriteSSHString(b []byte) {
	e.WriteU32(uint32(len(b)))
	e.WriteBytes(b)
}
