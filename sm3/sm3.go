// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>

// Package sm3 implements the SM3 hash function of GB/T 32905-2016.
package sm3

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
)

/*
Context is a streaming SM3 computation.

	The zero value is ready for use and behaves like a freshly initialized context.
	A Context must not be shared between goroutines without external locking.
*/
type Context struct {
	state     [8]uint32
	buffer    [BlockSize]byte
	used      int    // valid bytes in buffer, always < BlockSize between calls
	bitLength uint64 // bits consumed so far, wraps at 2^64
	ready     bool   // state holds the IV or a chaining value
}

var _ hash.Hash = (*Context)(nil)

// New returns an initialized Context.
func New() *Context {
	c := new(Context)
	c.Init()
	return c
}

// Init puts the context back to the state of a fresh computation.
func (c *Context) Init() {
	c.state = iv
	c.buffer = [BlockSize]byte{}
	c.used = 0
	c.bitLength = 0
	c.ready = true
}

// Update absorbs data. It may be called any number of times with chunks of
// any size.
func (c *Context) Update(data []byte) {
	if len(data) == 0 {
		return
	}
	if !c.ready {
		c.Init()
	}
	c.bitLength += uint64(len(data)) << 3

	if c.used > 0 {
		n := copy(c.buffer[c.used:], data)
		c.used += n
		data = data[n:]
		if c.used < BlockSize {
			return
		}
		blocks(&c.state, c.buffer[:])
		c.used = 0
	}

	if len(data) >= BlockSize {
		n := len(data) &^ (BlockSize - 1)
		blocks(&c.state, data[:n])
		data = data[n:]
	}
	c.used = copy(c.buffer[:], data)
}

/*
Finalize pads the message, returns its digest and re-initializes the context.

	Calling it again without feeding data yields the digest of the empty message.
*/
func (c *Context) Finalize() [Size]byte {
	if !c.ready {
		c.Init()
	}
	c.buffer[c.used] = 0x80
	for i := c.used + 1; i < BlockSize; i++ {
		c.buffer[i] = 0
	}
	// the length field needs the last 8 bytes of a block to itself.
	if c.used+1 > BlockSize-8 {
		blocks(&c.state, c.buffer[:])
		c.buffer = [BlockSize]byte{}
	}
	binary.BigEndian.PutUint64(c.buffer[BlockSize-8:], c.bitLength)
	blocks(&c.state, c.buffer[:])

	digest := encode(&c.state)
	c.Init()
	return digest
}

func encode(s *[8]uint32) (out [Size]byte) {
	for i, v := range s {
		binary.BigEndian.PutUint32(out[i<<2:], v)
	}
	return
}

func (c *Context) Write(p []byte) (int, error) {
	c.Update(p)
	return len(p), nil
}

// Sum appends the digest of everything written so far to b.
// The context itself is left untouched.
func (c *Context) Sum(b []byte) []byte {
	cp := *c
	digest := cp.Finalize()
	return append(b, digest[:]...)
}

func (c *Context) Reset()         { c.Init() }
func (c *Context) Size() int      { return Size }
func (c *Context) BlockSize() int { return BlockSize }

// Sum returns the SM3 digest of data.
func Sum(data []byte) [Size]byte {
	var c Context
	c.Init()
	c.Update(data)
	return c.Finalize()
}

// Hex renders a digest as lowercase hex for display.
func Hex(digest []byte) string {
	return hex.EncodeToString(digest)
}
