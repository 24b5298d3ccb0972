// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package sm3

import (
	"encoding/binary"
	"math/bits"
)

func ff0(x, y, z uint32) uint32 { return x ^ y ^ z }
func ff1(x, y, z uint32) uint32 { return (x & y) | (x & z) | (y & z) }
func gg0(x, y, z uint32) uint32 { return x ^ y ^ z }
func gg1(x, y, z uint32) uint32 { return (x & y) | (^x & z) }

func p0(x uint32) uint32 { return x ^ bits.RotateLeft32(x, 9) ^ bits.RotateLeft32(x, 17) }
func p1(x uint32) uint32 { return x ^ bits.RotateLeft32(x, 15) ^ bits.RotateLeft32(x, 23) }

// Compress runs the SM3 compression function over one block and returns the
// next chaining value. Neither argument is modified.
func Compress(state [8]uint32, block *[BlockSize]byte) [8]uint32 {
	blocks(&state, block[:])
	return state
}

/*
blocks feeds every whole 64-byte block of p through the compression
function, in order, chaining through s. A trailing partial block is ignored.
*/
func blocks(s *[8]uint32, p []byte) {
	var (
		w  [68]uint32
		w1 [64]uint32
	)
	for len(p) >= BlockSize {
		// message expansion
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i<<2:])
		}
		for j := 16; j < 68; j++ {
			w[j] = p1(w[j-16]^w[j-9]^bits.RotateLeft32(w[j-3], 15)) ^
				bits.RotateLeft32(w[j-13], 7) ^ w[j-6]
		}
		for j := 0; j < 64; j++ {
			w1[j] = w[j] ^ w[j+4]
		}

		a, b, c, d := s[0], s[1], s[2], s[3]
		e, f, g, h := s[4], s[5], s[6], s[7]
		for j := 0; j < 64; j++ {
			a12 := bits.RotateLeft32(a, 12)
			ss1 := bits.RotateLeft32(a12+e+roundT[j], 7)
			ss2 := ss1 ^ a12

			var tt1, tt2 uint32
			if j < 16 {
				tt1 = ff0(a, b, c) + d + ss2 + w1[j]
				tt2 = gg0(e, f, g) + h + ss1 + w[j]
			} else {
				tt1 = ff1(a, b, c) + d + ss2 + w1[j]
				tt2 = gg1(e, f, g) + h + ss1 + w[j]
			}

			d = c
			c = bits.RotateLeft32(b, 9)
			b = a
			a = tt1
			h = g
			g = bits.RotateLeft32(f, 19)
			f = e
			e = p0(tt2)
		}

		s[0] ^= a
		s[1] ^= b
		s[2] ^= c
		s[3] ^= d
		s[4] ^= e
		s[5] ^= f
		s[6] ^= g
		s[7] ^= h

		p = p[BlockSize:]
	}
}
