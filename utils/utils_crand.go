// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// fill inp with bytes from the system CSPRNG.
func SetRandByte(inp *[]byte) (int, error) {
	return crand.Read(*inp)
}

/*
pick a seed for math/rand.

	The system CSPRNG is asked first, the wall clock is the fallback.
*/
func NewSeed() int64 {
	buf := make([]byte, 8)
	if _, err := SetRandByte(&buf); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf) >> 1)
}

// uniform integer in [minn, maxn].
func RandomIntBetween(r *rand.Rand, minn int, maxn int) int {
	if maxn <= minn {
		return minn
	}
	return r.Intn(maxn-minn+1) + minn
}

// generate a pseudo-random byte slice of length lena.
func RandomBytes(r *rand.Rand, lena int) []byte {
	res := make([]byte, lena)
	for i := range res {
		res[i] = byte(r.Intn(256))
	}
	return res
}
