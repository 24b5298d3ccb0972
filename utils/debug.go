// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import "encoding/hex"

/*
hex of at most the first `limit` bytes of inp, `...` appended when truncated.
*/
func HexPrefix(inp []byte, limit int) string {
	if len(inp) <= limit {
		return hex.EncodeToString(inp)
	}
	return hex.EncodeToString(inp[:limit]) + `...`
}
