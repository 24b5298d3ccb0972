// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package evaluation

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	cryptoprotect "sm3lab/cryptoProtect"
)

type VectorResult struct {
	Label    string
	Input    []byte
	Expected string
	Actual   string
	Pass     bool
}

// GB/T 32905-2016 appendix A, plus the empty message.
var standardVectors = []struct {
	label, msg, digest string
}{
	{`empty message`, ``, `1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b`},
	{`"abc"`, `abc`, `66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0`},
	{`"abcd"*16`, strings.Repeat(`abcd`, 16), `debe9ff92275b8a138604889c18e5a4d6fdb70e5387e5765293dcba39c0c5732`},
}

// CheckVectors hashes the SM3 standard vectors with h. Only meaningful for SM3 hashers.
func CheckVectors(h cryptoprotect.HashCipher) []VectorResult {
	res := make([]VectorResult, 0, len(standardVectors))
	for _, v := range standardVectors {
		actual := hex.EncodeToString(h.CalculateHash([]byte(v.msg)))
		res = append(res, VectorResult{
			Label:    v.label,
			Input:    []byte(v.msg),
			Expected: v.digest,
			Actual:   actual,
			Pass:     actual == v.digest,
		})
	}
	return res
}

func AllPass(res []VectorResult) bool {
	for _, r := range res {
		if !r.Pass {
			return false
		}
	}
	return true
}

func PrintVectors(w io.Writer, res []VectorResult) {
	fmt.Fprintln(w, `===== standard vectors =====`)
	for _, r := range res {
		mark := `ok`
		if !r.Pass {
			mark = `MISMATCH`
		}
		fmt.Fprintf(w, "%s\n  got:      %s\n  expected: %s  [%s]\n", r.Label, r.Actual, r.Expected, mark)
	}
}
