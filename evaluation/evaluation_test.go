// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package evaluation

import (
	"bytes"
	"errors"
	"log"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	cryptoprotect "sm3lab/cryptoProtect"
	hashciphers "sm3lab/cryptoProtect/hashCiphers"
)

// constDigest collides on every input, to exercise the reporting paths.
type constDigest struct{}

func (constDigest) CalculateHash(msg []byte) []byte { return make([]byte, 32) }
func (constDigest) GetHashLen() uint64              { return 32 }

var _ cryptoprotect.HashCipher = constDigest{}

func TestCheckVectors(t *testing.T) {
	res := CheckVectors(&hashciphers.SM3{})
	if len(res) != 3 || !AllPass(res) {
		t.Errorf(`vectors: %+v`, res)
	}
	ref := CheckVectors(&hashciphers.SM3Reference{})
	if !AllPass(ref) {
		t.Errorf(`reference vectors: %+v`, ref)
	}
	if AllPass(CheckVectors(&hashciphers.Sha256{})) {
		t.Error(`sha256 passed the sm3 vectors`)
	}
	var buf bytes.Buffer
	PrintVectors(&buf, res)
	if strings.Contains(buf.String(), `MISMATCH`) {
		t.Error(buf.String())
	}
}

func TestCollisionSearchSM3(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	rep, err := CollisionSearch(&hashciphers.SM3{}, r, CollisionOptions{Pairs: 500, MaxLen: 128, Progress: 250})
	if err != nil {
		t.Fatal(err)
	}
	if rep.PairCollisions != 0 || rep.IndexCollisions != 0 {
		t.Errorf(`unexpected collisions: %+v`, rep)
	}
	if rep.DistinctDigests == 0 || rep.DistinctDigests > 1000 {
		t.Errorf(`DistinctDigests = %d`, rep.DistinctDigests)
	}
	if rep.RunID == `` {
		t.Error(`missing run id`)
	}
	var buf bytes.Buffer
	rep.Print(&buf)
	log.Print(buf.String())
}

func TestCollisionSearchReportsCollisions(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	rep, err := CollisionSearch(constDigest{}, r, CollisionOptions{Pairs: 20, MaxLen: 64})
	if err != nil {
		t.Fatal(err)
	}
	if rep.PairCollisions+rep.IdenticalPairs != 20 {
		t.Errorf(`pairs accounted: %d + %d`, rep.PairCollisions, rep.IdenticalPairs)
	}
	// every message after the first owns the one digest already
	if rep.IndexCollisions == 0 || rep.DistinctDigests != 1 {
		t.Errorf(`index: %d collisions over %d digests`, rep.IndexCollisions, rep.DistinctDigests)
	}
	if len(rep.Samples) != maxCollisionSamples {
		t.Errorf(`samples = %d`, len(rep.Samples))
	}
	if rep.Probability() <= 0 {
		t.Error(`zero probability with collisions`)
	}
}

func TestCollisionSearchBadOptions(t *testing.T) {
	_, err := CollisionSearch(&hashciphers.SM3{}, rand.New(rand.NewSource(3)), CollisionOptions{Pairs: 1})
	if !errors.Is(err, ErrBadOptions) {
		t.Errorf(`got %v`, err)
	}
}

func TestDigestIndex(t *testing.T) {
	for _, path := range []string{``, filepath.Join(t.TempDir(), `index`)} {
		idx, err := OpenDigestIndex(path)
		if err != nil {
			t.Fatal(err)
		}
		d := []byte(`digest-0`)
		if _, hit, err := idx.Record(d, []byte(`m1`)); hit || err != nil {
			t.Fatalf(`first record: %v %v`, hit, err)
		}
		if _, hit, _ := idx.Record(d, []byte(`m1`)); hit {
			t.Error(`same message counted as collision`)
		}
		prev, hit, err := idx.Record(d, []byte(`m2`))
		if !hit || err != nil || string(prev) != `m1` {
			t.Errorf(`collision not reported: %q %v %v`, prev, hit, err)
		}
		if idx.Len() != 1 {
			t.Errorf(`Len = %d`, idx.Len())
		}
		if err = idx.Close(); err != nil {
			t.Error(err)
		}
	}
}

func TestAvalancheSM3(t *testing.T) {
	r := rand.New(rand.NewSource(20241015))
	rep, err := Avalanche(&hashciphers.SM3{}, r, AvalancheOptions{Trials: 400, MinLen: 10, MaxLen: 109, Progress: 100})
	if err != nil {
		t.Fatal(err)
	}
	if rep.OutputBits != 256 || rep.Expected != 128 {
		t.Fatalf(`bits: %d, expected %.1f`, rep.OutputBits, rep.Expected)
	}
	if rep.Coefficient < 0.40 || rep.Coefficient > 0.60 {
		t.Errorf(`coefficient %.4f outside 0.40..0.60`, rep.Coefficient)
	}
	if rep.Verdict == VerdictWeak {
		t.Errorf(`verdict %s`, rep.Verdict)
	}
	if rep.Min > int64(rep.Mean) || rep.Max < int64(rep.Mean) {
		t.Errorf(`min/mean/max: %d %.2f %d`, rep.Min, rep.Mean, rep.Max)
	}
	var buf bytes.Buffer
	rep.Print(&buf)
	log.Print(buf.String())
}

func TestAvalancheBadOptions(t *testing.T) {
	_, err := Avalanche(&hashciphers.SM3{}, rand.New(rand.NewSource(4)), AvalancheOptions{Trials: 1, MinLen: 0, MaxLen: 5})
	if !errors.Is(err, ErrBadOptions) {
		t.Errorf(`got %v`, err)
	}
	rep, err := Avalanche(&hashciphers.SM3{}, rand.New(rand.NewSource(4)), AvalancheOptions{MinLen: 1, MaxLen: 5})
	if err != nil || rep.Coefficient != 0 || rep.Verdict != VerdictWeak {
		t.Errorf(`zero trials: %+v %v`, rep, err)
	}
}

func TestBatchAvalanche(t *testing.T) {
	msg := []byte(`This is a test message for avalanche effect testing.`)
	rep, err := BatchAvalanche(&hashciphers.SM3{}, rand.New(rand.NewSource(5)),
		BatchOptions{Message: msg, TestsPerLevel: 100, FlipProbability: 0.01})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 4, 8, 4} // 52 bytes * 8 * 0.01 = 4.16
	if len(rep.Levels) != len(want) {
		t.Fatalf(`levels: %+v`, rep.Levels)
	}
	for i, lvl := range rep.Levels {
		if lvl.BitsFlipped != want[i] {
			t.Errorf(`level %d flips %d, want %d`, i+1, lvl.BitsFlipped, want[i])
		}
	}
	if p := rep.Levels[0].Percentage; p < 40 || p > 60 {
		t.Errorf(`single bit level changed %.1f%%`, p)
	}
	var buf bytes.Buffer
	rep.Print(&buf)
	log.Print(buf.String())

	if _, err := BatchAvalanche(&hashciphers.SM3{}, rand.New(rand.NewSource(5)), BatchOptions{}); !errors.Is(err, ErrBadOptions) {
		t.Errorf(`empty message: %v`, err)
	}
}

func TestBatchLevelsFloor(t *testing.T) {
	if got := batchLevels(3, 0.01); got[4] != 1 {
		t.Errorf(`tiny message last level = %d`, got[4])
	}
}

func TestVerdict(t *testing.T) {
	cases := map[float64]string{0.5: VerdictGood, 0.42: VerdictAcceptable, 0.58: VerdictAcceptable, 0.3: VerdictWeak, 0.45: VerdictAcceptable}
	for c, want := range cases {
		if got := Verdict(c); got != want {
			t.Errorf(`Verdict(%.2f) = %s, want %s`, c, got, want)
		}
	}
}

func TestNewRand(t *testing.T) {
	r1, s1 := NewRand(42)
	r2, _ := NewRand(42)
	if s1 != 42 || r1.Int63() != r2.Int63() {
		t.Error(`fixed seed not reproducible`)
	}
	if _, s := NewRand(0); s == 0 {
		t.Log(`fresh seed happened to be zero`)
	}
}
