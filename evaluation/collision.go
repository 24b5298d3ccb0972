// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package evaluation

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"time"

	cryptoprotect "sm3lab/cryptoProtect"
	defErr "sm3lab/defErr"
	utils "sm3lab/utils"
)

const maxCollisionSamples = 8

type CollisionOptions struct {
	Pairs     int
	MaxLen    int    // messages are 1..MaxLen bytes
	IndexPath string // see OpenDigestIndex
	Progress  int    // log every Progress pairs, 0 silences
}

type CollisionSample struct {
	Pair      int
	Msg1      []byte
	Msg2      []byte
	Digest    []byte
	FromIndex bool // found against an earlier message of the run, not the pair partner
}

type CollisionReport struct {
	RunID           string
	Pairs           int
	PairCollisions  int // distinct messages of one pair sharing a digest
	IdenticalPairs  int // both halves of the pair came out byte-identical
	IndexCollisions int
	DistinctDigests int
	Samples         []CollisionSample
	Elapsed         time.Duration
	MeanHashLatency time.Duration
}

// observed pair collision rate.
func (rep *CollisionReport) Probability() float64 {
	if rep.Pairs == 0 {
		return 0
	}
	return float64(rep.PairCollisions) / float64(rep.Pairs)
}

/*
CollisionSearch hashes random message pairs and looks for equal digests.

	Both messages of a pair get independent random lengths in [1, MaxLen].
*/
func CollisionSearch(h cryptoprotect.HashCipher, r *rand.Rand, opts CollisionOptions) (*CollisionReport, error) {
	if opts.MaxLen < 1 {
		return nil, defErr.Concat(ErrBadOptions, fmt.Sprintf(`MaxLen = %d`, opts.MaxLen))
	}
	idx, err := OpenDigestIndex(opts.IndexPath)
	if err != nil {
		return nil, err
	}
	defer idx.Close()

	th := newTimedHasher(h)
	defer th.stop()

	rep := &CollisionReport{RunID: newRunID(), Pairs: opts.Pairs}
	record := func(pair int, digest, msg []byte) error {
		prev, hit, err := idx.Record(digest, msg)
		if err != nil {
			return err
		}
		if hit {
			rep.IndexCollisions++
			rep.addSample(CollisionSample{Pair: pair, Msg1: prev, Msg2: msg, Digest: digest, FromIndex: true})
		}
		return nil
	}

	start := time.Now()
	for i := 0; i < opts.Pairs; i++ {
		msg1 := utils.RandomBytes(r, utils.RandomIntBetween(r, 1, opts.MaxLen))
		msg2 := utils.RandomBytes(r, utils.RandomIntBetween(r, 1, opts.MaxLen))
		d1, d2 := th.hash(msg1), th.hash(msg2)

		switch {
		case bytes.Equal(msg1, msg2):
			rep.IdenticalPairs++
		case bytes.Equal(d1, d2):
			rep.PairCollisions++
			rep.addSample(CollisionSample{Pair: i + 1, Msg1: msg1, Msg2: msg2, Digest: d1})
			log.Printf(`[collision] pair %d collides: %s`, i+1, utils.HexPrefix(d1, 32))
		}
		if err = record(i+1, d1, msg1); err != nil {
			return nil, err
		}
		// a pair collision was already counted above.
		if !bytes.Equal(d1, d2) {
			if err = record(i+1, d2, msg2); err != nil {
				return nil, err
			}
		}

		if opts.Progress > 0 && (i+1)%opts.Progress == 0 {
			log.Printf(`[collision] %d/%d pairs tested`, i+1, opts.Pairs)
		}
	}
	rep.Elapsed = time.Since(start)
	rep.DistinctDigests = idx.Len()
	rep.MeanHashLatency = th.meanLatency()
	return rep, nil
}

func (rep *CollisionReport) addSample(s CollisionSample) {
	if len(rep.Samples) < maxCollisionSamples {
		rep.Samples = append(rep.Samples, s)
	}
}

func (rep *CollisionReport) Print(w io.Writer) {
	fmt.Fprintln(w, `===== collision search =====`)
	fmt.Fprintf(w, "run:                      %s\n", rep.RunID)
	fmt.Fprintf(w, "message pairs:            %d\n", rep.Pairs)
	fmt.Fprintf(w, "pair collisions:          %d\n", rep.PairCollisions)
	fmt.Fprintf(w, "identical pairs skipped:  %d\n", rep.IdenticalPairs)
	fmt.Fprintf(w, "cross-run collisions:     %d (over %d distinct digests)\n", rep.IndexCollisions, rep.DistinctDigests)
	fmt.Fprintf(w, "observed probability:     %e\n", rep.Probability())
	fmt.Fprintf(w, "theoretical (2^-128):     %e\n", math.Pow(2, -128))
	fmt.Fprintf(w, "elapsed:                  %s (mean %s per hash)\n", rep.Elapsed, rep.MeanHashLatency)
	for _, s := range rep.Samples {
		fmt.Fprintf(w, "pair %d (index: %v)\n  msg1 (%d bytes): %s\n  msg2 (%d bytes): %s\n  digest: %s\n",
			s.Pair, s.FromIndex,
			len(s.Msg1), utils.HexPrefix(s.Msg1, 16),
			len(s.Msg2), utils.HexPrefix(s.Msg2, 16),
			utils.HexPrefix(s.Digest, 32))
	}
}
