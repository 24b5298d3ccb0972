// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package evaluation

import (
	"fmt"
	"io"
	"math/rand"

	cryptoprotect "sm3lab/cryptoProtect"
	defErr "sm3lab/defErr"
	utils "sm3lab/utils"
)

type BatchOptions struct {
	Message         []byte
	TestsPerLevel   int
	FlipProbability float64 // share of message bits flipped by the last level
}

type BatchLevel struct {
	BitsFlipped int
	MeanChanged float64
	Percentage  float64
}

type BatchReport struct {
	RunID      string
	Message    []byte
	Digest     []byte
	OutputBits int
	Levels     []BatchLevel
}

/*
flips per level: 1, 2, 4, 8 bits and finally FlipProbability of the message,
never less than one bit.
*/
func batchLevels(msgLen int, p float64) []int {
	last := int(float64(msgLen<<3) * p)
	return []int{1, 2, 4, 8, max(last, 1)}
}

/*
BatchAvalanche flips growing numbers of random bits in one fixed message.

	Positions are drawn independently, so a bit may be flipped back.
*/
func BatchAvalanche(h cryptoprotect.HashCipher, r *rand.Rand, opts BatchOptions) (*BatchReport, error) {
	if len(opts.Message) == 0 {
		return nil, defErr.Concat(ErrBadOptions, `empty batch message`)
	}
	th := newTimedHasher(h)
	defer th.stop()

	rep := &BatchReport{
		RunID:      newRunID(),
		Message:    opts.Message,
		Digest:     th.hash(opts.Message),
		OutputBits: int(h.GetHashLen()) << 3,
	}
	nbits := len(opts.Message) << 3
	modified := make([]byte, len(opts.Message))
	for _, flips := range batchLevels(len(opts.Message), opts.FlipProbability) {
		total := 0
		for i := 0; i < opts.TestsPerLevel; i++ {
			copy(modified, opts.Message)
			for f := 0; f < flips; f++ {
				utils.FlipBit(modified, r.Intn(nbits))
			}
			total += utils.HammingDistance(rep.Digest, th.hash(modified))
		}
		lvl := BatchLevel{BitsFlipped: flips}
		if opts.TestsPerLevel > 0 {
			lvl.MeanChanged = float64(total) / float64(opts.TestsPerLevel)
			lvl.Percentage = lvl.MeanChanged / float64(rep.OutputBits) * 100
		}
		rep.Levels = append(rep.Levels, lvl)
	}
	return rep, nil
}

func (rep *BatchReport) Print(w io.Writer) {
	fmt.Fprintln(w, `===== avalanche (batch) =====`)
	fmt.Fprintf(w, "run:      %s\n", rep.RunID)
	fmt.Fprintf(w, "message:  %s (%d bytes)\n", rep.Message, len(rep.Message))
	fmt.Fprintf(w, "digest:   %x\n", rep.Digest)
	for i, lvl := range rep.Levels {
		fmt.Fprintf(w, "level %d: %d bit(s) flipped, %.1f digest bits changed (%.1f%%)\n",
			i+1, lvl.BitsFlipped, lvl.MeanChanged, lvl.Percentage)
	}
	fmt.Fprintln(w, `a single flipped bit should change about half of the digest bits.`)
}
