// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>

// Package evaluation measures statistical properties of a hash function
// through nothing but its one-shot entry point.
package evaluation

import (
	"errors"
	"math/rand"
	"time"

	metrics "github.com/rcrowley/go-metrics"
	uuid "github.com/satori/go.uuid"

	cryptoprotect "sm3lab/cryptoProtect"
	utils "sm3lab/utils"
)

var ErrBadOptions = errors.New(`bad evaluation options`)

// NewRand seeds a generator, seed 0 draws a fresh one. The seed in use is returned for reports.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = utils.NewSeed()
	}
	return rand.New(rand.NewSource(seed)), seed
}

func newRunID() string {
	return uuid.NewV4().String()
}

// timedHasher records the latency of every CalculateHash call.
type timedHasher struct {
	h     cryptoprotect.HashCipher
	timer metrics.Timer
}

func newTimedHasher(h cryptoprotect.HashCipher) *timedHasher {
	return &timedHasher{h: h, timer: metrics.NewTimer()}
}

func (th *timedHasher) hash(msg []byte) []byte {
	start := time.Now()
	d := th.h.CalculateHash(msg)
	th.timer.UpdateSince(start)
	return d
}

func (th *timedHasher) meanLatency() time.Duration {
	return time.Duration(th.timer.Mean())
}

func (th *timedHasher) stop() { th.timer.Stop() }

const (
	VerdictGood       = `good`
	VerdictAcceptable = `acceptable`
	VerdictWeak       = `weak`
)

/*
Verdict grades an avalanche coefficient.

	(0.45, 0.55) good, (0.40, 0.60) acceptable, anything else weak.
*/
func Verdict(coefficient float64) string {
	switch {
	case coefficient > 0.45 && coefficient < 0.55:
		return VerdictGood
	case coefficient > 0.40 && coefficient < 0.60:
		return VerdictAcceptable
	}
	return VerdictWeak
}
