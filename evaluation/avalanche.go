// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package evaluation

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"time"

	metrics "github.com/rcrowley/go-metrics"

	cryptoprotect "sm3lab/cryptoProtect"
	defErr "sm3lab/defErr"
	utils "sm3lab/utils"
)

type AvalancheOptions struct {
	Trials   int
	MinLen   int
	MaxLen   int
	Progress int // log every Progress trials, 0 silences
}

type AvalancheReport struct {
	RunID       string
	Trials      int
	OutputBits  int
	Expected    float64 // half the output bits
	Mean        float64
	Min         int64
	Max         int64
	StdDev      float64 // around the mean
	IdealStdDev float64 // around Expected
	Coefficient float64 // Mean / OutputBits
	Verdict     string
	Elapsed     time.Duration
	// mean latency of a single hash call
	MeanHashLatency time.Duration
}

/*
Avalanche flips one random bit of random messages and measures how many
digest bits change.
*/
func Avalanche(h cryptoprotect.HashCipher, r *rand.Rand, opts AvalancheOptions) (*AvalancheReport, error) {
	if opts.MinLen < 1 || opts.MinLen > opts.MaxLen {
		return nil, defErr.Concat(ErrBadOptions, fmt.Sprintf(`length range [%d, %d]`, opts.MinLen, opts.MaxLen))
	}
	th := newTimedHasher(h)
	defer th.stop()

	outBits := int(h.GetHashLen()) << 3
	rep := &AvalancheReport{
		RunID:      newRunID(),
		Trials:     opts.Trials,
		OutputBits: outBits,
		Expected:   float64(outBits) / 2,
	}
	hist := metrics.NewHistogram(metrics.NewUniformSample(max(opts.Trials, 1)))
	var sumSquared float64

	start := time.Now()
	for i := 0; i < opts.Trials; i++ {
		msg := utils.RandomBytes(r, utils.RandomIntBetween(r, opts.MinLen, opts.MaxLen))
		modified := append([]byte(nil), msg...)
		utils.FlipBit(modified, r.Intn(len(msg)<<3))

		changed := utils.HammingDistance(th.hash(msg), th.hash(modified))
		hist.Update(int64(changed))
		dev := float64(changed) - rep.Expected
		sumSquared += dev * dev

		if opts.Progress > 0 && (i+1)%opts.Progress == 0 {
			log.Printf(`[avalanche] %d/%d trials done`, i+1, opts.Trials)
		}
	}
	rep.Elapsed = time.Since(start)
	rep.MeanHashLatency = th.meanLatency()

	if opts.Trials > 0 {
		rep.Mean = hist.Mean()
		rep.Min = hist.Min()
		rep.Max = hist.Max()
		rep.StdDev = hist.StdDev()
		rep.IdealStdDev = math.Sqrt(sumSquared / float64(opts.Trials))
		rep.Coefficient = rep.Mean / float64(outBits)
	}
	rep.Verdict = Verdict(rep.Coefficient)
	return rep, nil
}

func (rep *AvalancheReport) Print(w io.Writer) {
	fmt.Fprintln(w, `===== avalanche (single bit) =====`)
	fmt.Fprintf(w, "run:                   %s\n", rep.RunID)
	fmt.Fprintf(w, "trials:                %d\n", rep.Trials)
	fmt.Fprintf(w, "digest bits:           %d\n", rep.OutputBits)
	fmt.Fprintf(w, "expected change:       %.1f (50%%)\n", rep.Expected)
	fmt.Fprintf(w, "mean change:           %.2f\n", rep.Mean)
	fmt.Fprintf(w, "min / max change:      %d / %d\n", rep.Min, rep.Max)
	fmt.Fprintf(w, "std dev (mean/ideal):  %.2f / %.2f\n", rep.StdDev, rep.IdealStdDev)
	fmt.Fprintf(w, "avalanche coefficient: %.4f (%.2f%%)\n", rep.Coefficient, rep.Coefficient*100)
	fmt.Fprintf(w, "verdict:               %s\n", rep.Verdict)
	fmt.Fprintf(w, "elapsed:               %s (mean %s per hash)\n", rep.Elapsed, rep.MeanHashLatency)
}
