// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"

	config "sm3lab/config"
	cryptoprotect "sm3lab/cryptoProtect"
	hashciphers "sm3lab/cryptoProtect/hashCiphers"
	defErr "sm3lab/defErr"
	evaluation "sm3lab/evaluation"
	sm3 "sm3lab/sm3"
)

const (
	readBufSize = 4096
	// longer lines are hashed in full but echoed and matched by their head only.
	echoLimit = 1024
)

const usage = `===== SM3 test suite =====
usage:
  <any text>  hash the line with SM3
  test        standard test vectors
  collision   random collision search
  avalanche   single bit avalanche test
  batch       multi bit avalanche test
  help        show this message
  exit        quit
`

// session is one run of the interactive loop.
type session struct {
	cfg    *config.EvalConfig
	hasher cryptoprotect.HashCipher
	acc    *hashciphers.SM3 // digests input lines as they stream in
	out    io.Writer
}

// inputLine is one line of input without its terminator.
type inputLine struct {
	head   []byte // at most echoLimit leading bytes
	length int
	digest []byte
}

func (ln *inputLine) whole() bool { return ln.length <= echoLimit }

func newSession(cfg *config.EvalConfig, out io.Writer) (*session, error) {
	h, err := cryptoprotect.PickHashCipher(cfg.HashCipher)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, hasher: h, acc: &hashciphers.SM3{}, out: out}, nil
}

/*
run reads commands from in until `exit` or EOF.

	The prompt is only printed when prompt is true. Lines of any length are
	accepted, they are hashed chunk by chunk as they arrive.
*/
func (s *session) run(in io.Reader, prompt bool) error {
	fmt.Fprint(s.out, usage)
	r := bufio.NewReaderSize(in, readBufSize)
	for {
		if prompt {
			fmt.Fprint(s.out, `command: `)
		}
		ln, err := s.readLine(r)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return defErr.DescribeThenConcat(`read input`, err)
		}
		quit, err := s.dispatch(ln)
		if err != nil {
			log.Println(err)
		}
		if quit {
			fmt.Fprintln(s.out, `bye.`)
			return nil
		}
	}
}

// readLine feeds every fragment of the next line to the accumulator.
// io.EOF is only returned when no byte of a new line was read.
func (s *session) readLine(r *bufio.Reader) (*inputLine, error) {
	ln := &inputLine{}
	s.acc.NewHasher()
	for {
		frag, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && ln.length > 0 {
				break
			}
			return nil, err
		}
		s.acc.Accumulate(frag)
		ln.length += len(frag)
		if room := echoLimit - len(ln.head); room > 0 {
			ln.head = append(ln.head, frag[:min(room, len(frag))]...)
		}
		if !isPrefix {
			break
		}
	}
	ln.digest = s.acc.AggregatedHash()
	return ln, nil
}

func (s *session) dispatch(ln *inputLine) (bool, error) {
	cmd := ``
	if ln.whole() {
		cmd = string(ln.head)
	}
	switch cmd {
	case `exit`:
		return true, nil
	case `help`:
		fmt.Fprint(s.out, usage)
	case `test`:
		evaluation.PrintVectors(s.out, evaluation.CheckVectors(s.hasher))
	case `collision`:
		return false, s.collision()
	case `avalanche`:
		return false, s.avalanche()
	case `batch`:
		return false, s.batch()
	default:
		if ln.whole() {
			fmt.Fprintf(s.out, "%s SM3: %s\n\n", ln.head, sm3.Hex(ln.digest))
		} else {
			fmt.Fprintf(s.out, "%s... (%d bytes) SM3: %s\n\n", ln.head, ln.length, sm3.Hex(ln.digest))
		}
	}
	return false, nil
}

func (s *session) newRand(task string) *rand.Rand {
	r, seed := evaluation.NewRand(s.cfg.Seed)
	fmt.Fprintf(s.out, "%s with %s, seed %d\n", task, s.cfg.HashCipher, seed)
	return r
}

func (s *session) collision() error {
	rep, err := evaluation.CollisionSearch(s.hasher, s.newRand(`collision search`), evaluation.CollisionOptions{
		Pairs:     s.cfg.Collision.Pairs,
		MaxLen:    s.cfg.Collision.MaxLen,
		IndexPath: s.cfg.Collision.IndexPath,
		Progress:  1000,
	})
	if err != nil {
		return defErr.DescribeThenConcat(`collision`, err)
	}
	rep.Print(s.out)
	return nil
}

func (s *session) avalanche() error {
	rep, err := evaluation.Avalanche(s.hasher, s.newRand(`avalanche`), evaluation.AvalancheOptions{
		Trials:   s.cfg.Avalanche.Trials,
		MinLen:   s.cfg.Avalanche.MinLen,
		MaxLen:   s.cfg.Avalanche.MaxLen,
		Progress: 100,
	})
	if err != nil {
		return defErr.DescribeThenConcat(`avalanche`, err)
	}
	rep.Print(s.out)
	return nil
}

func (s *session) batch() error {
	rep, err := evaluation.BatchAvalanche(s.hasher, s.newRand(`batch avalanche`), evaluation.BatchOptions{
		Message:         []byte(s.cfg.Batch.Message),
		TestsPerLevel:   s.cfg.Batch.TestsPerLevel,
		FlipProbability: s.cfg.Batch.FlipProbability,
	})
	if err != nil {
		return defErr.DescribeThenConcat(`batch`, err)
	}
	rep.Print(s.out)
	return nil
}
