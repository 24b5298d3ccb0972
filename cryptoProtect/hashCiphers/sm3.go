// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package hashciphers

import (
	gmsm3 "github.com/emmansun/gmsm/sm3"

	"sm3lab/sm3"
)

// SM3 backed by this module's engine.
type SM3 struct {
	hasher *sm3.Context
}

func (sm *SM3) CalculateHash(msg []byte) []byte {
	tmp := sm3.Sum(msg)
	return tmp[:]
}

func (sm *SM3) GetHashLen() uint64 { return sm3.Size }

func (sm *SM3) NewHasher() {
	if sm.hasher != nil {
		sm.hasher.Init()
		return
	}
	sm.hasher = sm3.New()
}

func (sm *SM3) Accumulate(msg []byte) (cnt int, err error) {
	if sm.hasher == nil {
		sm.NewHasher()
	}
	return sm.hasher.Write(msg)
}

// digest of everything accumulated, the accumulator starts over afterwards.
func (sm *SM3) AggregatedHash() []byte {
	if sm.hasher == nil {
		return nil
	}
	tmp := sm.hasher.Finalize()
	return tmp[:]
}

// SM3 of github.com/emmansun/gmsm, kept as an independent reference.
type SM3Reference struct{}

func (sm *SM3Reference) CalculateHash(msg []byte) []byte {
	tmp := gmsm3.Sum(msg)
	return tmp[:]
}

func (sm *SM3Reference) GetHashLen() uint64 { return uint64(gmsm3.Size) }
