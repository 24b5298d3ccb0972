// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package cryptoprotect

import (
	"errors"
	"log"
	"testing"

	hashciphers "sm3lab/cryptoProtect/hashCiphers"
	utils "sm3lab/utils"
)

func TestPickHashCipher(t *testing.T) {
	for _, name := range HashCipherNames() {
		h, err := PickHashCipher(name)
		if err != nil {
			t.Fatalf(`%s: %v`, name, err)
		}
		out := h.CalculateHash([]byte(`hello world`))
		if uint64(len(out)) != h.GetHashLen() {
			t.Errorf(`%s: digest length %d, GetHashLen %d`, name, len(out), h.GetHashLen())
		}
		log.Println(name, utils.HexPrefix(out, 8))
	}

	h, err := PickHashCipher(`  SM3 `)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := h.(*hashciphers.SM3); !ok {
		t.Errorf(`got %T for SM3`, h)
	}
	if h, err = PickHashCipher(``); err != nil {
		t.Fatal(err)
	} else if _, ok := h.(*hashciphers.SM3); !ok {
		t.Errorf(`empty name picked %T`, h)
	}
}

func TestPickUnknownHashCipher(t *testing.T) {
	_, err := PickHashCipher(`md5`)
	if !errors.Is(err, ErrUnknownHashCipher) {
		t.Errorf(`got %v`, err)
	}
	if _, err := NewHashCipher(0); !errors.Is(err, ErrUnknownHashCipher) {
		t.Errorf(`got %v`, err)
	}
}

func TestSM3MatchesReference(t *testing.T) {
	ours, ref := &hashciphers.SM3{}, &hashciphers.SM3Reference{}
	msg := []byte(`hello words!!!!!!I am the storm that is approaching`)
	if ok, why := utils.CmpByte2Slices(ours.CalculateHash(msg), ref.CalculateHash(msg)); !ok {
		t.Error(why)
	}
}

func TestDigestLengths(t *testing.T) {
	for _, h := range []HashCipher{
		&hashciphers.SM3{}, &hashciphers.SM3Reference{}, &hashciphers.Sha256{},
		&hashciphers.Sha3_256{}, &hashciphers.Blake2b256{}, &hashciphers.Blake2s256{},
	} {
		if h.GetHashLen() != 32 {
			t.Errorf(`%T: GetHashLen = %d`, h, h.GetHashLen())
		}
	}
}

func TestSM3Accumulator(t *testing.T) {
	sm := &hashciphers.SM3{}
	if sm.AggregatedHash() != nil {
		t.Error(`hash before any input`)
	}
	sm.NewHasher()
	sm.Accumulate([]byte(`hello `))
	sm.Accumulate([]byte(`world`))
	got := sm.AggregatedHash()
	want := sm.CalculateHash([]byte(`hello world`))
	if ok, why := utils.CmpByte2Slices(got, want); !ok {
		t.Error(why)
	}
	// accumulator starts over
	sm.Accumulate([]byte(`abc`))
	if ok, why := utils.CmpByte2Slices(sm.AggregatedHash(), sm.CalculateHash([]byte(`abc`))); !ok {
		t.Error(why)
	}
}
