// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package cryptoprotect

import (
	"errors"
	"strings"

	hashciphers "sm3lab/cryptoProtect/hashCiphers"
	defErr "sm3lab/defErr"
)

/*
	Every hash function the evaluation harness can be pointed at.
	The harness only ever calls CalculateHash, so any fixed-size digest fits;
	the SM3 of this module is the default, the rest serve as comparisons.
*/

type hash_cipher_choice uint // hash crypto alias

const (
	PICK_SM3           hash_cipher_choice = iota + 1 // sm3 of this module
	PICK_SM3_REFERENCE                               // sm3 of gmsm
	PICK_SHA256                                      // sha256
	PICK_SHA3_256                                    // sha3-256
	PICK_BLAKE2B256                                  // blake2b256
	PICK_BLAKE2S256                                  // blake2s256
)

var ErrUnknownHashCipher = errors.New(`unknown hash cipher`)

var hashNames = map[string]hash_cipher_choice{
	`sm3`:         PICK_SM3,
	`sm3-ref`:     PICK_SM3_REFERENCE,
	`sha256`:      PICK_SHA256,
	`sha3-256`:    PICK_SHA3_256,
	`blake2b-256`: PICK_BLAKE2B256,
	`blake2s-256`: PICK_BLAKE2S256,
}

type HashCipher interface {
	CalculateHash(msg []byte) []byte // not for file
	GetHashLen() uint64
}

func NewHashCipher(choice hash_cipher_choice) (HashCipher, error) {
	switch choice {
	case PICK_SM3:
		return &hashciphers.SM3{}, nil
	case PICK_SM3_REFERENCE:
		return &hashciphers.SM3Reference{}, nil
	case PICK_SHA256:
		return &hashciphers.Sha256{}, nil
	case PICK_SHA3_256:
		return &hashciphers.Sha3_256{}, nil
	case PICK_BLAKE2B256:
		return &hashciphers.Blake2b256{}, nil
	case PICK_BLAKE2S256:
		return &hashciphers.Blake2s256{}, nil
	}
	return nil, ErrUnknownHashCipher
}

// name is matched case-insensitively, an empty name picks sm3.
func PickHashCipher(name string) (HashCipher, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == `` {
		return NewHashCipher(PICK_SM3)
	}
	choice, ok := hashNames[name]
	if !ok {
		return nil, defErr.Concat(ErrUnknownHashCipher, `name: `+name)
	}
	return NewHashCipher(choice)
}

// names accepted by PickHashCipher.
func HashCipherNames() []string {
	return []string{`sm3`, `sm3-ref`, `sha256`, `sha3-256`, `blake2b-256`, `blake2s-256`}
}
