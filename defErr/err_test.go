package defErr

import (
	"errors"
	"log"
	"testing"
)

var errBase = errors.New(`base`)

func TestChains(t *testing.T) {
	err := Concat(errBase, `while reading`)
	if !errors.Is(err, errBase) {
		t.Error(`Concat lost the wrapped error`)
	}
	err = DescribeThenConcat(`outer`, err)
	if !errors.Is(err, errBase) {
		t.Error(`DescribeThenConcat lost the wrapped error`)
	}
	log.Println(err)

	if PushErrorToErrChain(nil, nil) != nil {
		t.Error(`nil chain should stay nil`)
	}
	if got := PushErrorToErrChain(nil, errBase); got != errBase {
		t.Errorf(`got %v`, got)
	}
	other := errors.New(`other`)
	chain := PushErrorToErrChain(errBase, other)
	if !errors.Is(chain, errBase) || !errors.Is(chain, other) {
		t.Error(`chain lost a member`)
	}
}
