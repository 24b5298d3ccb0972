// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package defErr

import "errors"

// err first, description after. errors.Is still sees err.
func Concat(err error, description string) error {
	return errors.Join(err, errors.New(description))
}

func DescribeThenConcat(description string, err error) error {
	return errors.Join(errors.New(description), err)
}

// append toAdd to an existing chain, curr may be nil.
func PushErrorToErrChain(curr, toAdd error) error {
	if toAdd == nil {
		return curr
	}
	if curr == nil {
		return toAdd
	}
	return errors.Join(curr, DescribeThenConcat(`<-`, toAdd))
}
