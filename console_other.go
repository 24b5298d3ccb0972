//go:build !linux && !windows && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd
// +build !linux,!windows,!darwin,!dragonfly,!freebsd,!netbsd,!openbsd

// SPDX-LICENSE-IDENTIFIER: GPL-2.0
// (C) 2024 Author: <kisfg@hotmail.com>
package main

import "os"

// plan9, js and friends: character devices are as close as we get without an ioctl.
func isTerminal(f *os.File) bool {
	st, err := f.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice != 0
}
