//go:build darwin || dragonfly || freebsd || netbsd || openbsd
// +build darwin dragonfly freebsd netbsd openbsd

// SPDX-LICENSE-IDENTIFIER: GPL-2.0
// (C) 2024 Author: <kisfg@hotmail.com>
package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// BSD terminals answer TIOCGETA.
func isTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TIOCGETA)
	return err == nil
}
