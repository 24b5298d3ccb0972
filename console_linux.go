//go:build linux
// +build linux

// SPDX-LICENSE-IDENTIFIER: GPL-2.0
// (C) 2024 Author: <kisfg@hotmail.com>
package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// a tty answers TCGETS, pipes and files do not.
func isTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	return err == nil
}
