// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package utils

import (
	"os"
	"path/filepath"
)

// get absolute path of the directory holding the running binary.
func GetRunPath() (string, error) {
	path, err := filepath.Abs(filepath.Dir(os.Args[0]))
	return path, err
}

/*
resolve inp against the binary's directory unless it is absolute or
already reachable from the working directory.
*/
func ResolveNearBinary(inp string) string {
	if filepath.IsAbs(inp) {
		return inp
	}
	if _, err := os.Stat(inp); err == nil {
		return inp
	}
	dir, err := GetRunPath()
	if err != nil {
		return inp
	}
	return filepath.Join(dir, inp)
}
