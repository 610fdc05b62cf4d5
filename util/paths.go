// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - path and address helpers for the daemon configuration
package util

import (
	"os"
	"path/filepath"
)

// AbsolutePath - relative paths are taken from directory
func AbsolutePath(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Join(directory, filePath)
}

// FileExists - true if anything exists at name
func FileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
