// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// Exit codes.
const (
	ExitSuccess  = 0
	ExitNotFound = 1 // title or genre did not resolve
	ExitError    = 2 // bad arguments, unreadable artifacts, I/O
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		if errors.Is(err, recommend.ErrNotFound) || errors.Is(err, recommend.ErrGenreNotFound) {
			os.Exit(ExitNotFound)
		}
		os.Exit(ExitError)
	}
}
