// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Command cinematch queries CineMatch models offline and packs JSON exports
into the artifact layout the server loads.

	cinematch pack --catalog movies.json --matrix sim.json --hybrid hybrid.json --out models
	cinematch --models-dir models recommend "Toy Story" -n 5
	cinematch --models-dir models browse Comedy --sort popularity -o yaml
	cinematch --models-dir models batch Heat Jumanji -o json

Exit status is 1 when a title or genre does not resolve and 2 for any
other failure.
*/
package main
