// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "sort"

// selfScore is written over the query row before ranking.
const selfScore = -1.0

// topK returns up to k row indices ordered by descending score. The sort
// is stable, so equal scores keep catalog order. Row self is never
// returned, even when k exceeds N-1.
func topK(scores []float64, self, k int) []int {
	if k <= 0 {
		return []int{}
	}

	rows := make([]int, 0, len(scores))
	for i := range scores {
		if i != self {
			rows = append(rows, i)
		}
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return scores[rows[a]] > scores[rows[b]]
	})

	if len(rows) > k {
		rows = rows[:k]
	}
	return rows
}

// truncate limits rows to k entries. Non-positive k yields none.
func truncate(rows []int, k int) []int {
	if k <= 0 {
		return []int{}
	}
	if len(rows) > k {
		return rows[:k]
	}
	return rows
}
