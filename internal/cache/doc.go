// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package cache provides the in-memory data structures used around the
recommendation engine.

# Response Cache

Cache is a size-bounded LRU cache with per-entry TTL. The API layer uses
it for recommendation and browse responses, which are pure functions of
the loaded model snapshot and the request parameters:

	c := cache.New(1024, 5*time.Minute)
	key := cache.GenerateKey("browse", params)
	if v, ok := c.Get(key); ok {
	    return v
	}

Expired entries are removed lazily on Get or in bulk by CleanupExpired.

# Title Trie

Trie indexes movie titles case-insensitively. It serves exact title
lookups and prefix suggestions:

	trie := cache.NewTrie()
	trie.Insert("Toy Story", 0, 21.9)
	row, ok := trie.Exact("toy story")    // 0, true
	hits := trie.Prefix("toy", 10)        // weight descending

A Trie is built once and then only read, so it needs no locking after
construction. Several rows may share a title; Exact returns the first one
inserted.
*/
package cache
