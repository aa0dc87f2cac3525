// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package cache provides read-optimized lookup structures built once from
// the movie catalog.
package cache

import (
	"sort"
	"strings"
)

// TrieNode represents a node in the Trie.
type TrieNode struct {
	children map[rune]*TrieNode
	entries  []TrieEntry // Rows whose normalized key ends here, in insertion order
}

// TrieEntry is a row stored under a key.
type TrieEntry struct {
	Value  string  // Original (un-normalized) key
	Row    int     // Catalog row index
	Weight float64 // Ranking weight for prefix results
}

// Trie is a case-insensitive prefix tree mapping titles to catalog rows.
//
// A Trie is built by a single goroutine and then only read. Reads take no
// locks, so Insert must not be called once the trie is shared.
//
// Key properties:
//   - O(m) exact and prefix lookup where m = key length
//   - Exact lookup returns the first row inserted for a key
//   - Prefix results are ordered by weight (descending), then row
type Trie struct {
	root *TrieNode
	size int // Number of entries
	keys int // Number of distinct normalized keys
}

// NewTrie creates an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// newTrieNode creates a new TrieNode.
func newTrieNode() *TrieNode {
	return &TrieNode{
		children: make(map[rune]*TrieNode),
	}
}

// normalizeKey lowercases the key.
func normalizeKey(key string) string {
	return strings.ToLower(key)
}

// Insert adds a row under value. Rows inserted under the same normalized
// key are kept in insertion order. Empty values are ignored.
func (t *Trie) Insert(value string, row int, weight float64) bool {
	if value == "" {
		return false
	}

	node := t.walk(normalizeKey(value), true)
	if len(node.entries) == 0 {
		t.keys++
	}
	node.entries = append(node.entries, TrieEntry{Value: value, Row: row, Weight: weight})
	t.size++
	return true
}

// Exact returns the first row inserted under the normalized key.
func (t *Trie) Exact(value string) (int, bool) {
	if value == "" {
		return 0, false
	}

	node := t.walk(normalizeKey(value), false)
	if node == nil || len(node.entries) == 0 {
		return 0, false
	}
	return node.entries[0].Row, true
}

// HasPrefix checks if any key starts with the given prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	if prefix == "" {
		return t.size > 0
	}
	return t.walk(normalizeKey(prefix), false) != nil
}

// Prefix returns up to limit entries whose key starts with prefix,
// ordered by weight (descending) then row (ascending).
func (t *Trie) Prefix(prefix string, limit int) []TrieEntry {
	if limit <= 0 {
		return nil
	}

	node := t.walk(normalizeKey(prefix), false)
	if node == nil {
		return nil
	}

	var results []TrieEntry
	collectEntries(node, &results)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Weight != results[j].Weight {
			return results[i].Weight > results[j].Weight
		}
		return results[i].Row < results[j].Row
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Size returns the number of entries.
func (t *Trie) Size() int {
	return t.size
}

// Keys returns the number of distinct normalized keys.
func (t *Trie) Keys() int {
	return t.keys
}

// walk follows key from the root, creating nodes when create is set.
// Returns nil if the path does not exist and create is false.
func (t *Trie) walk(key string, create bool) *TrieNode {
	node := t.root
	for _, ch := range key {
		next := node.children[ch]
		if next == nil {
			if !create {
				return nil
			}
			next = newTrieNode()
			node.children[ch] = next
		}
		node = next
	}
	return node
}

// collectEntries recursively collects all entries below node.
func collectEntries(node *TrieNode, results *[]TrieEntry) {
	*results = append(*results, node.entries...)
	for _, child := range node.children {
		collectEntries(child, results)
	}
}
