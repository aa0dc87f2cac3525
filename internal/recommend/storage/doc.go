// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package storage reads and writes the precomputed model artifacts and
// assembles them into a recommend.Snapshot.
//
// # Artifacts
//
// A models directory holds three logical artifacts:
//
//	preprocessed_data.json                  catalog, {"movies": [...]}
//	content_based_models_improved.gob.gz    similarity matrix (preferred)
//	content_based_models.gob.gz             similarity matrix (fallback)
//	hybrid_model_improved.json              hybrid weights (preferred)
//	hybrid_model_lightweight.json           hybrid weights (fallback)
//
// Catalog genres may be stored as plain names or as {"name": ...}
// objects; both decode to the same list.
//
// # Similarity Format
//
// The similarity matrix is stored in a gob envelope:
//
//	structure:
//	  - Metadata (ArtifactMetadata)
//	  - CompressedData (gzip-compressed gob-encoded similarityState)
//
// On load the payload is decompressed and its SHA-256 checksum compared
// with the stored one. A mismatch is a load error. When the payload
// carries movie IDs they must match the catalog order row for row.
//
// # Usage
//
//	snap, err := storage.NewLoader("/data/models", logger).Load(ctx)
//	if err != nil {
//	    // *recommend.LoadError; the service cannot start
//	}
//
// # Thread Safety
//
// Store serializes writes and allows concurrent reads. Writes go through
// a temp file and rename, so readers never see a partial artifact.
package storage
