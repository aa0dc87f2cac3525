// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// Artifact file names inside a models directory.
const (
	CatalogFile            = "preprocessed_data.json"
	SimilarityImprovedFile = "content_based_models_improved.gob.gz"
	SimilarityLegacyFile   = "content_based_models.gob.gz"
	HybridImprovedFile     = "hybrid_model_improved.json"
	HybridLegacyFile       = "hybrid_model_lightweight.json"
)

// Preference chains: the improved variant first, the legacy one as fallback.
var (
	SimilarityChain = []string{SimilarityImprovedFile, SimilarityLegacyFile}
	HybridChain     = []string{HybridImprovedFile, HybridLegacyFile}
)

// ArtifactMetadata describes a stored similarity matrix.
type ArtifactMetadata struct {
	// Name is the artifact file name.
	Name string `json:"name"`

	// Rows is the matrix dimension N.
	Rows int `json:"rows"`

	// SavedAt is when the artifact was written.
	SavedAt time.Time `json:"saved_at"`

	// Checksum is the SHA-256 checksum of the uncompressed payload.
	Checksum string `json:"checksum"`

	// SizeBytes is the compressed payload size in bytes.
	SizeBytes int64 `json:"size_bytes"`
}

// storedFile is the on-disk envelope for similarity artifacts.
type storedFile struct {
	Metadata       ArtifactMetadata
	CompressedData []byte
}

// similarityState is the gob payload inside storedFile.
type similarityState struct {
	// Size is N.
	Size int

	// Values holds N*N similarities, row-major.
	Values []float64

	// MovieIDs optionally pins the catalog order the matrix was built for.
	MovieIDs []int
}

// catalogDocument is the JSON layout of the catalog artifact.
type catalogDocument struct {
	Movies *[]movieRecord `json:"movies"`
}

// movieRecord is one catalog row as stored on disk.
type movieRecord struct {
	ID          *int      `json:"movie_id"`
	Title       *string   `json:"title"`
	Overview    string    `json:"overview"`
	ReleaseYear *int      `json:"release_year,omitempty"`
	VoteAverage float64   `json:"vote_average"`
	VoteCount   int       `json:"vote_count"`
	Popularity  float64   `json:"popularity"`
	Genres      genreList `json:"genres"`
}

// hybridDocument is the JSON layout of the hybrid artifact.
type hybridDocument struct {
	Weights          map[string]float64 `json:"weights"`
	PopularityScaled []float64          `json:"popularity_scaled,omitempty"`
	RatingScaled     []float64          `json:"rating_scaled,omitempty"`
}

// HybridArtifact is the decoded hybrid artifact.
type HybridArtifact struct {
	Weights          map[string]float64
	PopularityScaled []float64
	RatingScaled     []float64
}

// genreList decodes genres stored either as names or as {"name": ...}
// objects, keeping order and duplicates.
type genreList []string

// UnmarshalJSON implements json.Unmarshaler.
func (g *genreList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("genres: %w", err)
	}

	out := make([]string, 0, len(raw))
	for i, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			out = append(out, name)
			continue
		}

		var obj struct {
			Name *string `json:"name"`
		}
		if err := json.Unmarshal(item, &obj); err != nil || obj.Name == nil {
			return fmt.Errorf("genres[%d]: want a string or an object with a name", i)
		}
		out = append(out, *obj.Name)
	}

	*g = out
	return nil
}

// Store reads and writes the artifacts of one models directory.
type Store struct {
	baseDir string
	mu      sync.RWMutex
}

// NewStore creates a store rooted at baseDir. The directory is created on
// first write.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Dir returns the models directory.
func (s *Store) Dir() string {
	return s.baseDir
}

// Path returns the full path of an artifact file.
func (s *Store) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}

// SaveCatalog writes the catalog artifact.
func (s *Store) SaveCatalog(ctx context.Context, movies []recommend.Movie) error {
	records := make([]movieRecord, len(movies))
	for i := range movies {
		m := movies[i]
		id, title := m.ID, m.Title
		records[i] = movieRecord{
			ID:          &id,
			Title:       &title,
			Overview:    m.Overview,
			ReleaseYear: m.ReleaseYear,
			VoteAverage: m.VoteAverage,
			VoteCount:   m.VoteCount,
			Popularity:  m.Popularity,
			Genres:      genreList(m.Genres),
		}
	}

	data, err := json.Marshal(catalogDocument{Movies: &records})
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return s.writeFile(ctx, CatalogFile, data)
}

// LoadCatalog reads the catalog artifact. Missing file, missing "movies"
// key, or rows without movie_id or title are load errors.
func (s *Store) LoadCatalog(ctx context.Context) ([]recommend.Movie, error) {
	path := s.Path(CatalogFile)
	data, err := s.readFile(ctx, CatalogFile)
	if err != nil {
		return nil, &recommend.LoadError{Artifact: "catalog", Path: path, Err: err}
	}

	movies, err := DecodeCatalog(data)
	if err != nil {
		return nil, &recommend.LoadError{Artifact: "catalog", Path: path, Err: err}
	}
	return movies, nil
}

// DecodeCatalog parses a catalog document ({"movies": [...]}).
func DecodeCatalog(data []byte) ([]recommend.Movie, error) {
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Movies == nil {
		return nil, errors.New(`missing required key "movies"`)
	}

	movies := make([]recommend.Movie, len(*doc.Movies))
	for i, rec := range *doc.Movies {
		if rec.ID == nil || rec.Title == nil {
			return nil, fmt.Errorf("row %d: missing required key movie_id or title", i)
		}
		movies[i] = recommend.Movie{
			ID:          *rec.ID,
			Title:       *rec.Title,
			Overview:    rec.Overview,
			ReleaseYear: rec.ReleaseYear,
			VoteAverage: rec.VoteAverage,
			VoteCount:   rec.VoteCount,
			Popularity:  rec.Popularity,
			Genres:      []string(rec.Genres),
		}
	}
	return movies, nil
}

// SaveSimilarity writes a similarity matrix under name (one of
// SimilarityChain). movieIDs may be nil; when set it records the catalog
// order the matrix is aligned to.
func (s *Store) SaveSimilarity(ctx context.Context, name string, m *recommend.Matrix, movieIDs []int) error {
	var raw bytes.Buffer
	state := similarityState{Size: m.Size(), Values: m.Values(), MovieIDs: movieIDs}
	if err := gob.NewEncoder(&raw).Encode(state); err != nil {
		return fmt.Errorf("encode similarity: %w", err)
	}

	hash := sha256.Sum256(raw.Bytes())

	var compressed bytes.Buffer
	gzw := gzip.NewWriter(&compressed)
	if _, err := gzw.Write(raw.Bytes()); err != nil {
		return fmt.Errorf("compress similarity: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return fmt.Errorf("finalize compression: %w", err)
	}

	sf := storedFile{
		Metadata: ArtifactMetadata{
			Name:      name,
			Rows:      m.Size(),
			SavedAt:   time.Now().UTC(),
			Checksum:  hex.EncodeToString(hash[:]),
			SizeBytes: int64(compressed.Len()),
		},
		CompressedData: compressed.Bytes(),
	}

	var file bytes.Buffer
	if err := gob.NewEncoder(&file).Encode(sf); err != nil {
		return fmt.Errorf("encode similarity envelope: %w", err)
	}
	return s.writeFile(ctx, name, file.Bytes())
}

// LoadSimilarity reads the similarity artifact stored under name and
// verifies its checksum and shape.
func (s *Store) LoadSimilarity(ctx context.Context, name string) (*recommend.Matrix, []int, *ArtifactMetadata, error) {
	path := s.Path(name)
	fail := func(err error) (*recommend.Matrix, []int, *ArtifactMetadata, error) {
		return nil, nil, nil, &recommend.LoadError{Artifact: "similarity", Path: path, Err: err}
	}

	data, err := s.readFile(ctx, name)
	if err != nil {
		return fail(err)
	}

	var sf storedFile
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&sf); err != nil {
		return fail(fmt.Errorf("read envelope: %w", err))
	}

	gzr, err := gzip.NewReader(bytes.NewReader(sf.CompressedData))
	if err != nil {
		return fail(fmt.Errorf("decompress: %w", err))
	}
	defer func() { _ = gzr.Close() }() //nolint:errcheck // error on gzip close after read is not actionable

	raw, err := io.ReadAll(gzr)
	if err != nil {
		return fail(fmt.Errorf("read decompressed data: %w", err))
	}

	hash := sha256.Sum256(raw)
	if checksum := hex.EncodeToString(hash[:]); checksum != sf.Metadata.Checksum {
		return fail(fmt.Errorf("checksum mismatch: expected %s, got %s", sf.Metadata.Checksum, checksum))
	}

	var state similarityState
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&state); err != nil {
		return fail(fmt.Errorf("decode payload: %w", err))
	}

	m, err := recommend.NewMatrix(state.Size, state.Values)
	if err != nil {
		return fail(err)
	}
	if len(state.MovieIDs) != 0 && len(state.MovieIDs) != state.Size {
		return fail(fmt.Errorf("movie_ids has %d entries for a %d-row matrix", len(state.MovieIDs), state.Size))
	}

	return m, state.MovieIDs, &sf.Metadata, nil
}

// SaveHybrid writes a hybrid artifact under name (one of HybridChain).
func (s *Store) SaveHybrid(ctx context.Context, name string, h *HybridArtifact) error {
	data, err := json.Marshal(hybridDocument{
		Weights:          h.Weights,
		PopularityScaled: h.PopularityScaled,
		RatingScaled:     h.RatingScaled,
	})
	if err != nil {
		return fmt.Errorf("encode hybrid: %w", err)
	}
	return s.writeFile(ctx, name, data)
}

// LoadHybrid reads the hybrid artifact stored under name. The "weights"
// key is required; the scaled signals are optional.
func (s *Store) LoadHybrid(ctx context.Context, name string) (*HybridArtifact, error) {
	path := s.Path(name)
	data, err := s.readFile(ctx, name)
	if err != nil {
		return nil, &recommend.LoadError{Artifact: "hybrid", Path: path, Err: err}
	}

	h, err := DecodeHybrid(data)
	if err != nil {
		return nil, &recommend.LoadError{Artifact: "hybrid", Path: path, Err: err}
	}
	return h, nil
}

// DecodeHybrid parses a hybrid document. Only "weights" is required.
func DecodeHybrid(data []byte) (*HybridArtifact, error) {
	var doc hybridDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Weights == nil {
		return nil, errors.New(`missing required key "weights"`)
	}

	return &HybridArtifact{
		Weights:          doc.Weights,
		PopularityScaled: doc.PopularityScaled,
		RatingScaled:     doc.RatingScaled,
	}, nil
}

// Exists reports whether an artifact file is present.
func (s *Store) Exists(name string) (bool, error) {
	_, err := os.Stat(s.Path(name))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// writeFile atomically replaces an artifact file.
func (s *Store) writeFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.baseDir, 0o750); err != nil { //nolint:gosec // 0750 is acceptable for model storage
		return fmt.Errorf("create models directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.baseDir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() //nolint:errcheck // temp file is gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close() //nolint:errcheck // write error takes precedence
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.Path(name)); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

// readFile reads an artifact file.
func (s *Store) readFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.Path(name)) //nolint:gosec // name is one of the fixed artifact names
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return data, nil
}

// Register gob types for serialization.
//
//nolint:gochecknoinits // gob.Register must be called in init for type registration
func init() {
	gob.Register(similarityState{})
	gob.Register(ArtifactMetadata{})
	gob.Register(storedFile{})
}
