// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/recommend/storage"
)

const catalogExport = `{"movies": [
  {"movie_id": 862, "title": "Toy Story", "overview": "A cowboy doll is threatened by a space ranger.",
   "release_year": 1995, "vote_average": 7.7, "vote_count": 5415, "popularity": 21.9,
   "genres": ["Animation", "Comedy", {"name": "Family"}]},
  {"movie_id": 863, "title": "Toy Story 2", "overview": "Woody is stolen by a toy collector.",
   "release_year": 1999, "vote_average": 7.3, "vote_count": 3914, "popularity": 17.5,
   "genres": ["Animation", "Comedy", "Family"]},
  {"movie_id": 8844, "title": "Jumanji", "overview": "A magical board game.",
   "release_year": 1995, "vote_average": 6.9, "vote_count": 2413, "popularity": 17.0,
   "genres": ["Adventure", "Fantasy", "Family"]},
  {"movie_id": 949, "title": "Heat", "overview": "A group of professional bank robbers.",
   "vote_average": 8.0, "vote_count": 30, "popularity": 5.0,
   "genres": ["Action", "Crime", "Drama"]}
]}`

const matrixExport = `{"movie_ids": [862, 863, 8844, 949], "similarity": [
  [1.0, 0.9, 0.9, 0.2],
  [0.9, 1.0, 0.4, 0.1],
  [0.9, 0.4, 1.0, 0.3],
  [0.2, 0.1, 0.3, 1.0]
]}`

const hybridExport = `{"weights": {"content": 0.6, "popularity": 0.2, "rating": 0.2}}`

// writeExports writes the three JSON exports and returns their paths.
func writeExports(t *testing.T, dir, catalog, matrix, hybrid string) (string, string, string) {
	t.Helper()
	paths := [3]string{
		filepath.Join(dir, "catalog.json"),
		filepath.Join(dir, "matrix.json"),
		filepath.Join(dir, "hybrid.json"),
	}
	for i, body := range []string{catalog, matrix, hybrid} {
		require.NoError(t, os.WriteFile(paths[i], []byte(body), 0o600))
	}
	return paths[0], paths[1], paths[2]
}

// runCLI executes the root command and returns what it wrote to stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// packedModels packs the fixture exports and returns the models directory.
func packedModels(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	catalog, matrix, hybrid := writeExports(t, dir, catalogExport, matrixExport, hybridExport)
	modelsDir := filepath.Join(dir, "models")

	_, err := runCLI(t, "pack", "--catalog", catalog, "--matrix", matrix, "--hybrid", hybrid, "--out", modelsDir)
	require.NoError(t, err)
	return modelsDir
}

func decodeJSON(t *testing.T, out string) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &v), "output: %s", out)
	return v
}

// ---------------------------------------------------------------------------
// pack
// ---------------------------------------------------------------------------

func TestPack_WritesLoadableArtifacts(t *testing.T) {
	dir := t.TempDir()
	catalog, matrix, hybrid := writeExports(t, dir, catalogExport, matrixExport, hybridExport)
	modelsDir := filepath.Join(dir, "models")

	out, err := runCLI(t, "-o", "json", "pack", "--catalog", catalog, "--matrix", matrix, "--hybrid", hybrid, "--out", modelsDir)
	require.NoError(t, err)

	summary := decodeJSON(t, out)
	assert.EqualValues(t, 4, summary["movies"])
	assert.EqualValues(t, 8, summary["genres"])

	for _, name := range []string{storage.CatalogFile, storage.SimilarityImprovedFile, storage.HybridImprovedFile} {
		assert.FileExists(t, filepath.Join(modelsDir, name))
	}
}

func TestPack_RejectsMisalignedMatrix(t *testing.T) {
	dir := t.TempDir()
	threeRows := `[[1.0, 0.5, 0.1], [0.5, 1.0, 0.2], [0.1, 0.2, 1.0]]`
	catalog, matrix, hybrid := writeExports(t, dir, catalogExport, threeRows, hybridExport)
	modelsDir := filepath.Join(dir, "models")

	_, err := runCLI(t, "pack", "--catalog", catalog, "--matrix", matrix, "--hybrid", hybrid, "--out", modelsDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, recommend.ErrLoad)
	assert.NoDirExists(t, modelsDir)
}

func TestPack_RejectsWrongMovieOrder(t *testing.T) {
	dir := t.TempDir()
	swapped := `{"movie_ids": [863, 862, 8844, 949], "similarity": [
	  [1.0, 0.9, 0.9, 0.2], [0.9, 1.0, 0.4, 0.1], [0.9, 0.4, 1.0, 0.3], [0.2, 0.1, 0.3, 1.0]]}`
	catalog, matrix, hybrid := writeExports(t, dir, catalogExport, swapped, hybridExport)

	_, err := runCLI(t, "pack", "--catalog", catalog, "--matrix", matrix, "--hybrid", hybrid, "--out", filepath.Join(dir, "models"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "movie_ids do not match")
}

func TestPack_RejectsMalformedWeights(t *testing.T) {
	dir := t.TempDir()
	catalog, matrix, hybrid := writeExports(t, dir, catalogExport, matrixExport, `{"weights": {"ensemble": 0.5}}`)

	_, err := runCLI(t, "pack", "--catalog", catalog, "--matrix", matrix, "--hybrid", hybrid, "--out", filepath.Join(dir, "models"))
	require.Error(t, err)
	assert.ErrorIs(t, err, recommend.ErrMalformedWeights)
}

func TestPack_RequiresInputs(t *testing.T) {
	_, err := runCLI(t, "pack", "--out", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestDecodeMatrix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		rows    int
		ids     int
		wantErr bool
	}{
		{"bare rows", `[[1, 0], [0, 1]]`, 2, 0, false},
		{"object with ids", `{"movie_ids": [1, 2], "similarity": [[1, 0], [0, 1]]}`, 2, 2, false},
		{"object without similarity", `{"movie_ids": [1, 2]}`, 0, 0, true},
		{"not json", `nope`, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := decodeMatrix([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, doc.Similarity, tt.rows)
			assert.Len(t, doc.MovieIDs, tt.ids)
		})
	}
}

// ---------------------------------------------------------------------------
// queries
// ---------------------------------------------------------------------------

func TestRecommend_Content(t *testing.T) {
	models := packedModels(t)

	out, err := runCLI(t, "--models-dir", models, "-o", "json", "recommend", "toy story", "--mode", "content", "-n", "2")
	require.NoError(t, err)

	resp := decodeJSON(t, out)
	assert.Equal(t, "toy story", resp["query_movie"])

	recs, ok := resp["recommendations"].([]any)
	require.True(t, ok)
	require.Len(t, recs, 2)
	assert.Equal(t, "Toy Story 2", recs[0].(map[string]any)["title"])
	assert.Equal(t, "Jumanji", recs[1].(map[string]any)["title"])
}

func TestRecommend_Hybrid(t *testing.T) {
	models := packedModels(t)

	out, err := runCLI(t, "--models-dir", models, "-o", "json", "recommend", "Heat", "-n", "3")
	require.NoError(t, err)

	resp := decodeJSON(t, out)
	assert.Equal(t, "Heat", resp["query_movie"])
	assert.Len(t, resp["recommendations"], 3)
	assert.NotEmpty(t, resp["weights"])
}

func TestRecommend_Errors(t *testing.T) {
	models := packedModels(t)

	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"unknown title", []string{"recommend", "Casablanca"}, recommend.ErrNotFound},
		{"bad mode", []string{"recommend", "Heat", "--mode", "popular"}, recommend.ErrInvalidMode},
		{"unknown genre", []string{"browse", "Western"}, recommend.ErrGenreNotFound},
		{"bad sort", []string{"browse", "Comedy", "--sort", "alphabetical"}, recommend.ErrInvalidSort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, append([]string{"--models-dir", models}, tt.args...)...)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestBrowse_YAML(t *testing.T) {
	models := packedModels(t)

	out, err := runCLI(t, "--models-dir", models, "-o", "yaml", "browse", "Comedy")
	require.NoError(t, err)

	var resp map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Comedy", resp["genre"])
	assert.Equal(t, 2, resp["total_found"])
	assert.Equal(t, "rating", resp["sort_by"])
}

func TestSearch(t *testing.T) {
	models := packedModels(t)

	out, err := runCLI(t, "--models-dir", models, "-o", "json", "search", "toy")
	require.NoError(t, err)

	resp := decodeJSON(t, out)
	assert.EqualValues(t, 2, resp["count"])
}

func TestBatch_ReportsFailuresPerTitle(t *testing.T) {
	models := packedModels(t)

	out, err := runCLI(t, "--models-dir", models, "-o", "json", "batch", "Toy Story", "Toy Story", "Casablanca", "-n", "2")
	require.NoError(t, err)

	resp := decodeJSON(t, out)
	assert.EqualValues(t, 3, resp["batch_size"])
	assert.Equal(t, "hybrid", resp["model_type"])

	results, ok := resp["results"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, results, 2)
	assert.Contains(t, results["Casablanca"], "error")
	assert.Contains(t, results["Toy Story"], "recommendations")
}

func TestTextOutput(t *testing.T) {
	models := packedModels(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"info", []string{"info", "toy story"}, []string{"Toy Story", "1995", "Animation, Comedy, Family"}},
		{"genres", []string{"genres"}, []string{"Action", "Animation", "Drama"}},
		{"stats", []string{"stats"}, []string{"Movies", "4", storage.SimilarityImprovedFile}},
		{"recommend", []string{"recommend", "Jumanji", "--mode", "content"}, []string{"Because you liked Jumanji", "Toy Story"}},
		{"search miss", []string{"search", "zzz"}, []string{`No titles match "zzz"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, append([]string{"--models-dir", models}, tt.args...)...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRoot_InvalidOutputFormat(t *testing.T) {
	_, err := runCLI(t, "-o", "xml", "genres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --output")
}

func TestRoot_MissingModels(t *testing.T) {
	_, err := runCLI(t, "--models-dir", filepath.Join(t.TempDir(), "absent"), "stats")
	require.Error(t, err)
	assert.ErrorIs(t, err, recommend.ErrLoad)
}
