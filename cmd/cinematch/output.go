// CineMatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

func validFormat(f string) bool {
	switch f {
	case formatJSON, formatYAML, formatText:
		return true
	default:
		return false
	}
}

var titleStyle = lipgloss.NewStyle().Bold(true)

// render writes v in the requested format. text draws the human-readable
// form and is only called for the text format.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// writeHeading prints a bold one-line heading.
func writeHeading(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf(format, args...)))
	return err
}

// writeTable prints rows under headers with a normal border.
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// writeFields prints label/value pairs as a two-column table.
func writeFields(w io.Writer, fields [][2]string) error {
	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{f[0], f[1]}
	}
	return writeTable(w, []string{"Field", "Value"}, rows)
}

func score(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func rating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func genres(g []string) string {
	return strings.Join(g, ", ")
}
