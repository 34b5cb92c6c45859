package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/maximizer/pkg/saturate"
)

// Report is the JSON form of a finished run.
type Report struct {
	RunID    string         `json:"run_id,omitempty"`
	Variant  string         `json:"variant"`
	Matcher  string         `json:"matcher"`
	Alphabet string         `json:"alphabet"`
	Lines    []string       `json:"lines"`
	Stats    saturate.Stats `json:"stats"`
}

// WriteText writes lines to w, one per row.
func WriteText(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}

// WriteJSON encodes r as indented JSON and writes it to w.
// The output can be decoded again with [ReadReport].
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadReport decodes a report written by [WriteJSON].
func ReadReport(rd io.Reader) (Report, error) {
	var r Report
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return Report{}, fmt.Errorf("decode: %w", err)
	}
	return r, nil
}

// ExportJSON writes r to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(r Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, r)
}
