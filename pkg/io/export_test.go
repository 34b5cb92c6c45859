package io

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/matzehuels/maximizer/pkg/saturate"
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, []string{"a abc", "ab ac"}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "a abc\nab ac\n" {
		t.Errorf("WriteText() = %q", got)
	}
}

func TestReportRoundTrip(t *testing.T) {
	r := Report{
		RunID:    "run-1",
		Variant:  "fixed",
		Matcher:  "hopcroft-karp",
		Alphabet: "abc",
		Lines:    []string{"a abc", "ab ac"},
		Stats:    saturate.Stats{Iterations: 2, Accepted: 2, Duration: time.Millisecond},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"memo_hits": 0`)) {
		t.Errorf("WriteJSON() should include stats fields:\n%s", buf.String())
	}

	got, err := ReadReport(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, r) {
		t.Errorf("ReadReport() = %+v, want %+v", got, r)
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportJSON(Report{Variant: "sparse", Lines: []string{"abc ..."}}, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"variant": "sparse"`)) {
		t.Errorf("exported file missing variant:\n%s", data)
	}
}
