// file: internal/report/report.go
// version: 1.0.0
// guid: 6d3b8f2c-9a4e-4c7b-8e1d-5f2a7c9b3e6d

// Package report writes suggestion sidecar files and renders review
// tables for the console.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"gopkg.in/yaml.v3"

	"github.com/audiobiblio/tagsuggest/internal/suggest"
)

// Version is the tool version stamped into every sidecar.
const Version = "1.0.0"

// ScanInfo identifies one suggestion run.
type ScanInfo struct {
	ScriptVersion string `json:"script_version" yaml:"script_version"`
	RunID         string `json:"run_id" yaml:"run_id"`
	ScanDate      string `json:"scan_date" yaml:"scan_date"`
}

// Document is the sidecar payload for one folder.
type Document struct {
	Scan       ScanInfo                 `json:"_scan_metadata" yaml:"_scan_metadata"`
	Suggestion suggest.FolderSuggestion `json:"suggestion" yaml:"suggestion"`
}

// NewScanInfo stamps a fresh run: current version, a new ULID, and the
// wall clock in RFC 3339.
func NewScanInfo() ScanInfo {
	now := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	return ScanInfo{
		ScriptVersion: Version,
		RunID:         ulid.MustNew(ulid.Timestamp(now), entropy).String(),
		ScanDate:      now.Format(time.RFC3339),
	}
}

// Write encodes the document to w in the given format ("json" or
// "yaml").
func Write(w io.Writer, doc Document, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

// SidecarPath returns the sidecar location for a folder.
func SidecarPath(folder, filename string) string {
	return filepath.Join(folder, filename)
}

// WriteSidecar writes the document next to the folder's audio files.
// The audio files themselves are never touched.
func WriteSidecar(folder, filename, format string, doc Document) error {
	f, err := os.Create(SidecarPath(folder, filename))
	if err != nil {
		return fmt.Errorf("failed to create sidecar: %w", err)
	}
	defer f.Close()
	return Write(f, doc, format)
}

// SidecarExists reports whether a folder already carries a sidecar.
func SidecarExists(folder, filename string) bool {
	_, err := os.Stat(SidecarPath(folder, filename))
	return err == nil
}
