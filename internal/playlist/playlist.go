// file: internal/playlist/playlist.go
// version: 1.1.0
// guid: 8a58eb16-3feb-47c5-af41-69a00d4ea7cf

// Package playlist locates and parses M3U playlists found next to the
// audio files of a folder.
package playlist

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Find returns the playlist file to use for a folder: the lexically
// first entry with an .m3u or .m3u8 extension, or the empty string when
// the folder carries none.
func Find(folder string) (string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return "", fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	var playlists []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".m3u", ".m3u8":
			playlists = append(playlists, entry.Name())
		}
	}
	if len(playlists) == 0 {
		return "", nil
	}
	sort.Strings(playlists)
	return filepath.Join(folder, playlists[0]), nil
}

// Entries parses a playlist file into the basenames of its media
// entries, in file order. Blank lines and # directives (EXTM3U,
// EXTINF) are skipped. Entries may use either path separator.
func Entries(playlistPath string) ([]string, error) {
	f, err := os.Open(playlistPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, basename(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read playlist: %w", err)
	}
	return names, nil
}

// ForFolder finds and parses the folder's playlist in one step. A
// folder without a playlist yields a nil slice and no error.
func ForFolder(folder string) ([]string, error) {
	p, err := Find(folder)
	if err != nil || p == "" {
		return nil, err
	}
	return Entries(p)
}

// basename strips any directory prefix from a playlist entry,
// normalizing Windows separators first.
func basename(entry string) string {
	return path.Base(strings.ReplaceAll(entry, "\\", "/"))
}
