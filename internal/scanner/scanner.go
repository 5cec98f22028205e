// file: internal/scanner/scanner.go
// version: 1.7.0
// guid: 882c9137-0c1d-4bb0-8025-4f1a8b578833

package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/audiobiblio/tagsuggest/internal/config"
)

// Folder is one directory containing audio files. Files holds full
// paths in lexical order; ordering for tagging purposes is decided
// later by the suggestion pipeline.
type Folder struct {
	Path  string
	Files []string
}

// FindAudioFolders walks rootDir and returns every directory that
// directly contains at least one supported audio file, sorted by path.
// Hidden directories are skipped.
func FindAudioFolders(rootDir string) ([]Folder, error) {
	return FindAudioFoldersParallel(rootDir, 1)
}

// FindAudioFoldersParallel walks with parallel workers for large trees
func FindAudioFoldersParallel(rootDir string, workers int) ([]Folder, error) {
	if workers < 1 {
		workers = 1
	}

	// Collect all directories first
	var dirs []string
	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != rootDir && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", rootDir, err)
	}

	// Parallel listing of directories
	var mu sync.Mutex
	var folders []Folder
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for _, dir := range dirs {
		wg.Add(1)
		go func(scanDir string) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			entries, err := os.ReadDir(scanDir)
			if err != nil {
				return
			}

			var files []string
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if isSupported(entry.Name()) {
					files = append(files, filepath.Join(scanDir, entry.Name()))
				}
			}
			if len(files) == 0 {
				return
			}
			sort.Strings(files)

			mu.Lock()
			folders = append(folders, Folder{Path: scanDir, Files: files})
			mu.Unlock()
		}(dir)
	}

	wg.Wait()
	sort.Slice(folders, func(i, j int) bool { return folders[i].Path < folders[j].Path })
	return folders, nil
}

// isSupported reports whether the filename carries a supported audio
// extension per the active configuration.
func isSupported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supportedExt := range config.AppConfig.SupportedExtensions {
		if ext == supportedExt {
			return true
		}
	}
	return false
}
