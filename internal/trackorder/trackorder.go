// file: internal/trackorder/trackorder.go
// version: 1.0.0
// guid: 2e7b4c9a-8f1d-4a6e-b3c5-0d9f6e2a8b4c

package trackorder

import (
	"log"
	"regexp"
	"sort"
	"strconv"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Order-determination sources recorded on the folder suggestion.
const (
	SourcePlaylist = "playlist"
	SourceFilename = "filename"
)

// Matches a leading track number: one or more digits, optionally
// preceded by whitespace ("01 - Title.mp3", " 2_Two.mp3").
var reNumericPrefix = regexp.MustCompile(`^\s*(\d+)`)

// Resolve determines a total order over the folder's file basenames and
// reports which signal produced it. With a playlist the playlist order
// wins; otherwise numeric filename prefixes sort ascending followed by
// the rest lexically. Every input file appears exactly once in the
// result regardless of playlist coverage.
func Resolve(files []string, playlistEntries []string) ([]string, string) {
	if len(playlistEntries) > 0 {
		return resolveFromPlaylist(files, playlistEntries), SourcePlaylist
	}
	return resolveFromFilenames(files), SourceFilename
}

// resolveFromPlaylist intersects the playlist with the files that
// actually exist (entries referencing missing files are dropped), then
// appends unlisted files in lexical order.
func resolveFromPlaylist(files []string, entries []string) []string {
	present := make(map[string]bool, len(files))
	for _, f := range files {
		present[f] = true
	}

	used := make(map[string]bool, len(entries))
	order := make([]string, 0, len(files))
	for _, e := range entries {
		if present[e] {
			if !used[e] {
				order = append(order, e)
				used[e] = true
			}
			continue
		}
		logNearMiss(e, files)
	}

	var leftovers []string
	for _, f := range files {
		if !used[f] {
			leftovers = append(leftovers, f)
			used[f] = true
		}
	}
	sort.Strings(leftovers)
	return append(order, leftovers...)
}

// resolveFromFilenames sorts numeric-prefixed files ascending by parsed
// integer value (stable, so ties keep input order) and appends the
// remaining files in lexical order.
func resolveFromFilenames(files []string) []string {
	type numbered struct {
		name string
		num  int
	}
	var withNum []numbered
	var rest []string
	for _, f := range files {
		m := reNumericPrefix.FindStringSubmatch(f)
		if m == nil {
			rest = append(rest, f)
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			rest = append(rest, f)
			continue
		}
		withNum = append(withNum, numbered{name: f, num: n})
	}

	sort.SliceStable(withNum, func(i, j int) bool {
		return withNum[i].num < withNum[j].num
	})
	sort.Strings(rest)

	order := make([]string, 0, len(files))
	for _, n := range withNum {
		order = append(order, n.name)
	}
	return append(order, rest...)
}

// logNearMiss reports a playlist entry with no matching file, naming the
// closest actual filename when fuzzy matching finds one. Informational
// only; hints never influence the resolved order.
func logNearMiss(entry string, files []string) {
	ranks := fuzzy.RankFindNormalizedFold(entry, files)
	if len(ranks) == 0 {
		log.Printf("[DEBUG] trackorder: playlist entry %q matches no file in folder", entry)
		return
	}
	sort.Sort(ranks)
	log.Printf("[DEBUG] trackorder: playlist entry %q matches no file in folder (closest: %q)", entry, ranks[0].Target)
}
