package dictstack

import (
	"bufio"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/gskk/skkcore/internal/candidate"
	"github.com/gskk/skkcore/internal/dictstack/jisyo"
	"github.com/gskk/skkcore/internal/skkerr"
)

// StaticFile is a read-only, file-backed dictionary (spec §4.6), typically
// a large shared SKK-JISYO file. Grounded on
// original_source/src/dictionary/static_dict.rs.
type StaticFile struct {
	path    string
	encode  string
	logger  *log.Logger
	entries map[string]jisyo.Entry
	keys    []string // sorted midashi, for Complete
}

// LoadStaticFile reads and parses a jisyo file at path. encode is stored
// and passed on by Reload but not otherwise used: this implementation always
// decodes file content as UTF-8, so euc-jp files must be converted to UTF-8
// before loading. logger receives a line for every skipped malformed
// line (spec §7); a nil logger, matching cmd/imecored's injected-not-global
// logger idiom, silently disables this diagnostic.
func LoadStaticFile(path string, encode string, logger *log.Logger) (*StaticFile, error) {
	entries, err := parseJisyoFile(path, logger)
	if err != nil {
		return nil, &skkerr.DictionaryLoadError{Path: path, Err: err}
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &StaticFile{path: path, encode: encode, logger: logger, entries: entries, keys: keys}, nil
}

func parseJisyoFile(path string, logger *log.Logger) (map[string]jisyo.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries := make(map[string]jisyo.Entry)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		e, err := jisyo.Parse(line)
		if err != nil {
			// A malformed line in an otherwise-valid file is logged and
			// skipped (spec §7), not fatal.
			if logger != nil {
				logger.Printf("dictstack: skipping malformed line in %s: %v", path, err)
			}
			continue
		}
		entries[e.Midashi] = e
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *StaticFile) Lookup(key CompositeKey) ([]candidate.Candidate, bool) {
	e, ok := s.entries[key.DictKey()]
	if !ok {
		return nil, false
	}
	return candidatesForEntry(e, key.Okuri), true
}

// candidatesForEntry returns the strict-okuri bucket (if okuri is set)
// followed by the unspecified bucket, de-duplicated by output (spec §4.5).
func candidatesForEntry(e jisyo.Entry, okuri string) []candidate.Candidate {
	var result []candidate.Candidate
	if okuri != "" {
		result = dedupeByOutput(result, e.Buckets[okuri])
	}
	result = dedupeByOutput(result, e.Buckets[""])
	return result
}

func (s *StaticFile) Complete(readingPrefix string) []string {
	i := sort.SearchStrings(s.keys, readingPrefix)
	var result []string
	for ; i < len(s.keys) && strings.HasPrefix(s.keys[i], readingPrefix); i++ {
		result = append(result, s.keys[i])
	}
	return result
}

func (s *StaticFile) CompletionEnabled() bool { return true }
func (s *StaticFile) IsReadOnly() bool        { return true }
