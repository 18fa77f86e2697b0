package dictstack

import (
	"bufio"
	"log"
	"os"
	"strings"

	"github.com/gskk/skkcore/internal/candidate"
	"github.com/gskk/skkcore/internal/dictstack/jisyo"
	"github.com/gskk/skkcore/internal/lru"
	"github.com/gskk/skkcore/internal/skkerr"
)

const (
	okuriAriHeader   = ";; okuri-ari entries."
	okuriNasiHeader  = ";; okuri-nasi entries."
)

// UserFile is the read-write, LRU-ordered user dictionary (spec §4.6,
// §4.8). It keeps okuri-ari and okuri-nashi entries in separate
// LRU-ordered maps, matching the two sections the on-disk format tracks
// separately in recency order. Grounded on
// original_source/src/dictionary/user_dictionary.rs and
// lru_ordered_map.rs.
type UserFile struct {
	path   string
	encode string
	logger *log.Logger

	okuriAri  *lru.Map // midashi -> jisyo.Entry
	okuriNasi *lru.Map

	dirty bool
}

// LoadUserFile reads and parses a user jisyo file. Like StaticFile, file
// content is always decoded as UTF-8, whatever encode says. A missing file is
// treated as an empty, newly-created dictionary rather than an error,
// matching the common "first run" case. logger receives a line for every
// skipped malformed line (spec §7); nil disables the diagnostic.
func LoadUserFile(path string, encode string, logger *log.Logger) (*UserFile, error) {
	u := &UserFile{
		path:      path,
		encode:    encode,
		logger:    logger,
		okuriAri:  lru.New(),
		okuriNasi: lru.New(),
	}

	entries, err := parseJisyoFile(path, logger)
	if err != nil {
		if os.IsNotExist(err) {
			return u, nil
		}
		return nil, &skkerr.DictionaryLoadError{Path: path, Err: err}
	}
	for midashi, e := range entries {
		if jisyo.ClassifyOkuriAri(midashi) {
			u.okuriAri.Insert(midashi, e)
		} else {
			u.okuriNasi.Insert(midashi, e)
		}
	}
	return u, nil
}

func (u *UserFile) mapFor(midashi string) *lru.Map {
	if jisyo.ClassifyOkuriAri(midashi) {
		return u.okuriAri
	}
	return u.okuriNasi
}

func (u *UserFile) Lookup(key CompositeKey) ([]candidate.Candidate, bool) {
	v, ok := u.mapFor(key.DictKey()).Peek(key.DictKey())
	if !ok {
		return nil, false
	}
	e := v.(jisyo.Entry)
	cs := candidatesForEntry(e, key.Okuri)
	return cs, len(cs) > 0
}

func (u *UserFile) Complete(readingPrefix string) []string {
	var result []string
	collect := func(k string, _ any) bool {
		if strings.HasPrefix(k, readingPrefix) {
			result = append(result, k)
		}
		return true
	}
	u.okuriAri.IterSorted(collect)
	u.okuriNasi.IterSorted(collect)
	return result
}

func (u *UserFile) CompletionEnabled() bool { return true }
func (u *UserFile) IsReadOnly() bool        { return false }

// SelectCandidate implements the confirm-time update (spec §4.6): the
// strict-okuri bucket (if any) and the unspecified bucket both move the
// candidate to front, inserting it if absent, and the entry is promoted to
// most-recently-used.
func (u *UserFile) SelectCandidate(key CompositeKey, c candidate.Candidate) error {
	midashi := key.DictKey()
	m := u.mapFor(midashi)

	e, ok := m.Peek(midashi)
	var entry jisyo.Entry
	if ok {
		entry = e.(jisyo.Entry)
	} else {
		entry = jisyo.Entry{Midashi: midashi, OkuriAri: jisyo.ClassifyOkuriAri(midashi), Buckets: make(map[string][]candidate.Candidate)}
	}
	if entry.Buckets == nil {
		entry.Buckets = make(map[string][]candidate.Candidate)
	}

	if key.Okuri != "" {
		entry.Buckets[key.Okuri] = moveToFront(entry.Buckets[key.Okuri], c)
	}
	entry.Buckets[""] = moveToFront(entry.Buckets[""], c)

	m.Insert(midashi, entry)
	u.dirty = true
	return nil
}

func moveToFront(cands []candidate.Candidate, c candidate.Candidate) []candidate.Candidate {
	out := make([]candidate.Candidate, 0, len(cands)+1)
	out = append(out, c)
	for _, existing := range cands {
		if existing.Output != c.Output {
			out = append(out, existing)
		}
	}
	return out
}

// PurgeCandidate removes c from both buckets. If a bucket becomes empty it
// is left in place, empty, so a future lookup through this dictionary
// finds no entry there (spec §4.6).
func (u *UserFile) PurgeCandidate(key CompositeKey, c candidate.Candidate) error {
	midashi := key.DictKey()
	m := u.mapFor(midashi)

	v, ok := m.Peek(midashi)
	if !ok {
		return nil
	}
	entry := v.(jisyo.Entry)
	if key.Okuri != "" {
		entry.Buckets[key.Okuri] = removeByOutput(entry.Buckets[key.Okuri], c.Output)
	}
	entry.Buckets[""] = removeByOutput(entry.Buckets[""], c.Output)
	u.dirty = true
	return nil
}

func removeByOutput(cands []candidate.Candidate, output string) []candidate.Candidate {
	out := cands[:0:0]
	for _, c := range cands {
		if c.Output != output {
			out = append(out, c)
		}
	}
	return out
}

// Save renames the current file to "<path>.BAK" and writes a fresh file:
// okuri-ari entries (recency order) under one header, okuri-nashi entries
// (recency order) under the other (spec §4.6, §6). A no-op when nothing is
// dirty.
func (u *UserFile) Save() error {
	if !u.dirty {
		return nil
	}

	if _, err := os.Stat(u.path); err == nil {
		if err := os.Rename(u.path, u.path+".BAK"); err != nil {
			return &skkerr.DictionarySaveError{Path: u.path, Err: err}
		}
	}

	f, err := os.Create(u.path)
	if err != nil {
		return &skkerr.DictionarySaveError{Path: u.path, Err: err}
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeSection(w, okuriAriHeader, u.okuriAri); err != nil {
		return &skkerr.DictionarySaveError{Path: u.path, Err: err}
	}
	if err := writeSection(w, okuriNasiHeader, u.okuriNasi); err != nil {
		return &skkerr.DictionarySaveError{Path: u.path, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &skkerr.DictionarySaveError{Path: u.path, Err: err}
	}

	u.dirty = false
	return nil
}

func writeSection(w *bufio.Writer, header string, m *lru.Map) error {
	if _, err := w.WriteString(header + "\n"); err != nil {
		return err
	}
	var writeErr error
	m.IterLRU(func(_ string, v any) bool {
		e := v.(jisyo.Entry)
		if len(e.Buckets) == 0 {
			return true
		}
		if _, err := w.WriteString(jisyo.Serialize(e) + "\n"); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	return writeErr
}
