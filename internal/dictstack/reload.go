package dictstack

import (
	"github.com/gskk/skkcore/internal/dictstack/jisyo"
	"github.com/gskk/skkcore/internal/lru"
	"github.com/gskk/skkcore/internal/skkerr"
)

// Reloadable is implemented by file-backed dictionaries that can re-read
// their content from disk (spec §6 reload_dictionaries).
type Reloadable interface {
	Reload() error
}

// Reload re-parses the backing file from path, discarding the in-memory
// index (spec §4.6: rule tables and dictionaries are the only long-lived
// state a context carries, and a reload simply rebuilds this one).
func (s *StaticFile) Reload() error {
	fresh, err := LoadStaticFile(s.path, s.encode, s.logger)
	if err != nil {
		return err
	}
	*s = *fresh
	return nil
}

// Reload re-parses the backing file from path. Unlike LoadUserFile, a
// missing file on reload is still reported: the file existed when this
// dictionary was first opened, so its disappearance is surprising rather
// than a first-run condition.
func (u *UserFile) Reload() error {
	entries, err := parseJisyoFile(u.path, u.logger)
	if err != nil {
		return &skkerr.DictionaryLoadError{Path: u.path, Err: err}
	}
	okuriAri := lru.New()
	okuriNasi := lru.New()
	for midashi, e := range entries {
		if jisyo.ClassifyOkuriAri(midashi) {
			okuriAri.Insert(midashi, e)
		} else {
			okuriNasi.Insert(midashi, e)
		}
	}
	u.okuriAri = okuriAri
	u.okuriNasi = okuriNasi
	u.dirty = false
	return nil
}

// Reload re-reads every Reloadable dictionary in the stack, returning the
// first error encountered (later dictionaries are still attempted).
func (s *Stack) Reload() error {
	var firstErr error
	for _, d := range s.dicts {
		if r, ok := d.(Reloadable); ok {
			if err := r.Reload(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
