package dictstack

import "github.com/gskk/skkcore/internal/candidate"

// Empty is the sink dictionary: always misses, never completes. Useful as
// a placeholder dictionary stack when no real dictionaries are configured
// yet (spec §4.6). Grounded on
// original_source/src/dictionary/empty_dict.rs.
type Empty struct{}

func (Empty) Lookup(CompositeKey) ([]candidate.Candidate, bool) { return nil, false }
func (Empty) Complete(string) []string                         { return nil }
func (Empty) CompletionEnabled() bool                           { return false }
func (Empty) IsReadOnly() bool                                  { return true }
