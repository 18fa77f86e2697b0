// Package dictstack implements the dictionary stack (spec §4.6): the
// ordered collection of Dictionary backends a conversion is looked up
// against, plus the StaticFile, UserFile and Empty variants.
//
// Grounded on original_source/src/dictionary/mod.rs (the Dictionary trait)
// and the cskk/ subtree's file_dictionary.rs / user_dictionary.rs for the
// read/write split.
package dictstack

import "github.com/gskk/skkcore/internal/candidate"

// Dictionary is the capability set every backend implements (spec §4.6).
type Dictionary interface {
	Lookup(key CompositeKey) ([]candidate.Candidate, bool)
	Complete(readingPrefix string) []string
	CompletionEnabled() bool
	IsReadOnly() bool
}

// Saver is implemented by dictionaries that can persist dirty state.
type Saver interface {
	Save() error
}

// Editable is implemented by the writable (user) dictionary.
type Editable interface {
	SelectCandidate(key CompositeKey, c candidate.Candidate) error
	PurgeCandidate(key CompositeKey, c candidate.Candidate) error
}

// dedupeByOutput appends src onto dst, skipping any candidate whose Output
// already appears in dst.
func dedupeByOutput(dst []candidate.Candidate, src []candidate.Candidate) []candidate.Candidate {
	for _, c := range src {
		seen := false
		for _, existing := range dst {
			if existing.Output == c.Output {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, c)
		}
	}
	return dst
}
