package dictstack

import "github.com/gskk/skkcore/internal/candidate"

// Stack is the ordered collection of dictionaries a conversion is looked
// up against (spec §4.6).
type Stack struct {
	dicts []Dictionary
}

// NewStack builds a stack, first dictionary first (highest priority on
// lookup, since candidates are concatenated in first-seen order).
func NewStack(dicts ...Dictionary) *Stack {
	return &Stack{dicts: dicts}
}

// Lookup walks the stack in order, concatenating candidates and
// de-duplicating by output string.
func (s *Stack) Lookup(key CompositeKey) ([]candidate.Candidate, bool) {
	var result []candidate.Candidate
	for _, d := range s.dicts {
		cs, ok := d.Lookup(key)
		if !ok {
			continue
		}
		result = dedupeByOutput(result, cs)
	}
	return result, len(result) > 0
}

// Complete walks the completion-enabled dictionaries in order, collecting
// distinct midashi strings that start with readingPrefix.
func (s *Stack) Complete(readingPrefix string) []string {
	var result []string
	seen := make(map[string]bool)
	for _, d := range s.dicts {
		if !d.CompletionEnabled() {
			continue
		}
		for _, m := range d.Complete(readingPrefix) {
			if !seen[m] {
				seen[m] = true
				result = append(result, m)
			}
		}
	}
	return result
}

// SelectCandidate updates the first writable dictionary in the stack with
// the confirmed candidate (spec §4.6, "User-dictionary update on
// confirm"). A stack with no writable dictionary is a silent no-op, since
// the engine should still commit the candidate even if it cannot be
// learned.
func (s *Stack) SelectCandidate(key CompositeKey, c candidate.Candidate) error {
	for _, d := range s.dicts {
		if e, ok := d.(Editable); ok {
			return e.SelectCandidate(key, c)
		}
	}
	return nil
}

// PurgeCandidate removes c from the first writable dictionary in the
// stack, if any.
func (s *Stack) PurgeCandidate(key CompositeKey, c candidate.Candidate) error {
	for _, d := range s.dicts {
		if e, ok := d.(Editable); ok {
			return e.PurgeCandidate(key, c)
		}
	}
	return nil
}

// Save persists every dirty, savable dictionary, returning the first error
// encountered (later dictionaries are still attempted).
func (s *Stack) Save() error {
	var firstErr error
	for _, d := range s.dicts {
		if sv, ok := d.(Saver); ok {
			if err := sv.Save(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
