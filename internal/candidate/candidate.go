// Package candidate holds the Candidate value type and the CandidateList
// cursor used during CompositionSelection (spec §3, §4.5).
package candidate

// Candidate is one possible rendering of a reading. Candidates are value
// types; equality is by Output.
type Candidate struct {
	Reading    string
	Okurigana  string // trailing kana, if this candidate has okuri
	HasOkuri   bool
	Output     string // the kanji or text to commit
	Annotation string // optional, empty if none
}

// Display is the string shown to the user: the output plus a ";annotation"
// suffix when present.
func (c Candidate) Display() string {
	if c.Annotation == "" {
		return c.Output
	}
	return c.Output + ";" + c.Annotation
}

// List is the current composition's candidate sequence: the composite key
// that produced it, the concatenated (already de-duplicated) candidates,
// and a cursor.
type List struct {
	key        string // the dictionary-key form of the composite key
	candidates []Candidate
	cursor     int
}

// NewList creates an empty list for the given dictionary key.
func NewList(key string) *List {
	return &List{key: key}
}

// Key returns the composite key this list was built from.
func (l *List) Key() string { return l.key }

// Append adds a candidate to the end of the list, unless a candidate with
// the same Output is already present.
func (l *List) Append(c Candidate) {
	for _, existing := range l.candidates {
		if existing.Output == c.Output {
			return
		}
	}
	l.candidates = append(l.candidates, c)
}

// ReplaceAll replaces the entire candidate sequence and resets the cursor.
func (l *List) ReplaceAll(cs []Candidate) {
	l.candidates = cs
	l.cursor = 0
}

// Len returns the number of candidates.
func (l *List) Len() int { return len(l.candidates) }

// All returns a copy of the full candidate sequence, for callers (e.g. Purge)
// that need to rebuild the list with one entry removed.
func (l *List) All() []Candidate {
	return append([]Candidate(nil), l.candidates...)
}

// Current returns the candidate at the cursor. ok is false when the list is
// empty.
func (l *List) Current() (Candidate, bool) {
	if l.cursor < 0 || l.cursor >= len(l.candidates) {
		return Candidate{}, false
	}
	return l.candidates[l.cursor], true
}

// SetCursor moves the cursor to i. ok is false (and the cursor unchanged)
// when i is out of range.
func (l *List) SetCursor(i int) bool {
	if i < 0 || i >= len(l.candidates) {
		return false
	}
	l.cursor = i
	return true
}

// Cursor returns the current cursor position.
func (l *List) Cursor() int { return l.cursor }

// Next advances the cursor. ok is false when advancing would move past the
// last candidate (the engine falls back to Register in that case, spec
// §4.3 TryNextCandidate).
func (l *List) Next() bool {
	if l.cursor+1 >= len(l.candidates) {
		return false
	}
	l.cursor++
	return true
}

// Prev retreats the cursor. ok is false when retreating would move before
// the first candidate (the engine falls back to PreComposition, spec §4.3
// TryPreviousCandidate).
func (l *List) Prev() bool {
	if l.cursor-1 < 0 {
		return false
	}
	l.cursor--
	return true
}
