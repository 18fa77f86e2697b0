package engine

import "github.com/coregx/ahocorasick"

// autoStartMatcher detects when the kana assembled so far ends exactly
// with one of the configured auto-start-henkan trigger strings (spec
// §4.4). Triggers are matched as kana text, not raw key events, which
// makes this a multi-pattern substring search over a small, user-
// configurable keyword set — the same shape as the large literal
// alternations the regex engine example repo hands off to an
// Aho-Corasick automaton instead of a plain NFA (see
// _examples/coregx-coregex/meta/compile.go's UseAhoCorasick strategy).
type autoStartMatcher struct {
	auto *ahocorasick.Automaton
}

// newAutoStartMatcher builds a matcher from the configured keyword list. A
// matcher with a nil automaton (no keywords, or a build failure) simply
// never triggers.
func newAutoStartMatcher(keywords []string) *autoStartMatcher {
	m := &autoStartMatcher{}
	var nonEmpty int
	b := ahocorasick.NewBuilder()
	for _, k := range keywords {
		if k == "" {
			continue
		}
		b.AddPattern([]byte(k))
		nonEmpty++
	}
	if nonEmpty == 0 {
		return m
	}
	auto, err := b.Build()
	if err != nil {
		return m
	}
	m.auto = auto
	return m
}

// matchSuffix reports whether reading ends with one of the configured
// keywords, returning the matched keyword. It scans every start position
// because the automaton reports the first match at or after a given
// offset, not matches anchored to the end of the haystack.
func (m *autoStartMatcher) matchSuffix(reading string) (string, bool) {
	if m == nil || m.auto == nil || reading == "" {
		return "", false
	}
	data := []byte(reading)
	var last *ahocorasick.Match
	for at := 0; at <= len(data); at++ {
		match := m.auto.Find(data, at)
		if match == nil {
			break
		}
		last = match
		at = match.Start
	}
	if last == nil || last.End != len(data) {
		return "", false
	}
	return string(data[last.Start:last.End]), true
}
