package skkcore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gskk/skkcore/internal/candidate"
	"github.com/gskk/skkcore/internal/dictstack"
)

// memDict is a minimal in-memory Dictionary+Editable for exercising the
// host API end to end without touching a file, mirroring the engine
// package's own test double.
type memDict struct {
	entries map[string][]candidate.Candidate
}

func newMemDict() *memDict { return &memDict{entries: make(map[string][]candidate.Candidate)} }

func (m *memDict) put(key dictstack.CompositeKey, cs ...candidate.Candidate) {
	m.entries[key.DictKey()] = cs
}

func (m *memDict) Lookup(key dictstack.CompositeKey) ([]candidate.Candidate, bool) {
	cs, ok := m.entries[key.DictKey()]
	return cs, ok
}
func (m *memDict) Complete(prefix string) []string { return nil }
func (m *memDict) CompletionEnabled() bool         { return false }
func (m *memDict) IsReadOnly() bool                { return false }
func (m *memDict) SelectCandidate(key dictstack.CompositeKey, c candidate.Candidate) error {
	m.entries[key.DictKey()] = []candidate.Candidate{c}
	return nil
}
func (m *memDict) PurgeCandidate(key dictstack.CompositeKey, c candidate.Candidate) error {
	return nil
}

// Scenario 1 (spec §8): "A i space" -> "▼愛", "", Hiragana.
func TestScenarioOkuriNashiHappyPath(t *testing.T) {
	dict := newMemDict()
	dict.put(dictstack.CompositeKey{Reading: "あい"}, candidate.Candidate{Output: "愛"})
	h := New(dictstack.NewStack(dict))

	handled, err := h.ProcessKeyEventsFromString("A i space")
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, "▼愛", h.GetPreedit())
	require.Equal(t, "", h.PollOutput())
}

// Scenario 2 (spec §8): "A i space Return" -> "", "愛", Hiragana.
func TestScenarioOkuriNashiCommit(t *testing.T) {
	dict := newMemDict()
	dict.put(dictstack.CompositeKey{Reading: "あい"}, candidate.Candidate{Output: "愛"})
	h := New(dictstack.NewStack(dict))

	_, err := h.ProcessKeyEventsFromString("A i space Return")
	require.NoError(t, err)
	require.Equal(t, "", h.GetPreedit())
	require.Equal(t, "愛", h.PollOutput())
}

// Scenario 7 (spec §8): "A i space C-g" -> "▽あい", "", Hiragana.
func TestScenarioAbortFromCandidateDropsBackOneLevel(t *testing.T) {
	dict := newMemDict()
	dict.put(dictstack.CompositeKey{Reading: "あい"}, candidate.Candidate{Output: "愛"})
	h := New(dictstack.NewStack(dict))

	_, err := h.ProcessKeyEventsFromString("A i space C-g")
	require.NoError(t, err)
	require.Equal(t, "▽あい", h.GetPreedit())
	require.Equal(t, "", h.PollOutput())
}

// Boundary (spec §8): empty dictionary stack directly enters Register with
// the reading as midashi.
func TestScenarioEmptyStackEntersRegisterDirectly(t *testing.T) {
	h := New(dictstack.NewStack())

	_, err := h.ProcessKeyEventsFromString("A i space")
	require.NoError(t, err)
	require.Equal(t, "▼あい【】", h.GetPreedit())
	require.Equal(t, "", h.PollOutput())
}

// Boundary (spec §8): C-j in Direct with no pending input returns false.
func TestScenarioCJInDirectWithNothingPendingUnhandled(t *testing.T) {
	h := New(dictstack.NewStack())
	handled, err := h.ProcessKeyEventsFromString("C-j")
	require.NoError(t, err)
	require.False(t, handled)
}

func TestResetAfterDirectInputClearsPreedit(t *testing.T) {
	h := New(dictstack.NewStack())
	_, err := h.ProcessKeyEventsFromString("k a")
	require.NoError(t, err)
	require.Equal(t, "か", h.PollOutput())

	h.Reset()
	require.Equal(t, "", h.GetPreedit())
}
