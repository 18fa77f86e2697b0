package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gskk/skkcore/internal/candidate"
	"github.com/gskk/skkcore/internal/dictstack"
)

// memDict is a minimal in-memory Dictionary/Editable/Saver used only by
// this package's tests, standing in for a real SKK-JISYO file.
type memDict struct {
	entries  map[string][]candidate.Candidate
	selected []candidate.Candidate
	purged   []candidate.Candidate
	saved    int
}

func newMemDict() *memDict {
	return &memDict{entries: make(map[string][]candidate.Candidate)}
}

func (d *memDict) put(key dictstack.CompositeKey, cs ...candidate.Candidate) {
	d.entries[key.DictKey()] = cs
}

func (d *memDict) Lookup(key dictstack.CompositeKey) ([]candidate.Candidate, bool) {
	cs, ok := d.entries[key.DictKey()]
	return cs, ok
}

func (d *memDict) Complete(prefix string) []string {
	var out []string
	for k := range d.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, k)
		}
	}
	return out
}

func (d *memDict) CompletionEnabled() bool { return true }
func (d *memDict) IsReadOnly() bool        { return false }

func (d *memDict) SelectCandidate(key dictstack.CompositeKey, c candidate.Candidate) error {
	d.selected = append(d.selected, c)
	d.entries[key.DictKey()] = append(d.entries[key.DictKey()], c)
	return nil
}

func (d *memDict) PurgeCandidate(key dictstack.CompositeKey, c candidate.Candidate) error {
	d.purged = append(d.purged, c)
	return nil
}

func (d *memDict) Save() error {
	d.saved++
	return nil
}

func newTestContext(dicts ...dictstack.Dictionary) (*Context, *memDict) {
	d := newMemDict()
	all := append([]dictstack.Dictionary{d}, dicts...)
	cfg := DefaultConfig()
	cfg.Dicts = dictstack.NewStack(all...)
	return NewContext(cfg), d
}

func press(t *testing.T, ctx *Context, text string) bool {
	t.Helper()
	handled, err := ctx.ProcessKeyEventsFromString(text)
	require.NoError(t, err)
	return handled
}
