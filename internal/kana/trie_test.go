package kana

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testRules() []Rule {
	return []Rule{
		{Input: "ka", Kana: "か"},
		{Input: "ki", Kana: "き"},
		{Input: "ku", Kana: "く"},
		{Input: "tt", Kana: "っ", Carry: "t"},
		{Input: "ta", Kana: "た"},
		{Input: "n", Kana: "ん"},
		{Input: "na", Kana: "な"},
		{Input: "a", Kana: "あ"},
	}
}

func TestFeedEmitsOnTerminal(t *testing.T) {
	tr := Build(testRules())
	a := &Assembler{}

	r := Feed(tr, a, 'k')
	require.True(t, r.Accumulating)
	require.Equal(t, "k", a.CarryOver())

	r = Feed(tr, a, 'a')
	require.False(t, r.Accumulating)
	require.Equal(t, "か", r.Emitted)
	require.Empty(t, a.CarryOver())
}

func TestFeedDoubleConsonantCarriesOverRemainder(t *testing.T) {
	tr := Build(testRules())
	a := &Assembler{}

	Feed(tr, a, 't')
	r := Feed(tr, a, 't')
	require.Equal(t, "っ", r.Emitted)
	require.Equal(t, "t", a.CarryOver())

	r = Feed(tr, a, 'a')
	require.Equal(t, "た", r.Emitted)
	require.Empty(t, a.CarryOver())
}

func TestFeedUnrecognizedExtensionDropsCarryOver(t *testing.T) {
	// spec §4.2, §9: dead-end key mid-assembly drops the stale carry-over
	// rather than flushing it, and starts a fresh attempt at the new key.
	tr := Build(testRules())
	a := &Assembler{}

	Feed(tr, a, 'k') // accumulating "k"
	r := Feed(tr, a, 'z') // "kz" has no edge, and "z" alone has no edge either
	require.False(t, r.Accumulating)
	require.Empty(t, r.Emitted)
	require.Empty(t, a.CarryOver())
}

func TestFeedUnrecognizedExtensionRestartsAtNewKey(t *testing.T) {
	tr := Build(testRules())
	a := &Assembler{}

	Feed(tr, a, 'k')       // accumulating "k"
	r := Feed(tr, a, 't') // "kt" has no edge, but "t" alone does (accumulating)
	require.True(t, r.Accumulating)
	require.Equal(t, "t", a.CarryOver())
}

func TestFeedAfterLoneNOrdinaryConsonant(t *testing.T) {
	// "n" followed by a consonant that isn't a fresh n/' finalizes ん and
	// restarts the new key, rather than being dropped (spec §4.2 doc).
	tr := Build(testRules())
	a := &Assembler{}

	Feed(tr, a, 'n') // terminal "n" -> ん emitted immediately by this rule table
	require.Empty(t, a.CarryOver())

	// Re-drive with a carry-over of "n" directly to exercise feedAfterLoneN.
	a.carry = []byte("n")
	r := Feed(tr, a, 'k')
	require.Equal(t, "ん", r.Emitted)
	require.True(t, r.Accumulating)
	require.Equal(t, "k", a.CarryOver())
}

func TestFlushN(t *testing.T) {
	a := &Assembler{carry: []byte("n")}
	kana, ok := FlushN(a)
	require.True(t, ok)
	require.Equal(t, "ん", kana)
	require.Empty(t, a.CarryOver())

	_, ok = FlushN(&Assembler{})
	require.False(t, ok)
}

func TestConvertPeriod(t *testing.T) {
	s, ok := ConvertPeriod('.', true, true)
	require.True(t, ok)
	require.Equal(t, "。", s)

	s, ok = ConvertPeriod('.', false, true)
	require.True(t, ok)
	require.Equal(t, ".", s)

	s, ok = ConvertPeriod(',', true, false)
	require.True(t, ok)
	require.Equal(t, ",", s)

	_, ok = ConvertPeriod('x', true, true)
	require.False(t, ok)
}

func TestResetClearsCarryOver(t *testing.T) {
	tr := Build(testRules())
	a := &Assembler{}
	Feed(tr, a, 'k')
	require.NotEmpty(t, a.CarryOver())
	a.Reset()
	require.Empty(t, a.CarryOver())
}
