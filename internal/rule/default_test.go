package rule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gskk/skkcore/internal/command"
	"github.com/gskk/skkcore/internal/kana"
	"github.com/gskk/skkcore/internal/skkmode"
)

func TestDefaultHiraganaConversionBasicSyllables(t *testing.T) {
	tr := kana.Build(DefaultHiraganaConversion())
	a := &kana.Assembler{}

	r := kana.Feed(tr, a, 'k')
	require.True(t, r.Accumulating)
	r = kana.Feed(tr, a, 'a')
	require.Equal(t, "か", r.Emitted)
}

func TestDefaultHiraganaConversionSokuonDoubling(t *testing.T) {
	tr := kana.Build(DefaultHiraganaConversion())
	a := &kana.Assembler{}

	kana.Feed(tr, a, 't')
	r := kana.Feed(tr, a, 't')
	require.Equal(t, "っ", r.Emitted)
	require.Equal(t, "t", a.CarryOver())

	r = kana.Feed(tr, a, 'a')
	require.Equal(t, "た", r.Emitted)
}

func TestDefaultHiraganaConversionDigraph(t *testing.T) {
	tr := kana.Build(DefaultHiraganaConversion())
	a := &kana.Assembler{}

	kana.Feed(tr, a, 's')
	kana.Feed(tr, a, 'h')
	r := kana.Feed(tr, a, 'a')
	require.Equal(t, "しゃ", r.Emitted)
}

func TestDefaultCommandTableInputModeCycling(t *testing.T) {
	tbl := DefaultCommandTable()

	instrs, ok := tbl.Lookup(skkmode.Direct, skkmode.Hiragana, key("q"))
	require.True(t, ok)
	require.Len(t, instrs, 1)

	instrs, ok = tbl.Lookup(skkmode.CompositionSelection, skkmode.Hiragana, key("space"))
	require.True(t, ok)
	require.Equal(t, command.TryNextCandidate, instrs[0].Kind)
}
