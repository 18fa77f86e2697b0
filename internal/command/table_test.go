package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gskk/skkcore/internal/keyevent"
	"github.com/gskk/skkcore/internal/skkmode"
)

func TestBindAndLookup(t *testing.T) {
	tbl := NewTable()
	backspace := keyevent.KeyEvent{Sym: "BackSpace"}
	tbl.BindAllModes(skkmode.Direct, backspace, Simple(DeleteDirect))

	got, ok := tbl.Lookup(skkmode.Direct, skkmode.Hiragana, backspace)
	require.True(t, ok)
	require.Equal(t, []Instruction{Simple(DeleteDirect)}, got)

	got, ok = tbl.Lookup(skkmode.Direct, skkmode.Ascii, backspace)
	require.True(t, ok)
	require.Equal(t, []Instruction{Simple(DeleteDirect)}, got)
}

func TestLookupMissReturnsFalse(t *testing.T) {
	tbl := NewTable()
	_, ok := tbl.Lookup(skkmode.Direct, skkmode.Hiragana, keyevent.KeyEvent{Sym: "x"})
	require.False(t, ok)
}

func TestBindOverwrites(t *testing.T) {
	tbl := NewTable()
	k := keyevent.KeyEvent{Sym: "q"}
	tbl.Bind(skkmode.Direct, skkmode.Hiragana, k, Simple(Abort))
	tbl.Bind(skkmode.Direct, skkmode.Hiragana, k, WithInputMode(ChangeInputMode, skkmode.Katakana))

	got, ok := tbl.Lookup(skkmode.Direct, skkmode.Hiragana, k)
	require.True(t, ok)
	require.Equal(t, []Instruction{WithInputMode(ChangeInputMode, skkmode.Katakana)}, got)
}

func TestModeIsolation(t *testing.T) {
	tbl := NewTable()
	enter := keyevent.KeyEvent{Sym: "Return"}
	tbl.Bind(skkmode.Direct, skkmode.Hiragana, enter, Simple(ConfirmDirect))

	_, ok := tbl.Lookup(skkmode.PreComposition, skkmode.Hiragana, enter)
	require.False(t, ok)
	_, ok = tbl.Lookup(skkmode.Direct, skkmode.Katakana, enter)
	require.False(t, ok)
}
