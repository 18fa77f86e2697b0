package command

import (
	"github.com/gskk/skkcore/internal/keyevent"
	"github.com/gskk/skkcore/internal/skkmode"
)

type inputModeMap map[skkmode.InputMode]keyMap
type keyMap map[keyevent.KeyEvent][]Instruction

// Table is the four-level command lookup: composition-mode -> input-mode
// -> normalized key event -> instruction list.
type Table struct {
	rules map[skkmode.CompositionMode]inputModeMap
}

// NewTable returns an empty table ready for Bind calls.
func NewTable() *Table {
	return &Table{rules: make(map[skkmode.CompositionMode]inputModeMap)}
}

// Bind registers the instruction list for one (composition mode, input
// mode, key event) triple, overwriting any existing binding.
func (t *Table) Bind(cm skkmode.CompositionMode, im skkmode.InputMode, k keyevent.KeyEvent, instructions ...Instruction) {
	inner, ok := t.rules[cm]
	if !ok {
		inner = make(inputModeMap)
		t.rules[cm] = inner
	}
	km, ok := inner[im]
	if !ok {
		km = make(keyMap)
		inner[im] = km
	}
	km[k] = append([]Instruction(nil), instructions...)
}

// BindAllModes registers the same instruction list under every InputMode
// for one composition mode, for keys whose behavior does not depend on the
// active input mode (BackSpace, Return, C-g and the like).
func (t *Table) BindAllModes(cm skkmode.CompositionMode, k keyevent.KeyEvent, instructions ...Instruction) {
	for _, im := range []skkmode.InputMode{
		skkmode.Hiragana, skkmode.Katakana, skkmode.HankakuKatakana, skkmode.Zenkaku, skkmode.Ascii,
	} {
		t.Bind(cm, im, k, instructions...)
	}
}

// Lookup returns the instruction list bound to (cm, im, k), if any. The
// key event must already be normalized (see keyevent.KeyEvent.Normalized).
func (t *Table) Lookup(cm skkmode.CompositionMode, im skkmode.InputMode, k keyevent.KeyEvent) ([]Instruction, bool) {
	inner, ok := t.rules[cm]
	if !ok {
		return nil, false
	}
	km, ok := inner[im]
	if !ok {
		return nil, false
	}
	instructions, ok := km[k]
	return instructions, ok
}
