package engine

import (
	"github.com/gskk/skkcore/internal/candidate"
	"github.com/gskk/skkcore/internal/dictstack"
	"github.com/gskk/skkcore/internal/kana"
	"github.com/gskk/skkcore/internal/skkmode"
)

// State is one composition's worth of mutable data (spec §3 Lifecycles).
// A Context always has at least one State; Register (§4.9) pushes
// additional ones, each independently tracking its own mode, reading and
// candidate list. A fresh State always starts Direct.
type State struct {
	inputMode       skkmode.InputMode
	compositionMode skkmode.CompositionMode

	asm kana.Assembler

	reading []rune // kana built so far: PreComposition / PreCompositionOkurigana / Completion
	okuri   []rune // okurigana kana built so far in PreCompositionOkurigana
	hadOkuri bool  // set once this composition has entered PreCompositionOkurigana

	capitalTransition bool // spec §4.4: suppresses a spurious re-trigger mid-assembly

	abbrev []rune // raw-ASCII reading buffer for Abbreviation mode

	direct []rune // Direct-mode output pending confirmation; only accumulates
	// (instead of committing straight to the Context output buffer) while
	// this State is a nested Register state (spec §4.9).

	candList *candidate.List

	completionCandidates []string
	completionCursor     int
}

func newState(im skkmode.InputMode) *State {
	return &State{inputMode: im, compositionMode: skkmode.Direct}
}

// reset clears all composition state, keeping only the input mode.
func (s *State) reset(im skkmode.InputMode) {
	*s = State{inputMode: im, compositionMode: skkmode.Direct}
}

// compositeKey builds the dictionary lookup key for this state's current
// reading and okurigana (spec §3, §4.5).
func (s *State) compositeKey() dictstack.CompositeKey {
	return dictstack.CompositeKey{Reading: string(s.reading), Okuri: string(s.okuri)}
}
