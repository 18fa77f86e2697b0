package engine

import (
	"github.com/gskk/skkcore/internal/candidate"
	"github.com/gskk/skkcore/internal/command"
	"github.com/gskk/skkcore/internal/formchanger"
	"github.com/gskk/skkcore/internal/kana"
	"github.com/gskk/skkcore/internal/keyevent"
	"github.com/gskk/skkcore/internal/skkmode"
)

// ProcessKeyEvent is the host's main entry point (spec §4.4, §6 process_key).
// It returns whether the key was consumed.
func (ctx *Context) ProcessKeyEvent(ev keyevent.KeyEvent) bool {
	if ctx.isNested() {
		nested := ctx.top()
		if nested.compositionMode == skkmode.Direct {
			norm := ev.Normalized()
			if instrs, ok := ctx.cfg.Table.Lookup(skkmode.Register, nested.inputMode, norm); ok {
				return ctx.execRegisterControl(instrs)
			}
		}
	}
	return ctx.dispatchToState(ctx.top(), ev)
}

// dispatchToState implements spec §4.4 steps 2-4 for one state: a
// command-table hit executes its instructions; otherwise an unbound key
// during CompositionSelection or Completion implicitly confirms what is
// currently shown and is reprocessed, Abbreviation accumulates raw ASCII,
// and everything else falls through to kana assembly or verbatim ASCII
// input depending on the active input mode.
func (ctx *Context) dispatchToState(s *State, ev keyevent.KeyEvent) bool {
	norm := ev.Normalized()
	if instrs, ok := ctx.cfg.Table.Lookup(s.compositionMode, s.inputMode, norm); ok {
		return ctx.execInstructions(s, ev, instrs)
	}

	switch s.compositionMode {
	case skkmode.CompositionSelection:
		ctx.confirmCandidate(s)
		return ctx.dispatchToState(s, ev)
	case skkmode.Completion:
		ctx.confirmCompletionResult(s)
		return ctx.dispatchToState(s, ev)
	case skkmode.Abbreviation:
		return ctx.handleAbbreviation(s, ev)
	}

	if s.inputMode.HasRomKanaConversion() {
		return ctx.handleRomKana(s, ev)
	}
	return ctx.handleNonRomKana(s, ev)
}

func (ctx *Context) handleAbbreviation(s *State, ev keyevent.KeyEvent) bool {
	if !ev.IsAsciiPrintable() {
		return false
	}
	s.abbrev = append(s.abbrev, rune(ev.Sym[0]))
	return true
}

// handleRomKana implements the uppercase mode-trigger policy and kana-trie
// assembly (spec §4.4 step 3, §4.5).
func (ctx *Context) handleRomKana(s *State, ev keyevent.KeyEvent) bool {
	if !ev.IsAsciiPrintable() {
		return false
	}
	raw := ev.Sym[0]

	if ev.IsUppercaseAscii() && !s.capitalTransition {
		lower := raw - 'A' + 'a'
		switch s.compositionMode {
		case skkmode.Direct:
			s.compositionMode = skkmode.PreComposition
			s.reading = nil
			s.hadOkuri = false
			s.capitalTransition = true
			return ctx.feedKana(s, lower)
		case skkmode.PreComposition:
			s.compositionMode = skkmode.PreCompositionOkurigana
			s.hadOkuri = true
			s.okuri = nil
			s.capitalTransition = true
			return ctx.feedKana(s, lower)
		}
	}

	if text, ok := kana.ConvertPeriod(raw, ctx.cfg.PeriodStyle == skkmode.PeriodJa, ctx.cfg.CommaStyle == skkmode.CommaJa); ok {
		ctx.appendKana(s, text)
		return true
	}

	return ctx.feedKana(s, raw)
}

// feedKana feeds one byte to the kana-assembly trie. Emitted and
// Accumulating can both be set (a lone pending "n" flushing to ん while c
// itself starts a fresh accumulation), so both are handled independently
// rather than treated as mutually exclusive outcomes.
func (ctx *Context) feedKana(s *State, c byte) bool {
	result := kana.Feed(ctx.cfg.Trie, &s.asm, c)
	if result.Emitted != "" {
		ctx.appendKana(s, renderForInputMode(result.Emitted, s.inputMode))
		// The capital-letter latch only needs to survive for as long as
		// the digraph it started is still assembling (e.g. "Sha"); once a
		// kana unit lands, the next capital letter is a fresh, legitimate
		// trigger (e.g. the "R" of "OkuRu" starting okurigana).
		s.capitalTransition = false
	}
	return true
}

// handleNonRomKana implements spec §4.4 step 4 for Ascii and Zenkaku input
// modes: verbatim ASCII, or the fullwidth form changer.
func (ctx *Context) handleNonRomKana(s *State, ev keyevent.KeyEvent) bool {
	if !ev.IsAsciiPrintable() {
		return false
	}
	raw := string(ev.Sym)
	text := raw
	if s.inputMode == skkmode.Zenkaku {
		text = formchanger.ToZenkakuAscii(raw)
	}
	ctx.commitDirect(s, text)
	return true
}

// appendKana routes one piece of emitted kana to the buffer its current
// composition mode accumulates into, triggering auto-start-henkan or the
// okurigana-triggered dictionary lookup as appropriate.
func (ctx *Context) appendKana(s *State, text string) {
	switch s.compositionMode {
	case skkmode.Direct:
		ctx.commitDirect(s, text)
	case skkmode.PreComposition:
		s.reading = append(s.reading, []rune(text)...)
		ctx.maybeAutoStartHenkan(s)
	case skkmode.PreCompositionOkurigana:
		first := len(s.okuri) == 0
		s.okuri = append(s.okuri, []rune(text)...)
		if first {
			ctx.beginOkuriConversion(s)
		}
	}
}

func (ctx *Context) commitDirect(s *State, text string) {
	if text == "" {
		return
	}
	if ctx.isNested() && s == ctx.top() {
		s.direct = append(s.direct, []rune(text)...)
		return
	}
	ctx.output.WriteString(text)
}

// maybeAutoStartHenkan implements spec §4.4's auto-start-henkan: when the
// reading built so far ends with a configured trigger, the trigger is
// stripped from the lookup key and reattached to every resulting
// candidate's output.
func (ctx *Context) maybeAutoStartHenkan(s *State) {
	reading := string(s.reading)
	trigger, ok := ctx.trigger.matchSuffix(reading)
	if !ok {
		return
	}
	s.reading = []rune(reading[:len(reading)-len(trigger)])
	ctx.buildCandidateListWithSuffix(s, trigger)
	s.compositionMode = skkmode.CompositionSelection
}

// beginOkuriConversion implements spec §4.5: the first kana produced after
// entering PreCompositionOkurigana fixes the okuri-first-letter and
// immediately triggers dictionary lookup. With no candidate for the key it
// opens Register, as TryNextCandidate does.
func (ctx *Context) beginOkuriConversion(s *State) {
	ctx.buildCandidateList(s)
	if s.candList.Len() == 0 {
		ctx.enterRegister(s)
		return
	}
	s.compositionMode = skkmode.CompositionSelection
}

// buildCandidateList looks up the dictionary stack for s's current reading
// (plus okurigana, if any) and stamps every result with the okurigana the
// user actually typed: the dictionary only ever stores the kanji stem for
// an okuri-ari entry (spec §4.6, §4.7), so the trailing kana has to be
// reattached here rather than trusted from the candidate itself.
func (ctx *Context) buildCandidateList(s *State) {
	key := s.compositeKey()
	cs, _ := ctx.cfg.Dicts.Lookup(key)
	if key.HasOkuri() {
		stamped := make([]candidate.Candidate, len(cs))
		for i, c := range cs {
			c.Okurigana = key.Okuri
			c.HasOkuri = true
			stamped[i] = c
		}
		cs = stamped
	}
	l := candidate.NewList(key.DictKey())
	l.ReplaceAll(cs)
	s.candList = l
}

// candidateDisplay is the text a candidate renders as: the dictionary
// output, plus its okurigana re-rendered through the active input mode
// when it has one.
func candidateDisplay(c candidate.Candidate, im skkmode.InputMode) string {
	if !c.HasOkuri {
		return c.Output
	}
	return c.Output + renderForInputMode(c.Okurigana, im)
}

func (ctx *Context) buildCandidateListWithSuffix(s *State, suffix string) {
	key := s.compositeKey()
	cs, _ := ctx.cfg.Dicts.Lookup(key)
	suffixed := make([]candidate.Candidate, len(cs))
	for i, c := range cs {
		c.Output += suffix
		suffixed[i] = c
	}
	l := candidate.NewList(key.DictKey())
	l.ReplaceAll(suffixed)
	s.candList = l
}

// enterRegister pushes a fresh nested state (spec §4.9). The outer state's
// own composition mode becomes Register purely as bookkeeping: it is never
// looked up as the active dispatch mode again until the nested state pops.
func (ctx *Context) enterRegister(s *State) {
	s.compositionMode = skkmode.Register
	ctx.states = append(ctx.states, newState(s.inputMode))
}

// popRegister unwinds one level of Register nesting (spec §4.9). On abort
// the outer composition returns to its pre-conversion reading; on commit the
// nested state's accumulated direct output becomes a new candidate, learned
// into the user dictionary when possible.
func (ctx *Context) popRegister(commit bool) {
	if !ctx.isNested() {
		return
	}
	nested := ctx.states[len(ctx.states)-1]
	outer := ctx.states[len(ctx.states)-2]
	ctx.states = ctx.states[:len(ctx.states)-1]

	if !commit {
		outer.candList = nil
		if outer.hadOkuri {
			outer.compositionMode = skkmode.PreCompositionOkurigana
		} else {
			outer.compositionMode = skkmode.PreComposition
		}
		return
	}

	text := string(nested.direct)
	if flushed, ok := kana.FlushN(&nested.asm); ok {
		text += renderForInputMode(flushed, nested.inputMode)
	} else {
		text += nested.asm.CarryOver()
	}

	outer.compositionMode = skkmode.CompositionSelection
	if outer.candList == nil {
		outer.candList = candidate.NewList(outer.compositeKey().DictKey())
	}
	if text != "" {
		c := candidate.Candidate{
			Reading:   string(outer.reading),
			Okurigana: string(outer.okuri),
			HasOkuri:  outer.hadOkuri,
			Output:    text,
		}
		outer.candList.Append(c)
		outer.candList.SetCursor(outer.candList.Len() - 1)
		_ = ctx.cfg.Dicts.SelectCandidate(outer.compositeKey(), c)
	}
}

// renderForInputMode renders base hiragana text through the current input
// mode's form changer (spec §4.4, §4.10). Hiragana, Ascii and Zenkaku need
// no transformation at this layer.
func renderForInputMode(text string, mode skkmode.InputMode) string {
	switch mode {
	case skkmode.Katakana:
		return formchanger.ToKatakana(text)
	case skkmode.HankakuKatakana:
		return formchanger.ToHankakuKatakana(text)
	default:
		return text
	}
}

func (ctx *Context) execRegisterControl(instrs []command.Instruction) bool {
	handled := true
	for _, instr := range instrs {
		switch instr.Kind {
		case command.Abort:
			ctx.popRegister(false)
		case command.FinishKeyEvent:
			ctx.popRegister(true)
		case command.PassthroughKeyEvent:
			handled = false
		}
	}
	return handled
}
