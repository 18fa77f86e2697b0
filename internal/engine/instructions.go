package engine

import (
	"github.com/gskk/skkcore/internal/candidate"
	"github.com/gskk/skkcore/internal/command"
	"github.com/gskk/skkcore/internal/kana"
	"github.com/gskk/skkcore/internal/keyevent"
	"github.com/gskk/skkcore/internal/skkmode"
)

// execInstructions runs one command-table entry's instruction list against
// s (spec §4.3). Instructions execute in order; FinishKeyEvent and
// PassthroughKeyEvent end the list early. PassthroughKeyEvent reports the
// key as "not handled", and so do ConfirmDirect and DeleteDirect when there
// is nothing pending for them to act on.
func (ctx *Context) execInstructions(s *State, ev keyevent.KeyEvent, instrs []command.Instruction) bool {
	handled := true
	for _, instr := range instrs {
		switch instr.Kind {
		case command.Abort:
			ctx.execAbort(s)
		case command.ChangeInputMode:
			ctx.execChangeInputMode(s, instr.Mode)
		case command.OutputNNIfAny:
			ctx.execOutputNNIfAny(s, instr.Mode)
		case command.FlushPreviousCarryOver:
			s.asm.Reset()
		case command.FlushConvertedKana:
			ctx.execFlushConvertedKana(s)
		case command.ClearUnconfirmedInputs:
			ctx.execClearUnconfirmedInputs(s)
		case command.ChangeCompositionMode:
			s.compositionMode = instr.CompositionMode
			s.capitalTransition = false
		case command.FinishKeyEvent:
			return handled
		case command.PassthroughKeyEvent:
			return false
		case command.TryNextCandidate:
			ctx.tryNextCandidate(s)
		case command.TryPreviousCandidate:
			ctx.tryPreviousCandidate(s)
		case command.NextCandidatePointer:
			ctx.nextCandidatePointer(s)
		case command.PreviousCandidatePointer:
			ctx.previousCandidatePointer(s)
		case command.UpdateCandidateList:
			ctx.buildCandidateList(s)
		case command.ConfirmComposition:
			ctx.confirmComposition(s)
		case command.ConfirmPreComposition:
			ctx.execConfirmPreComposition(s, instr.Mode)
		case command.ConfirmAsHiragana:
			ctx.execConfirmPreComposition(s, skkmode.Hiragana)
		case command.ConfirmAsKatakana:
			ctx.execConfirmPreComposition(s, skkmode.Katakana)
		case command.ConfirmAsJISX0201:
			ctx.execConfirmPreComposition(s, skkmode.HankakuKatakana)
		case command.ConfirmDirect:
			handled = ctx.confirmDirect(s)
		case command.Purge:
			ctx.purge(s)
		case command.DeletePrecomposition:
			ctx.deletePrecomposition(s)
		case command.DeleteDirect:
			handled = ctx.deleteDirect(s)
		}
	}
	return handled
}

func (ctx *Context) execAbort(s *State) {
	switch s.compositionMode {
	case skkmode.Direct:
		s.asm.Reset()
	case skkmode.CompositionSelection:
		s.candList = nil
		if s.hadOkuri {
			s.compositionMode = skkmode.PreCompositionOkurigana
		} else {
			s.compositionMode = skkmode.PreComposition
		}
	default:
		s.reset(s.inputMode)
	}
}

func (ctx *Context) execChangeInputMode(s *State, m skkmode.InputMode) {
	if s.inputMode.HasRomKanaConversion() {
		if flushed, ok := kana.FlushN(&s.asm); ok {
			ctx.appendKana(s, renderForInputMode(flushed, s.inputMode))
		}
	}
	s.inputMode = m
	s.asm.Reset()
}

func (ctx *Context) execOutputNNIfAny(s *State, m skkmode.InputMode) {
	flushed, ok := kana.FlushN(&s.asm)
	if !ok {
		return
	}
	ctx.appendKana(s, renderForInputMode(flushed, m))
}

func (ctx *Context) execFlushConvertedKana(s *State) {
	text := renderForInputMode(string(s.reading), s.inputMode)
	im := s.inputMode
	ctx.commitDirect(s, text)
	s.reset(im)
}

func (ctx *Context) execClearUnconfirmedInputs(s *State) {
	s.reading = nil
	s.okuri = nil
	s.abbrev = nil
	s.direct = nil
	s.asm.Reset()
	s.candList = nil
	s.completionCandidates = nil
	s.completionCursor = 0
}

func (ctx *Context) execConfirmPreComposition(s *State, m skkmode.InputMode) {
	text := renderForInputMode(string(s.reading)+string(s.okuri), m)
	im := s.inputMode
	ctx.commitDirect(s, text)
	s.reset(im)
}

func (ctx *Context) confirmComposition(s *State) {
	if s.compositionMode == skkmode.Completion {
		ctx.confirmCompletionResult(s)
		return
	}
	ctx.confirmCandidate(s)
}

func (ctx *Context) confirmCandidate(s *State) {
	im := s.inputMode
	if s.candList == nil {
		s.reset(im)
		return
	}
	c, ok := s.candList.Current()
	if !ok {
		s.reset(im)
		return
	}
	key := s.compositeKey()
	_ = ctx.cfg.Dicts.SelectCandidate(key, c)
	ctx.commitDirect(s, candidateDisplay(c, im))
	s.reset(im)
}

func (ctx *Context) confirmCompletionResult(s *State) {
	var text string
	if len(s.completionCandidates) > 0 && s.completionCursor < len(s.completionCandidates) {
		text = s.completionCandidates[s.completionCursor]
	} else {
		text = string(s.reading)
	}
	im := s.inputMode
	ctx.commitDirect(s, renderForInputMode(text, im))
	s.reset(im)
}

// confirmDirect implements spec §4.3's ConfirmDirect: it only consumes the
// key when there is pending romaji carry-over to commit, so a host can map
// Return to a plain newline otherwise. A lone trailing "n" flushes to ん
// (ン in Katakana) rather than committing the bare letter, same as any
// other mode transition that flushes pending carry-over.
func (ctx *Context) confirmDirect(s *State) bool {
	co := s.asm.CarryOver()
	if co == "" {
		return false
	}
	if flushed, ok := kana.FlushN(&s.asm); ok {
		ctx.commitDirect(s, renderForInputMode(flushed, s.inputMode))
		return true
	}
	ctx.commitDirect(s, co)
	s.asm.Reset()
	return true
}

func (ctx *Context) purge(s *State) {
	if s.candList == nil {
		return
	}
	c, ok := s.candList.Current()
	if !ok {
		return
	}
	key := s.compositeKey()
	_ = ctx.cfg.Dicts.PurgeCandidate(key, c)

	all := s.candList.All()
	remaining := make([]candidate.Candidate, 0, len(all))
	for _, existing := range all {
		if existing.Output != c.Output {
			remaining = append(remaining, existing)
		}
	}
	if len(remaining) == 0 {
		s.candList = nil
		if s.hadOkuri {
			s.compositionMode = skkmode.PreCompositionOkurigana
		} else {
			s.compositionMode = skkmode.PreComposition
		}
		return
	}
	s.candList.ReplaceAll(remaining)
}

func (ctx *Context) deletePrecomposition(s *State) {
	switch s.compositionMode {
	case skkmode.Abbreviation:
		if len(s.abbrev) > 0 {
			s.abbrev = s.abbrev[:len(s.abbrev)-1]
		}
		if len(s.abbrev) == 0 {
			s.reset(s.inputMode)
		}
	case skkmode.PreCompositionOkurigana:
		if len(s.okuri) > 0 {
			s.okuri = s.okuri[:len(s.okuri)-1]
		} else if len(s.reading) > 0 {
			s.reading = s.reading[:len(s.reading)-1]
			s.compositionMode = skkmode.PreComposition
		}
		if len(s.reading) == 0 && len(s.okuri) == 0 {
			s.reset(s.inputMode)
		}
	default:
		if len(s.reading) > 0 {
			s.reading = s.reading[:len(s.reading)-1]
		}
		if len(s.reading) == 0 {
			s.reset(s.inputMode)
		}
	}
}

// deleteDirect reports unhandled when nothing is pending, matching the
// conventional SKK behavior of leaving an ordinary Backspace to the editor
// (spec §4.3, "backspace handling, mode-dependent").
func (ctx *Context) deleteDirect(s *State) bool {
	if s.asm.CarryOver() != "" {
		s.asm.Reset()
		return true
	}
	if ctx.isNested() && s == ctx.top() && len(s.direct) > 0 {
		s.direct = s.direct[:len(s.direct)-1]
		return true
	}
	return false
}

func (ctx *Context) tryNextCandidate(s *State) {
	if s.compositionMode == skkmode.Abbreviation {
		s.reading = append([]rune(nil), s.abbrev...)
	}
	if s.candList == nil {
		ctx.buildCandidateList(s)
		if s.candList.Len() == 0 {
			ctx.enterRegister(s)
			return
		}
		s.compositionMode = skkmode.CompositionSelection
		return
	}
	if s.candList.Next() {
		s.compositionMode = skkmode.CompositionSelection
		return
	}
	ctx.enterRegister(s)
}

func (ctx *Context) tryPreviousCandidate(s *State) {
	if s.candList != nil && s.candList.Prev() {
		return
	}
	s.candList = nil
	if s.hadOkuri {
		s.compositionMode = skkmode.PreCompositionOkurigana
	} else {
		s.compositionMode = skkmode.PreComposition
	}
}

func (ctx *Context) nextCandidatePointer(s *State) {
	if s.compositionMode == skkmode.Completion {
		if s.completionCandidates == nil {
			// First pointer move after entering Completion: show the first match.
			ctx.ensureCompletionCandidates(s)
			return
		}
		if len(s.completionCandidates) == 0 {
			return
		}
		s.completionCursor = (s.completionCursor + 1) % len(s.completionCandidates)
		return
	}
	if s.candList != nil {
		s.candList.Next()
	}
}

func (ctx *Context) previousCandidatePointer(s *State) {
	if s.compositionMode == skkmode.Completion {
		if len(s.completionCandidates) == 0 {
			return
		}
		s.completionCursor = (s.completionCursor - 1 + len(s.completionCandidates)) % len(s.completionCandidates)
		return
	}
	if s.candList != nil {
		s.candList.Prev()
	}
}

func (ctx *Context) ensureCompletionCandidates(s *State) {
	if s.completionCandidates != nil {
		return
	}
	s.completionCandidates = ctx.cfg.Dicts.Complete(string(s.reading))
	s.completionCursor = 0
}
