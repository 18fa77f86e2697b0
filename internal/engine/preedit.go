package engine

import "github.com/gskk/skkcore/internal/skkmode"

// GetPreedit renders the current pre-edit string (spec §4.10, §6
// get_preedit).
func (ctx *Context) GetPreedit() string {
	return ctx.renderPreeditAt(0)
}

func (ctx *Context) renderPreeditAt(idx int) string {
	s := ctx.states[idx]
	switch s.compositionMode {
	case skkmode.Direct:
		return string(s.direct) + s.asm.CarryOver()
	case skkmode.PreComposition:
		return "▽" + renderForInputMode(string(s.reading), s.inputMode) + s.asm.CarryOver()
	case skkmode.PreCompositionOkurigana:
		return "▽" + renderForInputMode(string(s.reading), s.inputMode) + "*" +
			renderForInputMode(string(s.okuri), s.inputMode) + s.asm.CarryOver()
	case skkmode.CompositionSelection:
		cur, ok := s.candList.Current()
		if !ok {
			return "▼"
		}
		return "▼" + candidateDisplay(cur, s.inputMode)
	case skkmode.Register:
		head := "▼" + renderForInputMode(string(s.reading), s.inputMode)
		if s.hadOkuri {
			head += "*" + renderForInputMode(string(s.okuri), s.inputMode)
		}
		nested := ""
		if idx+1 < len(ctx.states) {
			nested = ctx.renderPreeditAt(idx + 1)
		}
		return head + "【" + nested + "】"
	case skkmode.Abbreviation:
		return "▽" + string(s.abbrev)
	case skkmode.Completion:
		if len(s.completionCandidates) > 0 && s.completionCursor < len(s.completionCandidates) {
			return "■" + s.completionCandidates[s.completionCursor]
		}
		return "■" + renderForInputMode(string(s.reading), s.inputMode)
	default:
		return ""
	}
}

// GetPreeditUnderline returns the (byte offset, character count) of the
// emphasized segment of GetPreedit's result (spec §4.10, §6
// get_preedit_underline).
func (ctx *Context) GetPreeditUnderline() (int, int) {
	return ctx.underlineAt(0)
}

func (ctx *Context) underlineAt(idx int) (int, int) {
	s := ctx.states[idx]
	switch s.compositionMode {
	case skkmode.PreComposition:
		reading := renderForInputMode(string(s.reading), s.inputMode)
		return len("▽"), len([]rune(reading))
	case skkmode.PreCompositionOkurigana:
		reading := renderForInputMode(string(s.reading), s.inputMode)
		okuri := renderForInputMode(string(s.okuri), s.inputMode)
		return len("▽"), len([]rune(reading)) + 1 + len([]rune(okuri))
	case skkmode.CompositionSelection:
		cur, ok := s.candList.Current()
		if !ok {
			return len("▼"), 0
		}
		return len("▼"), len([]rune(candidateDisplay(cur, s.inputMode)))
	case skkmode.Register:
		head := "▼" + renderForInputMode(string(s.reading), s.inputMode)
		if s.hadOkuri {
			head += "*" + renderForInputMode(string(s.okuri), s.inputMode)
		}
		prefixBytes := len(head) + len("【")
		if idx+1 >= len(ctx.states) {
			return prefixBytes, 0
		}
		innerOffset, innerCount := ctx.underlineAt(idx + 1)
		return prefixBytes + innerOffset, innerCount
	case skkmode.Abbreviation:
		return len("▽"), len([]rune(string(s.abbrev)))
	case skkmode.Completion:
		if len(s.completionCandidates) > 0 && s.completionCursor < len(s.completionCandidates) {
			return len("■"), len([]rune(s.completionCandidates[s.completionCursor]))
		}
		return len("■"), len([]rune(string(s.reading)))
	default:
		return 0, 0
	}
}
