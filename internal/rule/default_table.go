package rule

import (
	"github.com/gskk/skkcore/internal/command"
	"github.com/gskk/skkcore/internal/keyevent"
	"github.com/gskk/skkcore/internal/skkmode"
)

func key(sym string) keyevent.KeyEvent { return keyevent.KeyEvent{Sym: keyevent.KeySym(sym)} }

func ctrl(sym string) keyevent.KeyEvent {
	return keyevent.KeyEvent{Sym: keyevent.KeySym(sym), Mods: keyevent.ModControl}
}

// DefaultCommandTable builds the stock command table: the special keys
// every composition mode needs beyond plain kana input (which the kana
// trie, not this table, handles). Grounded on the transitions exercised by
// original_source/tests/rule_specific/default_rule.rs (q / C-q input-mode
// cycling, BackSpace, candidate paging) and the Instruction set in
// original_source/src/command_handler/instruction.rs.
func DefaultCommandTable() *command.Table {
	t := command.NewTable()

	romkanaModes := []skkmode.InputMode{skkmode.Hiragana, skkmode.Katakana, skkmode.HankakuKatakana}

	// Direct mode: global keys regardless of input mode.
	t.BindAllModes(skkmode.Direct, ctrl("g"), command.Simple(command.Abort))
	t.BindAllModes(skkmode.Direct, key("BackSpace"), command.Simple(command.DeleteDirect))

	for _, im := range romkanaModes {
		t.Bind(skkmode.Direct, im, key("l"), command.WithInputMode(command.ChangeInputMode, skkmode.Ascii))
		t.Bind(skkmode.Direct, im, key("L"), command.WithInputMode(command.ChangeInputMode, skkmode.Zenkaku))
		t.Bind(skkmode.Direct, im, key("/"), command.WithCompositionMode(command.ChangeCompositionMode, skkmode.Abbreviation))
	}
	t.Bind(skkmode.Direct, skkmode.Ascii, ctrl("j"), command.WithInputMode(command.ChangeInputMode, skkmode.Hiragana))
	t.Bind(skkmode.Direct, skkmode.Zenkaku, ctrl("j"), command.WithInputMode(command.ChangeInputMode, skkmode.Hiragana))

	// Return and C-j commit whatever romaji carry-over is pending; with
	// nothing pending, ConfirmDirect reports unhandled so the host can still
	// map Return to a newline.
	for _, im := range romkanaModes {
		t.Bind(skkmode.Direct, im, key("Return"), command.Simple(command.ConfirmDirect))
		t.Bind(skkmode.Direct, im, ctrl("j"), command.Simple(command.ConfirmDirect))
	}

	// "q" / "C-q" cycle Hiragana -> Katakana and Hiragana -> HankakuKatakana
	// -> Katakana respectively, in both directions.
	t.Bind(skkmode.Direct, skkmode.Hiragana, key("q"), command.WithInputMode(command.ChangeInputMode, skkmode.Katakana))
	t.Bind(skkmode.Direct, skkmode.Katakana, key("q"), command.WithInputMode(command.ChangeInputMode, skkmode.Hiragana))
	t.Bind(skkmode.Direct, skkmode.HankakuKatakana, key("q"), command.WithInputMode(command.ChangeInputMode, skkmode.Hiragana))
	t.Bind(skkmode.Direct, skkmode.Hiragana, ctrl("q"), command.WithInputMode(command.ChangeInputMode, skkmode.HankakuKatakana))
	t.Bind(skkmode.Direct, skkmode.HankakuKatakana, ctrl("q"), command.WithInputMode(command.ChangeInputMode, skkmode.Katakana))
	t.Bind(skkmode.Direct, skkmode.Katakana, ctrl("q"), command.WithInputMode(command.ChangeInputMode, skkmode.Hiragana))

	// PreComposition: the same q/C-q keys confirm the pending string in
	// the chosen rendering instead of converting it.
	t.BindAllModes(skkmode.PreComposition, ctrl("g"), command.Simple(command.Abort))
	t.BindAllModes(skkmode.PreComposition, key("BackSpace"), command.Simple(command.DeletePrecomposition))
	t.BindAllModes(skkmode.PreComposition, key("space"), command.Simple(command.TryNextCandidate))
	t.BindAllModes(skkmode.PreComposition, key("Return"), command.Simple(command.ConfirmComposition))

	t.Bind(skkmode.PreComposition, skkmode.Hiragana, key("q"), command.WithInputMode(command.ConfirmPreComposition, skkmode.Katakana))
	t.Bind(skkmode.PreComposition, skkmode.Katakana, key("q"), command.WithInputMode(command.ConfirmPreComposition, skkmode.Hiragana))
	t.Bind(skkmode.PreComposition, skkmode.HankakuKatakana, key("q"), command.WithInputMode(command.ConfirmPreComposition, skkmode.Hiragana))
	t.Bind(skkmode.PreComposition, skkmode.Hiragana, ctrl("q"), command.WithInputMode(command.ConfirmPreComposition, skkmode.HankakuKatakana))
	t.Bind(skkmode.PreComposition, skkmode.Katakana, ctrl("q"), command.WithInputMode(command.ConfirmPreComposition, skkmode.HankakuKatakana))
	t.Bind(skkmode.PreComposition, skkmode.HankakuKatakana, ctrl("q"), command.WithInputMode(command.ConfirmPreComposition, skkmode.Katakana))

	// Tab starts dictionary-key completion, cycling to the first match.
	t.BindAllModes(skkmode.PreComposition, key("Tab"),
		command.WithCompositionMode(command.ChangeCompositionMode, skkmode.Completion),
		command.Simple(command.NextCandidatePointer))

	// PreCompositionOkurigana behaves like PreComposition for abort/delete.
	t.BindAllModes(skkmode.PreCompositionOkurigana, ctrl("g"), command.Simple(command.Abort))
	t.BindAllModes(skkmode.PreCompositionOkurigana, key("BackSpace"), command.Simple(command.DeletePrecomposition))

	// CompositionSelection: page through candidates, confirm, or purge.
	t.BindAllModes(skkmode.CompositionSelection, ctrl("g"), command.Simple(command.Abort))
	t.BindAllModes(skkmode.CompositionSelection, key("space"), command.Simple(command.TryNextCandidate))
	t.BindAllModes(skkmode.CompositionSelection, key("x"), command.Simple(command.TryPreviousCandidate))
	t.BindAllModes(skkmode.CompositionSelection, key("Return"), command.Simple(command.ConfirmComposition))
	t.BindAllModes(skkmode.CompositionSelection, key("X"), command.Simple(command.Purge))

	// Register: Enter finishes the nested composition and resumes the
	// parent context (handled procedurally by the engine's Register
	// stack); Abort cancels the registration entirely.
	t.BindAllModes(skkmode.Register, ctrl("g"), command.Simple(command.Abort))
	t.BindAllModes(skkmode.Register, key("Return"), command.Simple(command.FinishKeyEvent))

	// Abbreviation: plain ASCII accumulates as the conversion key itself
	// (engine-level passthrough); space starts conversion like
	// PreComposition.
	t.BindAllModes(skkmode.Abbreviation, ctrl("g"), command.Simple(command.Abort))
	t.BindAllModes(skkmode.Abbreviation, key("BackSpace"), command.Simple(command.DeletePrecomposition))
	t.BindAllModes(skkmode.Abbreviation, key("space"), command.Simple(command.TryNextCandidate))
	t.BindAllModes(skkmode.Abbreviation, key("Return"), command.Simple(command.ConfirmComposition))

	// Completion: Tab cycles completion candidates; Enter and BackSpace
	// confirm. Any other key, space included, confirms and is then
	// processed normally.
	t.BindAllModes(skkmode.Completion, ctrl("g"), command.Simple(command.Abort))
	t.BindAllModes(skkmode.Completion, key("Tab"), command.Simple(command.NextCandidatePointer))
	t.BindAllModes(skkmode.Completion, key("Return"), command.Simple(command.ConfirmComposition))
	t.BindAllModes(skkmode.Completion, key("BackSpace"), command.Simple(command.ConfirmComposition))

	return t
}
