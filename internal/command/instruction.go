// Package command implements the state engine's command table (spec
// §4.3): a four-level lookup from composition-mode, input-mode and
// normalized key event to an ordered list of instructions, plus the
// Instruction variants those lists are built from.
//
// Grounded on original_source/src/command_handler/instruction.rs (the
// Instruction enum) and configurable_command_handler.rs (the lookup
// shape).
package command

import "github.com/gskk/skkcore/internal/skkmode"

// Kind identifies an Instruction variant.
type Kind int

const (
	// Abort cancels the current composition, selection or registration.
	Abort Kind = iota
	// ChangeInputMode switches the active input mode.
	ChangeInputMode
	// OutputNNIfAny converts a lone pending "n" carry-over to ん/ン before
	// the key event's own processing continues.
	OutputNNIfAny
	// FlushPreviousCarryOver discards any pending kana-trie carry-over.
	FlushPreviousCarryOver
	// FlushConvertedKana commits the kana assembled so far without
	// starting a conversion.
	FlushConvertedKana
	// ClearUnconfirmedInputs discards all not-yet-confirmed input state.
	ClearUnconfirmedInputs
	// ChangeCompositionMode switches the active composition mode.
	ChangeCompositionMode
	// FinishKeyEvent ends key-event processing without passing the event
	// through as if unhandled.
	FinishKeyEvent
	// PassthroughKeyEvent ends key-event processing and reports the event
	// as unhandled.
	PassthroughKeyEvent
	// TryNextCandidate advances the candidate pointer, entering
	// CompositionSelection (or Register, if candidates are exhausted).
	TryNextCandidate
	// TryPreviousCandidate moves the candidate pointer back.
	TryPreviousCandidate
	// NextCandidatePointer advances the candidate pointer within an
	// existing candidate list.
	NextCandidatePointer
	// PreviousCandidatePointer moves the candidate pointer back within an
	// existing candidate list.
	PreviousCandidatePointer
	// UpdateCandidateList rebuilds the candidate list for the current
	// conversion key.
	UpdateCandidateList
	// ConfirmComposition commits the currently selected candidate.
	ConfirmComposition
	// ConfirmPreComposition commits the pre-conversion string, rendered
	// through the given input mode, without converting it.
	ConfirmPreComposition
	// ConfirmAsHiragana commits the pre-conversion string as hiragana.
	ConfirmAsHiragana
	// ConfirmAsKatakana commits the pre-conversion string as katakana.
	ConfirmAsKatakana
	// ConfirmAsJISX0201 commits the pre-conversion string as halfwidth
	// katakana.
	ConfirmAsJISX0201
	// ConfirmDirect commits whatever is pending in Direct mode.
	ConfirmDirect
	// Purge removes the current candidate from the user dictionary.
	Purge
	// DeletePrecomposition deletes one character of pending pre-conversion
	// input.
	DeletePrecomposition
	// DeleteDirect discards pending romaji carry-over or, inside a Register
	// nested state, one character of its not-yet-committed input; output
	// already committed to the host is not touched.
	DeleteDirect
)

// Instruction is one step of a command's effect list. Mode carries the
// payload for ChangeInputMode, OutputNNIfAny and ConfirmPreComposition;
// CompositionMode carries the payload for ChangeCompositionMode. Both are
// zero-valued (and unused) for instructions that take no argument.
type Instruction struct {
	Kind            Kind
	Mode            skkmode.InputMode
	CompositionMode skkmode.CompositionMode
}

func Simple(k Kind) Instruction { return Instruction{Kind: k} }

func WithInputMode(k Kind, m skkmode.InputMode) Instruction {
	return Instruction{Kind: k, Mode: m}
}

func WithCompositionMode(k Kind, m skkmode.CompositionMode) Instruction {
	return Instruction{Kind: k, CompositionMode: m}
}
