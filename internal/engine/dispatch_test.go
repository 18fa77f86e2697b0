package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gskk/skkcore/internal/candidate"
	"github.com/gskk/skkcore/internal/dictstack"
	"github.com/gskk/skkcore/internal/skkmode"
)

func TestDirectRomajiToKana(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want string
	}{
		{"single vowel", "a", "あ"},
		{"consonant+vowel", "k a", "か"},
		{"digraph", "s h i", "し"},
		{"sokuon doubling", "t t a", "った"},
		{"n before vowel", "n i", "に"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext()
			press(t, ctx, tt.keys)
			require.Equal(t, tt.want, ctx.PollOutput())
			require.Equal(t, "", ctx.GetPreedit())
		})
	}
}

func TestDirectTrailingNFlushesOnConfirm(t *testing.T) {
	ctx, _ := newTestContext()
	handled := press(t, ctx, "n Return")
	require.True(t, handled)
	require.Equal(t, "ん", ctx.PollOutput())
}

func TestDirectReturnUnhandledWithNothingPending(t *testing.T) {
	ctx, _ := newTestContext()
	handled := press(t, ctx, "Return")
	require.False(t, handled)
	require.Equal(t, "", ctx.PollOutput())
}

func TestDirectBackspaceUnhandledWithNothingPending(t *testing.T) {
	ctx, _ := newTestContext()
	handled := press(t, ctx, "BackSpace")
	require.False(t, handled)
}

func TestDirectBackspaceClearsCarryOver(t *testing.T) {
	ctx, _ := newTestContext()
	press(t, ctx, "k") // accumulating, nothing emitted yet
	require.Equal(t, "k", ctx.GetPreedit())
	handled := press(t, ctx, "BackSpace")
	require.True(t, handled)
	require.Equal(t, "", ctx.GetPreedit())
}

func TestUppercaseEntersPreComposition(t *testing.T) {
	ctx, _ := newTestContext()
	press(t, ctx, "K a n j i")
	require.Equal(t, "▽かんじ", ctx.GetPreedit())
}

func TestDoubleUppercaseEntersOkurigana(t *testing.T) {
	ctx, _ := newTestContext()
	press(t, ctx, "O k u R u")
	// reading "おく", okuri "る"
	require.Equal(t, "▼おく*る【】", ctx.GetPreedit())
}

func TestPreCompositionConfirmAsKatakana(t *testing.T) {
	ctx, _ := newTestContext()
	press(t, ctx, "K a n a")
	handled := press(t, ctx, "q")
	require.True(t, handled)
	require.Equal(t, "カナ", ctx.PollOutput())
	require.Equal(t, "", ctx.GetPreedit())
}

func TestAbortFromPreCompositionFullyResets(t *testing.T) {
	ctx, _ := newTestContext()
	press(t, ctx, "K a")
	press(t, ctx, "C-g")
	require.Equal(t, "", ctx.GetPreedit())
	require.Equal(t, "", ctx.PollOutput())
}

func TestConversionSelectsCandidateAndLearnsIt(t *testing.T) {
	ctx, dict := newTestContext()
	dict.put(dictstack.CompositeKey{Reading: "かんじ"}, candidate.Candidate{Output: "漢字"})

	press(t, ctx, "K a n j i")
	handled := press(t, ctx, "space")
	require.True(t, handled)
	require.Equal(t, "▼漢字", ctx.GetPreedit())

	handled = press(t, ctx, "Return")
	require.True(t, handled)
	require.Equal(t, "漢字", ctx.PollOutput())
	require.Equal(t, "", ctx.GetPreedit())
	require.Len(t, dict.selected, 1)
	require.Equal(t, "漢字", dict.selected[0].Output)
}

func TestConversionCyclesThroughMultipleCandidates(t *testing.T) {
	ctx, dict := newTestContext()
	dict.put(dictstack.CompositeKey{Reading: "かんじ"},
		candidate.Candidate{Output: "漢字"}, candidate.Candidate{Output: "幹事"})

	press(t, ctx, "K a n j i")
	press(t, ctx, "space")
	require.Equal(t, "▼漢字", ctx.GetPreedit())
	press(t, ctx, "space")
	require.Equal(t, "▼幹事", ctx.GetPreedit())
	press(t, ctx, "x")
	require.Equal(t, "▼漢字", ctx.GetPreedit())
}

func TestConversionPurgeRemovesCandidate(t *testing.T) {
	ctx, dict := newTestContext()
	dict.put(dictstack.CompositeKey{Reading: "かんじ"},
		candidate.Candidate{Output: "漢字"}, candidate.Candidate{Output: "幹事"})

	press(t, ctx, "K a n j i")
	press(t, ctx, "space")
	press(t, ctx, "X")
	require.Len(t, dict.purged, 1)
	require.Equal(t, "漢字", dict.purged[0].Output)
	require.Equal(t, "▼幹事", ctx.GetPreedit())
}

func TestConversionSpaceAtLastCandidateEntersRegister(t *testing.T) {
	// spec §4.3 TryNextCandidate / §3 invariant: CompositionSelection's
	// cursor always indexes a valid candidate; exhausting it via space must
	// transition to Register, never leave the cursor dangling.
	ctx, dict := newTestContext()
	dict.put(dictstack.CompositeKey{Reading: "かんじ"}, candidate.Candidate{Output: "漢字"})

	press(t, ctx, "K a n j i")
	press(t, ctx, "space")
	require.Equal(t, "▼漢字", ctx.GetPreedit())
	require.False(t, ctx.isNested())

	// Only one candidate: the next space exhausts the list.
	press(t, ctx, "space")
	require.True(t, ctx.isNested())
	require.Equal(t, skkmode.Register, ctx.states[len(ctx.states)-2].compositionMode)
}

func TestConversionXAtFirstCandidateFallsBackToPreComposition(t *testing.T) {
	// spec §4.3 TryPreviousCandidate: retreating before the first candidate
	// falls back to PreComposition.
	ctx, dict := newTestContext()
	dict.put(dictstack.CompositeKey{Reading: "かんじ"},
		candidate.Candidate{Output: "漢字"}, candidate.Candidate{Output: "幹事"})

	press(t, ctx, "K a n j i")
	press(t, ctx, "space")
	require.Equal(t, "▼漢字", ctx.GetPreedit())

	press(t, ctx, "x")
	require.Equal(t, "▽かんじ", ctx.GetPreedit())
	require.False(t, ctx.isNested())
}

func TestConversionAbortRevertsToPreComposition(t *testing.T) {
	ctx, dict := newTestContext()
	dict.put(dictstack.CompositeKey{Reading: "かんじ"}, candidate.Candidate{Output: "漢字"})

	press(t, ctx, "K a n j i")
	press(t, ctx, "space")
	press(t, ctx, "C-g")
	require.Equal(t, "▽かんじ", ctx.GetPreedit())
}

func TestOkuriAriConversion(t *testing.T) {
	ctx, dict := newTestContext()
	dict.put(dictstack.CompositeKey{Reading: "おく", Okuri: "る"},
		candidate.Candidate{Output: "送", Okurigana: "る", HasOkuri: true})

	press(t, ctx, "O k u R u")
	require.Equal(t, "▼送る", ctx.GetPreedit())
	press(t, ctx, "Return")
	require.Equal(t, "送る", ctx.PollOutput())
}

func TestAutoStartHenkanOnTriggerPunctuation(t *testing.T) {
	ctx, dict := newTestContext()
	dict.put(dictstack.CompositeKey{Reading: "かんじ"}, candidate.Candidate{Output: "漢字"})

	press(t, ctx, "K a n j i .")
	// the trigger "。" is stripped from the lookup key and reattached to
	// the candidate's output.
	require.Equal(t, "▼漢字。", ctx.GetPreedit())
	press(t, ctx, "Return")
	require.Equal(t, "漢字。", ctx.PollOutput())
}

func TestNoCandidatesEntersRegister(t *testing.T) {
	ctx, _ := newTestContext()
	press(t, ctx, "K a n j i")
	press(t, ctx, "space")
	require.Equal(t, skkmode.Register, ctx.states[len(ctx.states)-2].compositionMode)
	require.True(t, ctx.isNested())
}

func TestRegisterCommitLearnsNewCandidate(t *testing.T) {
	ctx, dict := newTestContext()
	press(t, ctx, "K a n j i")
	press(t, ctx, "space") // no candidates -> enters Register
	require.True(t, ctx.isNested())

	// Register nesting renders the nested input verbatim through the
	// nested state's direct buffer while composing the new entry.
	press(t, ctx, "k a n j i")
	require.Equal(t, "▼かんじ【かんじ】", ctx.GetPreedit())

	press(t, ctx, "Return")
	require.False(t, ctx.isNested())
	require.Equal(t, "▼かんじ", ctx.GetPreedit())
	require.Len(t, dict.selected, 1)
	require.Equal(t, "かんじ", dict.selected[0].Output)

	press(t, ctx, "Return")
	require.Equal(t, "かんじ", ctx.PollOutput())
}

func TestRegisterAbortCancelsAndRevertsToPreComposition(t *testing.T) {
	ctx, _ := newTestContext()
	press(t, ctx, "K a n j i")
	press(t, ctx, "space")
	require.True(t, ctx.isNested())

	press(t, ctx, "C-g")
	require.False(t, ctx.isNested())
	require.Equal(t, "▽かんじ", ctx.GetPreedit())
}

func TestAbbreviationAccumulatesRawAsciiAsKey(t *testing.T) {
	ctx, dict := newTestContext()
	dict.put(dictstack.CompositeKey{Reading: "ascii"}, candidate.Candidate{Output: "アスキー"})

	press(t, ctx, "/ a s c i i")
	require.Equal(t, "▽ascii", ctx.GetPreedit())
	press(t, ctx, "space")
	require.Equal(t, "▼アスキー", ctx.GetPreedit())
}

func TestCompletionCyclesDictionaryMatches(t *testing.T) {
	ctx, dict := newTestContext()
	dict.put(dictstack.CompositeKey{Reading: "かんじ"}, candidate.Candidate{Output: "漢字"})
	dict.put(dictstack.CompositeKey{Reading: "かんたん"}, candidate.Candidate{Output: "簡単"})

	press(t, ctx, "K a n")
	press(t, ctx, "Tab")
	first := ctx.GetPreedit()
	require.Contains(t, []string{"■かんじ", "■かんたん"}, first)

	press(t, ctx, "Tab")
	second := ctx.GetPreedit()
	require.NotEqual(t, first, second)

	press(t, ctx, "Return")
	committed := ctx.PollOutput()
	require.Contains(t, []string{"かんじ", "かんたん"}, committed)
}

func TestInputModeCycling(t *testing.T) {
	ctx, _ := newTestContext()
	require.Equal(t, skkmode.Hiragana, ctx.top().inputMode)

	press(t, ctx, "q")
	require.Equal(t, skkmode.Katakana, ctx.top().inputMode)

	press(t, ctx, "q")
	require.Equal(t, skkmode.Hiragana, ctx.top().inputMode)

	press(t, ctx, "C-q")
	require.Equal(t, skkmode.HankakuKatakana, ctx.top().inputMode)
}

func TestAsciiAndZenkakuInputModes(t *testing.T) {
	ctx, _ := newTestContext()
	press(t, ctx, "l")
	require.Equal(t, skkmode.Ascii, ctx.top().inputMode)
	press(t, ctx, "a b c")
	require.Equal(t, "abc", ctx.PollOutput())

	press(t, ctx, "C-j")
	require.Equal(t, skkmode.Hiragana, ctx.top().inputMode)

	press(t, ctx, "L")
	require.Equal(t, skkmode.Zenkaku, ctx.top().inputMode)
	press(t, ctx, "a")
	require.Equal(t, "ａ", ctx.PollOutput())
}

func TestKatakanaInputModeRendersCommittedKana(t *testing.T) {
	ctx, _ := newTestContext()
	press(t, ctx, "q") // Hiragana -> Katakana
	press(t, ctx, "k a")
	require.Equal(t, "カ", ctx.PollOutput())
}

func TestProcessKeyEventsFromStringReportsFinalKeyOutcome(t *testing.T) {
	ctx, _ := newTestContext()
	handled, err := ctx.ProcessKeyEventsFromString("k a BackSpace")
	require.NoError(t, err)
	require.False(t, handled) // trailing BackSpace with nothing pending is unhandled
}

func TestResetCollapsesNestedRegisterAndKeepsInputMode(t *testing.T) {
	ctx, _ := newTestContext()
	press(t, ctx, "q") // switch to Katakana
	press(t, ctx, "K a n j i")
	press(t, ctx, "space") // no candidates -> Register
	require.True(t, ctx.isNested())

	ctx.Reset()
	require.False(t, ctx.isNested())
	require.Equal(t, skkmode.Katakana, ctx.top().inputMode)
	require.Equal(t, skkmode.Direct, ctx.top().compositionMode)
}

func TestSaveAndReloadDictionariesDelegateToStack(t *testing.T) {
	ctx, dict := newTestContext()
	require.NoError(t, ctx.SaveDictionaries())
	require.Equal(t, 1, dict.saved)
	// memDict isn't Reloadable, so this exercises the stack's "no
	// reloadable backend" no-op path rather than a real reload.
	require.NoError(t, ctx.ReloadDictionaries())
}
