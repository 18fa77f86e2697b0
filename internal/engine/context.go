package engine

import (
	"strings"

	"github.com/gskk/skkcore/internal/keyevent"
	"github.com/gskk/skkcore/internal/skkmode"
)

// Context is the host-facing handle: owning one composition's state stack
// (deeper than one only while a Register is open, spec §4.9), the shared
// immutable rule tables, and the committed-but-not-yet-polled output
// buffer. A Context is touched by one thread at a time; the host, not the
// core, is responsible for serializing access (spec §5).
type Context struct {
	cfg     *Config
	states  []*State
	output  strings.Builder
	trigger *autoStartMatcher
}

// NewContext builds a Context from cfg, or the stock DefaultConfig if cfg is
// nil.
func NewContext(cfg *Config) *Context {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Context{
		cfg:     cfg,
		states:  []*State{newState(skkmode.Hiragana)},
		trigger: newAutoStartMatcher(cfg.AutoStartHenkanKeywords),
	}
}

func (ctx *Context) top() *State {
	return ctx.states[len(ctx.states)-1]
}

func (ctx *Context) isNested() bool {
	return len(ctx.states) > 1
}

// PollOutput drains and returns the committed text accumulated since the
// last call (spec §6 poll_output).
func (ctx *Context) PollOutput() string {
	s := ctx.output.String()
	ctx.output.Reset()
	return s
}

// ProcessKeyEventsFromString parses s with the textual key-event language
// and feeds each event to ProcessKeyEvent in turn (spec §6
// process_key_events_from_string). Returns whether the final event was
// consumed.
func (ctx *Context) ProcessKeyEventsFromString(s string) (bool, error) {
	events, err := keyevent.ParseSequence(s)
	if err != nil {
		return false, err
	}
	var consumed bool
	for _, ev := range events {
		consumed = ctx.ProcessKeyEvent(ev)
	}
	return consumed, nil
}

// Reset discards all composition state (including any open Register nesting)
// and returns to Direct, keeping the current input mode of the outermost
// state.
func (ctx *Context) Reset() {
	im := ctx.states[0].inputMode
	ctx.states = []*State{newState(im)}
}

func (ctx *Context) SetInputMode(m skkmode.InputMode) {
	ctx.top().inputMode = m
}

func (ctx *Context) SetCompositionMode(m skkmode.CompositionMode) {
	ctx.top().compositionMode = m
}

func (ctx *Context) SetAutoStartHenkanKeywords(keywords []string) {
	ctx.cfg.AutoStartHenkanKeywords = keywords
	ctx.trigger = newAutoStartMatcher(keywords)
}

func (ctx *Context) SetPeriodStyle(style skkmode.PeriodStyle) {
	ctx.cfg.PeriodStyle = style
}

func (ctx *Context) SetCommaStyle(style skkmode.CommaStyle) {
	ctx.cfg.CommaStyle = style
}

// SaveDictionaries persists every dirty, savable dictionary in the stack
// (spec §6 save_dictionaries).
func (ctx *Context) SaveDictionaries() error {
	return ctx.cfg.Dicts.Save()
}

// ReloadDictionaries re-reads every file-backed dictionary in the stack from
// disk (spec §6 reload_dictionaries).
func (ctx *Context) ReloadDictionaries() error {
	return ctx.cfg.Dicts.Reload()
}
