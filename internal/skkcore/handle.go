// Package skkcore is the host-facing façade over internal/engine: the
// Go-native analogue of the C-ABI's skk_context_* functions (spec §6),
// minus the cgo linkage itself (out of scope per spec §1). cmd/imecored
// exports a Handle over D-Bus; any other Go host can import this package
// directly instead.
package skkcore

import (
	"github.com/gskk/skkcore/internal/dictstack"
	"github.com/gskk/skkcore/internal/engine"
	"github.com/gskk/skkcore/internal/engineconfig"
	"github.com/gskk/skkcore/internal/keyevent"
	"github.com/gskk/skkcore/internal/skkmode"
)

// Handle is an owning wrapper around one composition engine (spec §6
// new_context/free_context). There is no Close beyond letting it be
// garbage-collected: the engine holds no OS resources of its own, only
// references into the dictionary stack the caller built.
type Handle struct {
	engine *engineconfig.ConfiguredEngine
}

// New builds a Handle from an already-assembled dictionary stack, using the
// stock rule table and default runtime settings.
func New(dicts *dictstack.Stack) *Handle {
	rules := engine.DefaultConfig()
	if dicts != nil {
		rules.Dicts = dicts
	}
	return &Handle{engine: engineconfig.NewConfiguredEngine(nil, rules)}
}

// NewWithConfig builds a Handle from an explicit EngineConfig and rule set,
// for hosts that load custom rule files or override punctuation/trigger
// settings up front.
func NewWithConfig(cfg *engineconfig.EngineConfig, rules *engine.Config) *Handle {
	return &Handle{engine: engineconfig.NewConfiguredEngine(cfg, rules)}
}

// ProcessKey feeds one key event to the engine (spec §6 process_key).
func (h *Handle) ProcessKey(ev keyevent.KeyEvent) bool {
	return h.engine.ProcessKeyEvent(ev)
}

// ProcessKeyText parses a single textual key event (spec §4.1) and feeds it
// to the engine.
func (h *Handle) ProcessKeyText(text string) (bool, error) {
	ev, err := keyevent.Parse(text)
	if err != nil {
		return false, err
	}
	return h.engine.ProcessKeyEvent(ev), nil
}

// ProcessKeyEventsFromString is the textual-sequence test helper (spec §6).
func (h *Handle) ProcessKeyEventsFromString(s string) (bool, error) {
	return h.engine.ProcessKeyEventsFromString(s)
}

// PollOutput drains and returns committed text (spec §6 poll_output).
func (h *Handle) PollOutput() string {
	return h.engine.PollOutput()
}

// GetPreedit returns the current pre-edit string (spec §6 get_preedit).
func (h *Handle) GetPreedit() string {
	return h.engine.GetPreedit()
}

// GetPreeditUnderline returns the emphasis range over GetPreedit's result
// (spec §6 get_preedit_underline).
func (h *Handle) GetPreeditUnderline() (int, int) {
	return h.engine.GetPreeditUnderline()
}

func (h *Handle) SetInputMode(m skkmode.InputMode) { h.engine.SetInputMode(m) }

func (h *Handle) SetCompositionMode(m skkmode.CompositionMode) { h.engine.SetCompositionMode(m) }

func (h *Handle) Reset() { h.engine.Reset() }

func (h *Handle) SetAutoStartHenkanKeywords(keywords []string) {
	h.engine.SetAutoStartHenkanKeywords(keywords)
}

func (h *Handle) SetPeriodStyle(style skkmode.PeriodStyle) { h.engine.SetPeriodStyle(style) }

func (h *Handle) SetCommaStyle(style skkmode.CommaStyle) { h.engine.SetCommaStyle(style) }

// SaveDictionaries persists every dirty, writable dictionary (spec §6
// save_dictionaries).
func (h *Handle) SaveDictionaries() error {
	return h.engine.SaveDictionaries()
}

// ReloadDictionaries re-reads every file-backed dictionary (spec §6
// reload_dictionaries).
func (h *Handle) ReloadDictionaries() error {
	return h.engine.ReloadDictionaries()
}
