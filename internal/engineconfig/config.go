// Package engineconfig holds the user-facing configuration knobs for a
// composition engine and the ConfiguredEngine wrapper that applies them,
// generalized from the teacher's tone-rule EngineConfig/ConfiguredEngine
// pair (me4hit-goviet-ime's internal/engine/config.go) to SKK's
// auto-start-henkan keywords and punctuation style.
package engineconfig

import (
	"github.com/gskk/skkcore/internal/engine"
	"github.com/gskk/skkcore/internal/skkmode"
)

// EngineConfig holds the settings a host chooses independently of the
// (immutable, rule-file-derived) kana trie and command table.
type EngineConfig struct {
	// PeriodStyle and CommaStyle select Japanese or ASCII punctuation
	// rendering (spec §4.2, §6).
	PeriodStyle skkmode.PeriodStyle
	CommaStyle  skkmode.CommaStyle

	// AutoStartHenkanKeywords are the kana trigger strings that start
	// conversion automatically from PreComposition (spec §4.4).
	AutoStartHenkanKeywords []string

	// InitialInputMode is the input mode a freshly built engine starts in.
	InitialInputMode skkmode.InputMode
}

// DefaultConfig returns the stock settings: Japanese punctuation, the
// traditional auto-start-henkan trigger set, starting in Hiragana.
func DefaultConfig() *EngineConfig {
	return &EngineConfig{
		PeriodStyle:             skkmode.PeriodJa,
		CommaStyle:              skkmode.CommaJa,
		AutoStartHenkanKeywords: defaultAutoStartHenkanKeywords(),
		InitialInputMode:        skkmode.Hiragana,
	}
}

func defaultAutoStartHenkanKeywords() []string {
	var out []string
	for _, r := range "。、」』" {
		out = append(out, string(r))
	}
	return out
}

// ConfiguredEngine pairs an *engine.Context with the EngineConfig that
// produced it, and keeps the two in sync when settings change at runtime.
type ConfiguredEngine struct {
	*engine.Context
	config *EngineConfig
}

// NewConfiguredEngine builds a Context from cfg (or DefaultConfig if nil)
// and the given engine.Config rule set (or engine.DefaultConfig if nil),
// applying the EngineConfig's runtime settings on top.
func NewConfiguredEngine(cfg *EngineConfig, rules *engine.Config) *ConfiguredEngine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if rules == nil {
		rules = engine.DefaultConfig()
	}
	rules.PeriodStyle = cfg.PeriodStyle
	rules.CommaStyle = cfg.CommaStyle
	rules.AutoStartHenkanKeywords = cfg.AutoStartHenkanKeywords

	ctx := engine.NewContext(rules)
	ctx.SetInputMode(cfg.InitialInputMode)

	return &ConfiguredEngine{Context: ctx, config: cfg}
}

// SetConfig replaces the runtime settings, pushing every field into the
// wrapped Context.
func (e *ConfiguredEngine) SetConfig(cfg *EngineConfig) {
	e.config = cfg
	e.Context.SetPeriodStyle(cfg.PeriodStyle)
	e.Context.SetCommaStyle(cfg.CommaStyle)
	e.Context.SetAutoStartHenkanKeywords(cfg.AutoStartHenkanKeywords)
}

// GetConfig returns the current settings.
func (e *ConfiguredEngine) GetConfig() *EngineConfig {
	return e.config
}

// SetPeriodStyle updates the period-rendering style in both the config and
// the running engine.
func (e *ConfiguredEngine) SetPeriodStyle(style skkmode.PeriodStyle) {
	e.config.PeriodStyle = style
	e.Context.SetPeriodStyle(style)
}

// SetCommaStyle updates the comma-rendering style in both the config and
// the running engine.
func (e *ConfiguredEngine) SetCommaStyle(style skkmode.CommaStyle) {
	e.config.CommaStyle = style
	e.Context.SetCommaStyle(style)
}

// SetAutoStartHenkanKeywords updates the trigger set in both the config and
// the running engine.
func (e *ConfiguredEngine) SetAutoStartHenkanKeywords(keywords []string) {
	e.config.AutoStartHenkanKeywords = keywords
	e.Context.SetAutoStartHenkanKeywords(keywords)
}
