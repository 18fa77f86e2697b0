package engine

import (
	"github.com/gskk/skkcore/internal/command"
	"github.com/gskk/skkcore/internal/dictstack"
	"github.com/gskk/skkcore/internal/kana"
	"github.com/gskk/skkcore/internal/rule"
	"github.com/gskk/skkcore/internal/skkmode"
)

// Config bundles the immutable, shareable rule tables and the mutable
// dictionary stack a Context is built from (spec §3 Lifecycles, §5: rule
// tables are immutable after load and may be shared by reference across
// contexts).
type Config struct {
	Trie  *kana.Trie
	Table *command.Table
	Dicts *dictstack.Stack

	PeriodStyle skkmode.PeriodStyle
	CommaStyle  skkmode.CommaStyle

	// AutoStartHenkanKeywords are matched against assembled kana, not raw
	// keys (spec §4.4).
	AutoStartHenkanKeywords []string
}

// DefaultConfig returns the stock rule set: the default romaji->hiragana
// table, the default command table, an empty dictionary stack, and the
// traditional auto-start-henkan trigger set (。、」』).
func DefaultConfig() *Config {
	return &Config{
		Trie:                    kana.Build(rule.DefaultHiraganaConversion()),
		Table:                   rule.DefaultCommandTable(),
		Dicts:                   dictstack.NewStack(dictstack.Empty{}),
		PeriodStyle:             skkmode.PeriodJa,
		CommaStyle:              skkmode.CommaJa,
		AutoStartHenkanKeywords: defaultAutoStartHenkanKeywords(),
	}
}

func defaultAutoStartHenkanKeywords() []string {
	var out []string
	for _, r := range "。、」』" {
		out = append(out, string(r))
	}
	return out
}
