// Package rule provides the stock SKK rule data (kana-assembly table +
// command table) in the engine's low-level types: a hand-authored default
// romaji→hiragana table equivalent to the stock SKK rule every
// implementation ships, and a default command.Table.
//
// Rule *files* are TOML, and TOML decoding is out of scope for the core
// (spec §1). This package has no loader for rule data decoded by a host:
// the built-in defaults below are the only rules it produces.
package rule

import "github.com/gskk/skkcore/internal/kana"

// DefaultHiraganaConversion is the standard romaji→hiragana rule table
// (monographs, digraphs, sokuon/撥音 handling via carry-over), grounded on
// the conventional SKK/AZIK base rule referenced throughout
// original_source/cskk/tests/*.rs.
func DefaultHiraganaConversion() []kana.Rule {
	rules := []kana.Rule{
		{Input: "a", Kana: "あ"}, {Input: "i", Kana: "い"}, {Input: "u", Kana: "う"},
		{Input: "e", Kana: "え"}, {Input: "o", Kana: "お"},

		{Input: "ka", Kana: "か"}, {Input: "ki", Kana: "き"}, {Input: "ku", Kana: "く"},
		{Input: "ke", Kana: "け"}, {Input: "ko", Kana: "こ"},
		{Input: "kya", Kana: "きゃ"}, {Input: "kyu", Kana: "きゅ"}, {Input: "kyo", Kana: "きょ"},

		{Input: "ga", Kana: "が"}, {Input: "gi", Kana: "ぎ"}, {Input: "gu", Kana: "ぐ"},
		{Input: "ge", Kana: "げ"}, {Input: "go", Kana: "ご"},
		{Input: "gya", Kana: "ぎゃ"}, {Input: "gyu", Kana: "ぎゅ"}, {Input: "gyo", Kana: "ぎょ"},

		{Input: "sa", Kana: "さ"}, {Input: "si", Kana: "し"}, {Input: "shi", Kana: "し"},
		{Input: "su", Kana: "す"}, {Input: "se", Kana: "せ"}, {Input: "so", Kana: "そ"},
		{Input: "sha", Kana: "しゃ"}, {Input: "shu", Kana: "しゅ"}, {Input: "sho", Kana: "しょ"},

		{Input: "za", Kana: "ざ"}, {Input: "zi", Kana: "じ"}, {Input: "ji", Kana: "じ"},
		{Input: "zu", Kana: "ず"}, {Input: "ze", Kana: "ぜ"}, {Input: "zo", Kana: "ぞ"},

		{Input: "ta", Kana: "た"}, {Input: "ti", Kana: "ち"}, {Input: "chi", Kana: "ち"},
		{Input: "tu", Kana: "つ"}, {Input: "tsu", Kana: "つ"}, {Input: "te", Kana: "て"},
		{Input: "to", Kana: "と"},
		{Input: "cha", Kana: "ちゃ"}, {Input: "chu", Kana: "ちゅ"}, {Input: "cho", Kana: "ちょ"},

		{Input: "da", Kana: "だ"}, {Input: "di", Kana: "ぢ"}, {Input: "du", Kana: "づ"},
		{Input: "de", Kana: "で"}, {Input: "do", Kana: "ど"},

		{Input: "na", Kana: "な"}, {Input: "ni", Kana: "に"}, {Input: "nu", Kana: "ぬ"},
		{Input: "ne", Kana: "ね"}, {Input: "no", Kana: "の"},
		{Input: "nya", Kana: "にゃ"}, {Input: "nyu", Kana: "にゅ"}, {Input: "nyo", Kana: "にょ"},

		{Input: "ha", Kana: "は"}, {Input: "hi", Kana: "ひ"}, {Input: "hu", Kana: "ふ"},
		{Input: "fu", Kana: "ふ"}, {Input: "he", Kana: "へ"}, {Input: "ho", Kana: "ほ"},
		{Input: "hya", Kana: "ひゃ"}, {Input: "hyu", Kana: "ひゅ"}, {Input: "hyo", Kana: "ひょ"},

		{Input: "ba", Kana: "ば"}, {Input: "bi", Kana: "び"}, {Input: "bu", Kana: "ぶ"},
		{Input: "be", Kana: "べ"}, {Input: "bo", Kana: "ぼ"},

		{Input: "pa", Kana: "ぱ"}, {Input: "pi", Kana: "ぴ"}, {Input: "pu", Kana: "ぷ"},
		{Input: "pe", Kana: "ぺ"}, {Input: "po", Kana: "ぽ"},

		{Input: "ma", Kana: "ま"}, {Input: "mi", Kana: "み"}, {Input: "mu", Kana: "む"},
		{Input: "me", Kana: "め"}, {Input: "mo", Kana: "も"},
		{Input: "mya", Kana: "みゃ"}, {Input: "myu", Kana: "みゅ"}, {Input: "myo", Kana: "みょ"},

		{Input: "ya", Kana: "や"}, {Input: "yu", Kana: "ゆ"}, {Input: "yo", Kana: "よ"},

		{Input: "ra", Kana: "ら"}, {Input: "ri", Kana: "り"}, {Input: "ru", Kana: "る"},
		{Input: "re", Kana: "れ"}, {Input: "ro", Kana: "ろ"},
		{Input: "rya", Kana: "りゃ"}, {Input: "ryu", Kana: "りゅ"}, {Input: "ryo", Kana: "りょ"},

		{Input: "wa", Kana: "わ"}, {Input: "wo", Kana: "を"}, {Input: "wyi", Kana: "ゐ"},
		{Input: "wye", Kana: "ゑ"},

		{Input: "nn", Kana: "ん"}, {Input: "n'", Kana: "ん"},

		{Input: "-", Kana: "ー"},
	}

	// Sokuon: doubling any consonant other than 'n' produces "っ" and
	// carries the doubled consonant over for the following syllable.
	for _, c := range "bcdfghjklmpqrstvwxyz" {
		rules = append(rules, kana.Rule{Input: string(c) + string(c), Kana: "っ", Carry: string(c)})
	}

	return rules
}
