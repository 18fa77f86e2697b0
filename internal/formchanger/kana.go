// Package formchanger renders a base hiragana reading into the other
// input-mode variants, renders ASCII input as fullwidth, and expands
// numeric candidate tags (spec §4, "Form changers").
package formchanger

import "unicode/utf8"

// hiraganaKatakanaOffset relies on the fact that hiragana and katakana occupy
// parallel Unicode blocks offset by a fixed distance.
const hiraganaKatakanaOffset = 0x30A0 - 0x3040

// ToKatakana converts a hiragana string to katakana.
func ToKatakana(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 0x3041 && r <= 0x3096 {
			r += hiraganaKatakanaOffset
		}
		out = append(out, r)
	}
	return string(out)
}

// hankakuTable maps katakana (and the punctuation commonly produced by the
// kana trie) to their halfwidth (hankaku) forms.
var hankakuTable = map[rune]string{
	'ア': "ｱ", 'イ': "ｲ", 'ウ': "ｳ", 'エ': "ｴ", 'オ': "ｵ",
	'カ': "ｶ", 'キ': "ｷ", 'ク': "ｸ", 'ケ': "ｹ", 'コ': "ｺ",
	'ガ': "ｶﾞ", 'ギ': "ｷﾞ", 'グ': "ｸﾞ", 'ゲ': "ｹﾞ", 'ゴ': "ｺﾞ",
	'サ': "ｻ", 'シ': "ｼ", 'ス': "ｽ", 'セ': "ｾ", 'ソ': "ｿ",
	'ザ': "ｻﾞ", 'ジ': "ｼﾞ", 'ズ': "ｽﾞ", 'ゼ': "ｾﾞ", 'ゾ': "ｿﾞ",
	'タ': "ﾀ", 'チ': "ﾁ", 'ツ': "ﾂ", 'テ': "ﾃ", 'ト': "ﾄ",
	'ダ': "ﾀﾞ", 'ヂ': "ﾁﾞ", 'ヅ': "ﾂﾞ", 'デ': "ﾃﾞ", 'ド': "ﾄﾞ",
	'ナ': "ﾅ", 'ニ': "ﾆ", 'ヌ': "ﾇ", 'ネ': "ﾈ", 'ノ': "ﾉ",
	'ハ': "ﾊ", 'ヒ': "ﾋ", 'フ': "ﾌ", 'ヘ': "ﾍ", 'ホ': "ﾎ",
	'バ': "ﾊﾞ", 'ビ': "ﾋﾞ", 'ブ': "ﾌﾞ", 'ベ': "ﾍﾞ", 'ボ': "ﾎﾞ",
	'パ': "ﾊﾟ", 'ピ': "ﾋﾟ", 'プ': "ﾌﾟ", 'ペ': "ﾍﾟ", 'ポ': "ﾎﾟ",
	'マ': "ﾏ", 'ミ': "ﾐ", 'ム': "ﾑ", 'メ': "ﾒ", 'モ': "ﾓ",
	'ヤ': "ﾔ", 'ユ': "ﾕ", 'ヨ': "ﾖ",
	'ラ': "ﾗ", 'リ': "ﾘ", 'ル': "ﾙ", 'レ': "ﾚ", 'ロ': "ﾛ",
	'ワ': "ﾜ", 'ヲ': "ｦ", 'ン': "ﾝ",
	'ッ': "ｯ", 'ャ': "ｬ", 'ュ': "ｭ", 'ョ': "ｮ",
	'ー': "ｰ", '。': "｡", '、': "､", '「': "｢", '」': "｣",
}

// ToHankakuKatakana converts a hiragana string to halfwidth katakana.
func ToHankakuKatakana(s string) string {
	kata := ToKatakana(s)
	var out []byte
	for _, r := range kata {
		if h, ok := hankakuTable[r]; ok {
			out = append(out, h...)
			continue
		}
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		out = append(out, buf[:n]...)
	}
	return string(out)
}

// ascii2Zenkaku maps printable ASCII to its fullwidth (zenkaku) form,
// matching the conventional U+FF00 offset used for '!'..'~', with space
// handled separately (U+3000).
func ascii2Zenkaku(r rune) rune {
	if r == ' ' {
		return '　'
	}
	if r >= '!' && r <= '~' {
		return r - '!' + '！'
	}
	return r
}

// ToZenkakuAscii renders raw ASCII input as fullwidth characters (the
// Zenkaku input mode, spec §3).
func ToZenkakuAscii(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, ascii2Zenkaku(r))
	}
	return string(out)
}
