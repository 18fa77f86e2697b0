package dictstack

// kanaToOkuriPrefix maps a hiragana character to the ASCII consonant the
// legacy SKK-JISYO file format appends to an okuri-ari midashi (ddskk's
// skk-rom-kana-vector table). Grounded on
// original_source/src/form_changer/kana_form_changer.rs's KANA_ROM_MAP.
var kanaToOkuriPrefix = map[rune]byte{
	'あ': 'a', 'い': 'i', 'う': 'u', 'え': 'e', 'お': 'o',
	'か': 'k', 'き': 'k', 'く': 'k', 'け': 'k', 'こ': 'k',
	'さ': 's', 'し': 's', 'す': 's', 'せ': 's', 'そ': 's',
	'た': 't', 'ち': 't', 'つ': 't', 'て': 't', 'と': 't',
	'な': 'n', 'に': 'n', 'ぬ': 'n', 'ね': 'n', 'の': 'n',
	'は': 'h', 'ひ': 'h', 'ふ': 'h', 'へ': 'h', 'ほ': 'h',
	'ま': 'm', 'み': 'm', 'む': 'm', 'め': 'm', 'も': 'm',
	'や': 'y', 'ゆ': 'y', 'よ': 'y',
	'ら': 'r', 'り': 'r', 'る': 'r', 'れ': 'r', 'ろ': 'r',
	'わ': 'w', 'ゐ': 'x', 'ゑ': 'x', 'を': 'w', 'ん': 'n',
	'が': 'g', 'ぎ': 'g', 'ぐ': 'g', 'げ': 'g', 'ご': 'g',
	'ざ': 'z', 'じ': 'z', 'ず': 'z', 'ぜ': 'z', 'ぞ': 'z',
	'だ': 'd', 'ぢ': 'd', 'づ': 'd', 'で': 'd', 'ど': 'd',
	'ば': 'b', 'び': 'b', 'ぶ': 'b', 'べ': 'b', 'ぼ': 'b',
	'ぱ': 'p', 'ぴ': 'p', 'ぷ': 'p', 'ぺ': 'p', 'ぽ': 'p',
	'ぁ': 'x', 'ぃ': 'x', 'ぅ': 'x', 'ぇ': 'x', 'ぉ': 'x',
	'っ': 't', 'ゃ': 'x', 'ゅ': 'x', 'ょ': 'x', 'ゎ': 'x',
}

// KanaToOkuriPrefix returns the ASCII consonant a legacy dictionary file
// uses for an okuri-ari midashi whose okurigana starts with kana, and
// whether one is defined.
func KanaToOkuriPrefix(kana rune) (byte, bool) {
	c, ok := kanaToOkuriPrefix[kana]
	return c, ok
}

// DictKey returns the on-disk midashi for a reading plus optional
// okurigana: the reading itself when there is no okurigana, or the reading
// with the okurigana's derived consonant appended (spec §4.6, §4.7).
func DictKey(reading string, okurigana string) string {
	if okurigana == "" {
		return reading
	}
	first := []rune(okurigana)[0]
	if c, ok := KanaToOkuriPrefix(first); ok {
		return reading + string(c)
	}
	return reading
}
