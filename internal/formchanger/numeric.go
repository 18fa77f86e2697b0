package formchanger

import (
	"regexp"
	"strconv"
	"strings"
)

var numericRegexp = regexp.MustCompile(`\d+`)

var digitKanji = [10]string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
var digitZenkaku = [10]string{"０", "１", "２", "３", "４", "５", "６", "７", "８", "９"}

var numericKanjiChars = []string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九", "十", "百", "千", "万", "億", "兆", "京"}
var daijiChars = []string{"零", "壱", "弐", "参", "四", "伍", "六", "七", "八", "九", "拾", "百", "阡", "萬", "億", "兆", "京"}
var kuraiKanji = [5]string{"", "万", "億", "兆", "京"}

// NumericToKanjiEach replaces each digit in s with its kanji numeral,
// digit-by-digit (the "#2" tag in a jisyo annotation: 漢数字で位取りなし),
// e.g. 101 -> 一〇一.
func NumericToKanjiEach(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteString(digitKanji[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NumericToZenkaku replaces each digit in s with its fullwidth form (the
// "#1" tag: 全角化).
func NumericToZenkaku(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteString(digitZenkaku[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NumericToPlaceValueKanji replaces the first run of digits in s with its
// place-value kanji rendering (the "#3" tag: 漢数字で位取りあり), e.g. 111 ->
// 百十一.
func NumericToPlaceValueKanji(s string) string {
	return replaceFirstNumber(s, func(n uint64) string {
		return formatPlaceValueKanji(n, false)
	})
}

// NumericToDaiji replaces the first run of digits in s with the legal-daiji
// (大字) rendering (the "#5" tag), used on formal documents to resist
// tampering.
func NumericToDaiji(s string, legalOnly bool) string {
	replacement := daijiChars
	if legalOnly {
		replacement = numericKanjiChars
	}
	return replaceFirstNumber(s, func(n uint64) string {
		kanji := formatPlaceValueKanji(n, true)
		for i, k := range numericKanjiChars {
			kanji = strings.ReplaceAll(kanji, k, replacement[i])
		}
		return kanji
	})
}

func replaceFirstNumber(s string, render func(uint64) string) string {
	loc := numericRegexp.FindStringIndex(s)
	if loc == nil {
		return s
	}
	n, err := strconv.ParseUint(s[loc[0]:loc[1]], 10, 64)
	if err != nil {
		return s
	}
	return s[:loc[0]] + render(n) + s[loc[1]:]
}

const maxKeta = 20

// formatPlaceValueKanji renders n in place-value kanji notation.
// explicitOne controls whether a leading 1 before 千/百/十 is written out
// (一千 vs 千).
func formatPlaceValueKanji(n uint64, explicitOne bool) string {
	if n == 0 {
		return digitKanji[0]
	}

	var keta [maxKeta]uint8
	cur := n
	for i := 0; i < maxKeta; i++ {
		keta[i] = uint8(cur % 10)
		cur /= 10
	}

	var b strings.Builder
	for i := maxKeta/4 - 1; i >= 0; i-- {
		if keta[i*4] == 0 && keta[i*4+1] == 0 && keta[i*4+2] == 0 && keta[i*4+3] == 0 {
			continue
		}
		writeDigitPlace(&b, keta[i*4+3], "千", explicitOne)
		writeDigitPlace(&b, keta[i*4+2], "百", explicitOne)
		writeDigitPlace(&b, keta[i*4+1], "十", explicitOne)
		if keta[i*4] != 0 {
			b.WriteString(digitKanji[keta[i*4]])
		}
		b.WriteString(kuraiKanji[i])
	}
	return b.String()
}

func writeDigitPlace(b *strings.Builder, digit uint8, place string, explicitOne bool) {
	if digit == 0 {
		return
	}
	if digit != 1 || explicitOne {
		b.WriteString(digitKanji[digit])
	}
	b.WriteString(place)
}
