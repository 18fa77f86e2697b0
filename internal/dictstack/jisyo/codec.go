// Package jisyo implements the SKK-jisyo dictionary-line codec (spec
// §4.7): parsing and serializing the traditional `midashi /candidate/.../`
// line format, including the Lisp-style `(concat "...")` escape form and
// the strict-okuri `[kana/.../]/` bracket blocks.
//
// Grounded on original_source/src/dictionary/dictionary_parser.rs and
// dictentry.rs.
package jisyo

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gskk/skkcore/internal/candidate"
	"github.com/gskk/skkcore/internal/skkerr"
)

// Entry is one parsed dictionary line: a midashi plus a mapping from
// strict-okurigana string to its ordered candidate list. The empty string
// key holds the okurigana-unspecified candidates.
type Entry struct {
	Midashi  string
	OkuriAri bool
	Buckets  map[string][]candidate.Candidate
}

// ClassifyOkuriAri implements the legacy-file heuristic (spec §4.7, §8):
// a midashi is okuri-ari when it does not start with an ASCII letter but
// does end with one.
func ClassifyOkuriAri(midashi string) bool {
	if midashi == "" {
		return false
	}
	return !isAsciiLetter(midashi[0]) && isAsciiLetter(midashi[len(midashi)-1])
}

func isAsciiLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Parse parses one non-comment jisyo line into an Entry.
func Parse(line string) (Entry, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return Entry{}, &skkerr.ParseError{Input: line, Reason: "empty line"}
	}
	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		return Entry{}, &skkerr.ParseError{Input: line, Reason: "missing midashi/candidate separator"}
	}
	midashi := line[:sp]
	rest := line[sp+1:]
	if len(rest) == 0 || rest[0] != '/' {
		return Entry{}, &skkerr.ParseError{Input: line, Reason: "candidate list must start with '/'"}
	}

	buckets, pos, err := parseCandList(rest, 1, 0)
	if err != nil {
		return Entry{}, err
	}
	if pos != len(rest) {
		return Entry{}, &skkerr.ParseError{Input: line, Reason: "trailing garbage after candidate list"}
	}

	return Entry{Midashi: midashi, OkuriAri: ClassifyOkuriAri(midashi), Buckets: buckets}, nil
}

// parseCandList parses a sequence of candidates and strict-okuri blocks
// starting at pos, stopping at the first occurrence of stop (']' for a
// nested block, or the sentinel 0 for top-level, meaning "end of string").
func parseCandList(s string, pos int, stop byte) (map[string][]candidate.Candidate, int, error) {
	buckets := make(map[string][]candidate.Candidate)
	for pos < len(s) && s[pos] != stop {
		if s[pos] == '[' {
			okuri, inner, next, err := parseStrictBlock(s, pos)
			if err != nil {
				return nil, 0, err
			}
			buckets[okuri] = append(buckets[okuri], inner...)
			pos = next
			continue
		}
		c, next, err := parseCandidate(s, pos)
		if err != nil {
			return nil, 0, err
		}
		buckets[""] = append(buckets[""], c)
		pos = next
	}
	return buckets, pos, nil
}

// parseStrictBlock parses "[" okuri-kana "/" cand-list "]" "/" starting at
// the '[' character.
func parseStrictBlock(s string, pos int) (okuri string, cands []candidate.Candidate, next int, err error) {
	pos++ // consume '['
	end := pos
	for end < len(s) && s[end] != '/' {
		end++
	}
	if end >= len(s) {
		return "", nil, 0, &skkerr.ParseError{Input: s, Reason: "unterminated strict-okuri block"}
	}
	okuri = s[pos:end]
	pos = end + 1 // consume '/'

	inner, pos, err := parseCandList(s, pos, ']')
	if err != nil {
		return "", nil, 0, err
	}
	if pos >= len(s) || s[pos] != ']' {
		return "", nil, 0, &skkerr.ParseError{Input: s, Reason: "strict-okuri block missing ']'"}
	}
	pos++ // consume ']'
	if pos >= len(s) || s[pos] != '/' {
		return "", nil, 0, &skkerr.ParseError{Input: s, Reason: "strict-okuri block missing trailing '/'"}
	}
	pos++ // consume '/'

	return okuri, inner[""], pos, nil
}

// parseCandidate parses "text [';' annotation] '/'" starting at pos.
func parseCandidate(s string, pos int) (candidate.Candidate, int, error) {
	text, pos, err := parseField(s, pos)
	if err != nil {
		return candidate.Candidate{}, 0, err
	}
	var annotation string
	if pos < len(s) && s[pos] == ';' {
		annotation, pos, err = parseField(s, pos+1)
		if err != nil {
			return candidate.Candidate{}, 0, err
		}
	}
	if pos >= len(s) || s[pos] != '/' {
		return candidate.Candidate{}, 0, &skkerr.ParseError{Input: s, Reason: "candidate missing trailing '/'"}
	}
	pos++ // consume '/'
	return candidate.Candidate{Output: text, Annotation: annotation}, pos, nil
}

const concatPrefix = `(concat "`
const concatSuffix = `")`

// parseField parses one text/annotation field: either a `(concat "...")`
// escaped form, or a plain run of characters up to the next unescaped '/'
// or ';'.
func parseField(s string, pos int) (string, int, error) {
	if strings.HasPrefix(s[pos:], concatPrefix) {
		relEnd := strings.Index(s[pos:], concatSuffix)
		if relEnd < 0 {
			return "", 0, &skkerr.ParseError{Input: s, Reason: "unterminated (concat \"...\") form"}
		}
		raw := s[pos : pos+relEnd+len(concatSuffix)]
		val, err := unescapeConcat(raw)
		if err != nil {
			return "", 0, err
		}
		return val, pos + relEnd + len(concatSuffix), nil
	}
	i := pos
	for i < len(s) && s[i] != '/' && s[i] != ';' {
		i++
	}
	return s[pos:i], i, nil
}

// unescapeConcat decodes a full `(concat "...")` token: \057 -> '/',
// \073 -> ';', \" -> '"'. Any other `\NNN` octal escape decodes to that
// byte verbatim, matching the source's general Lisp string-escape support.
func unescapeConcat(s string) (string, error) {
	if !strings.HasPrefix(s, concatPrefix) || !strings.HasSuffix(s, concatSuffix) {
		return "", &skkerr.ParseError{Input: s, Reason: "malformed (concat \"...\") form"}
	}
	inner := s[len(concatPrefix) : len(s)-len(concatSuffix)]

	var b strings.Builder
	for i := 0; i < len(inner); {
		if inner[i] == '\\' && i+1 < len(inner) && inner[i+1] == '"' {
			b.WriteByte('"')
			i += 2
			continue
		}
		if inner[i] == '\\' && i+3 < len(inner) && isOctal(inner[i+1]) && isOctal(inner[i+2]) && isOctal(inner[i+3]) {
			code, err := strconv.ParseInt(inner[i+1:i+4], 8, 32)
			if err != nil {
				return "", &skkerr.ParseError{Input: s, Reason: "invalid octal escape"}
			}
			b.WriteByte(byte(code))
			i += 4
			continue
		}
		b.WriteByte(inner[i])
		i++
	}
	return b.String(), nil
}

func isOctal(b byte) bool { return b >= '0' && b <= '7' }

// Serialize renders an Entry back to its on-disk line form. Bucket order is
// canonicalized (unspecified bucket first, then strict buckets sorted by
// okurigana) rather than reproducing the original file's segment order,
// which the round-trip property (spec §8) does not require.
func Serialize(e Entry) string {
	var b strings.Builder
	b.WriteString(e.Midashi)
	b.WriteByte(' ')
	b.WriteByte('/')

	for _, c := range e.Buckets[""] {
		writeCandidate(&b, c)
	}

	keys := make([]string, 0, len(e.Buckets))
	for k := range e.Buckets {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte('[')
		b.WriteString(k)
		b.WriteByte('/')
		for _, c := range e.Buckets[k] {
			writeCandidate(&b, c)
		}
		b.WriteString("]/")
	}
	return b.String()
}

func writeCandidate(b *strings.Builder, c candidate.Candidate) {
	b.WriteString(EscapeField(c.Output))
	if c.Annotation != "" {
		b.WriteByte(';')
		b.WriteString(EscapeField(c.Annotation))
	}
	b.WriteByte('/')
}

// EscapeField renders one text/annotation field, wrapping it in the
// `(concat "...")` form with octal escapes when it contains a reserved
// character ('/' , ';' or '"').
func EscapeField(s string) string {
	if !strings.ContainsAny(s, `/;"`) {
		return s
	}
	var b strings.Builder
	b.WriteString(concatPrefix)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '/':
			b.WriteString(`\057`)
		case ';':
			b.WriteString(`\073`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteString(concatSuffix)
	return b.String()
}
