// Package keyevent parses and normalizes SKK key events (spec §4.1).
//
// A key event is a symbolic key name plus a bitset of modifiers. The host
// may hand the core a raw symbolic form; rule files and tests use the
// textual forms parsed by Parse. We do not depend on an external keysym
// library (that lookup is an external collaborator per spec §1) — KeySym
// here is just the bare key name string ("a", "Return", "space", ...),
// which is exactly what the textual forms already carry and what a host's
// keysym-name layer would hand us after resolving a real keysym.
package keyevent

import (
	"strings"

	"github.com/gskk/skkcore/internal/skkerr"
)

// ModMask is a bitset of modifier flags.
type ModMask uint8

const ModNone ModMask = 0

const (
	ModShift ModMask = 1 << iota
	ModControl
	ModAlt
	ModMeta
	ModMod1
	ModMod5
)

// KeySym is the symbolic key name, e.g. "a", "A", "space", "Return".
type KeySym string

// KeyEvent is a symbolic key plus modifiers.
type KeyEvent struct {
	Sym  KeySym
	Mods ModMask
}

// IsAsciiPrintable reports whether the event's key is a single printable
// ASCII character.
func (k KeyEvent) IsAsciiPrintable() bool {
	if len(k.Sym) != 1 {
		return false
	}
	c := k.Sym[0]
	return c >= 0x20 && c < 0x7f
}

// IsUppercaseAscii reports whether the event's key is an upper-case ASCII
// letter.
func (k KeyEvent) IsUppercaseAscii() bool {
	if len(k.Sym) != 1 {
		return false
	}
	c := k.Sym[0]
	return c >= 'A' && c <= 'Z'
}

// Normalized strips the shift bit from an upper-case ASCII key before
// command-table lookup; the table is keyed on the unshifted form. The Sym
// keeps its case, so a binding on `X` stays distinct from one on `x` and
// the kana layer can still tell `a` from `A`.
func (k KeyEvent) Normalized() KeyEvent {
	if !k.IsUppercaseAscii() {
		return k
	}
	return KeyEvent{Sym: k.Sym, Mods: k.Mods &^ ModShift}
}

var longModifiers = map[string]ModMask{
	"control": ModControl,
	"meta":    ModMeta,
	"alt":     ModAlt,
	"lshift":  ModShift,
	"rshift":  ModShift,
	"shift":   ModShift,
}

var shortPrefixes = map[byte]ModMask{
	'C': ModControl,
	'M': ModMeta,
	'A': ModAlt,
	'G': ModMod1,
}

// Parse parses the textual key-event language (spec §4.1): parenthesised
// form ("(control a)"), short-prefix form ("C-a"), or a bare keysym name
// ("Return", "a", "B").
func Parse(s string) (KeyEvent, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KeyEvent{}, &skkerr.ParseError{Input: s, Reason: "empty key event"}
	}

	if strings.HasPrefix(s, "(") {
		return parseParenthesised(s)
	}

	if len(s) >= 2 && s[1] == '-' {
		if mod, ok := shortPrefixes[s[0]]; ok {
			rest := s[2:]
			if rest == "" {
				return KeyEvent{}, &skkerr.ParseError{Input: s, Reason: "short-prefix form missing key"}
			}
			return KeyEvent{Sym: KeySym(rest), Mods: mod}, nil
		}
	}

	return KeyEvent{Sym: KeySym(s), Mods: ModNone}, nil
}

func parseParenthesised(s string) (KeyEvent, error) {
	if !strings.HasSuffix(s, ")") {
		return KeyEvent{}, &skkerr.ParseError{Input: s, Reason: "unterminated parenthesised key event"}
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	tokens := strings.Fields(inner)
	if len(tokens) == 0 {
		return KeyEvent{}, &skkerr.ParseError{Input: s, Reason: "empty parenthesised key event"}
	}

	var mods ModMask
	for _, tok := range tokens[:len(tokens)-1] {
		mod, ok := longModifiers[strings.ToLower(tok)]
		if !ok {
			return KeyEvent{}, &skkerr.ParseError{Input: s, Reason: "unknown modifier " + tok}
		}
		mods |= mod
	}
	key := tokens[len(tokens)-1]
	return KeyEvent{Sym: KeySym(key), Mods: mods}, nil
}

// ParseSequence parses a space-separated sequence of key events, as used by
// process_key_events_from_string (spec §6) and the scenario tests.
// Multi-character bare tokens (e.g. "space", "Return", "BackSpace", "Tab")
// are kept as one event each; single ASCII characters and "(...)"/"C-x"
// forms are parsed the same way Parse does.
func ParseSequence(s string) ([]KeyEvent, error) {
	var events []KeyEvent
	for len(s) > 0 {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			break
		}
		var token string
		if s[0] == '(' {
			end := strings.Index(s, ")")
			if end < 0 {
				return nil, &skkerr.ParseError{Input: s, Reason: "unterminated parenthesised key event"}
			}
			token = s[:end+1]
			s = s[end+1:]
		} else {
			end := strings.IndexAny(s, " \t")
			if end < 0 {
				token = s
				s = ""
			} else {
				token = s[:end]
				s = s[end:]
			}
		}
		ev, err := Parse(token)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
