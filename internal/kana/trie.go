// Package kana implements the romaji→kana assembly trie (spec §4.2).
//
// A Trie is built once from a rule table and shared by reference across
// contexts (spec §5: rule tables are immutable after load). Per-composition
// assembly state lives in Assembler, which holds only the carry-over
// characters typed so far.
package kana

// Rule is one entry of the rule table: an ASCII input sequence maps to a
// kana output plus a carry-over remainder (e.g. "tt" -> ("っ", "t")).
type Rule struct {
	Input string
	Kana  string
	Carry string
}

type node struct {
	children map[byte]*node
	terminal bool
	kana     string
	carry    string
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie is an immutable prefix trie from ASCII sequences to kana output.
type Trie struct {
	root *node
}

// Build constructs a Trie from a rule table. Later rules with a duplicate
// Input overwrite earlier ones.
func Build(rules []Rule) *Trie {
	root := newNode()
	for _, r := range rules {
		cur := root
		for i := 0; i < len(r.Input); i++ {
			c := r.Input[i]
			child, ok := cur.children[c]
			if !ok {
				child = newNode()
				cur.children[c] = child
			}
			cur = child
		}
		cur.terminal = true
		cur.kana = r.Kana
		cur.carry = r.Carry
	}
	return &Trie{root: root}
}

func (t *Trie) walkNode(seq []byte) (*node, bool) {
	cur := t.root
	for _, c := range seq {
		child, ok := cur.children[c]
		if !ok {
			return nil, false
		}
		cur = child
	}
	return cur, true
}

// Assembler holds the carry-over state of one in-progress kana assembly.
// Its zero value is ready to use.
type Assembler struct {
	carry []byte
}

// CarryOver returns the characters accumulated so far but not yet emitted
// as kana (spec §4.10: rendered verbatim in Direct mode's pre-edit).
func (a *Assembler) CarryOver() string {
	return string(a.carry)
}

// Reset clears the carry-over.
func (a *Assembler) Reset() {
	a.carry = nil
}

// FeedResult is the outcome of feeding one character to the trie.
type FeedResult struct {
	// Emitted is the kana produced, if any. It is usually set only when
	// Accumulating is false; a lone pending "n" finalized by the new
	// character sets Emitted to ん while Accumulating can also be true.
	Emitted string
	// Accumulating is true when the extended sequence is an internal trie
	// node: more characters are needed before anything can be emitted.
	Accumulating bool
}

// Feed appends c to a's carry-over and walks t.
//
// If the extended sequence reaches a terminal node, its kana is emitted and
// the carry-over becomes that node's own carry remainder (e.g. feeding the
// second 't' of "tt" emits "っ" and leaves "t" as carry-over for a following
// vowel). If the extended sequence is only an internal node, nothing is
// emitted yet (Accumulating is true).
//
// If no edge matches the extended sequence at all, the policy is
// drop-not-flush (spec §4.2, §9 Open Question: the source is inconsistent
// here, pick one and document it): the existing carry-over is discarded and
// replaced by a fresh attempt starting at c alone, rather than flushing the
// stale carry-over as kana. A keyboard stutter like "kkya" after a bad key
// is recovered from without emitting garbage kana for the abandoned prefix.
//
// A lone pending "n" is the one exception, handled by feedAfterLoneN: since
// "n" followed by any consonant other than a fresh "n"/"'" is ordinary
// Japanese (tanjou, kanji, senpai, ...), dropping it instead of flushing ん
// would make those words untypeable.
func Feed(t *Trie, a *Assembler, c byte) FeedResult {
	extended := append(append([]byte{}, a.carry...), c)
	if n, ok := t.walkNode(extended); ok {
		return apply(a, n, extended)
	}
	if string(a.carry) == "n" {
		return feedAfterLoneN(t, a, c)
	}
	if n, ok := t.walkNode([]byte{c}); ok {
		return apply(a, n, []byte{c})
	}
	a.carry = nil
	return FeedResult{}
}

func feedAfterLoneN(t *Trie, a *Assembler, c byte) FeedResult {
	a.carry = nil
	if n, ok := t.walkNode([]byte{c}); ok {
		fresh := apply(a, n, []byte{c})
		fresh.Emitted = "ん" + fresh.Emitted
		return fresh
	}
	return FeedResult{Emitted: "ん"}
}

func apply(a *Assembler, n *node, seq []byte) FeedResult {
	if n.terminal {
		a.carry = []byte(n.carry)
		return FeedResult{Emitted: n.kana}
	}
	a.carry = seq
	return FeedResult{Accumulating: true}
}

// FlushN finalizes an unterminated trailing "n" carry-over to "ん" (spec
// §4.2). Returns the kana to emit (possibly empty) and whether anything was
// flushed.
func FlushN(a *Assembler) (string, bool) {
	if string(a.carry) == "n" {
		a.carry = nil
		return "ん", true
	}
	return "", false
}

// ConvertPeriod maps '.' and ',' to Japanese or ASCII punctuation per the
// configured style. ok is false for any other character.
func ConvertPeriod(c byte, japanesePeriod, japaneseComma bool) (string, bool) {
	switch c {
	case '.':
		if japanesePeriod {
			return "。", true
		}
		return ".", true
	case ',':
		if japaneseComma {
			return "、", true
		}
		return ",", true
	}
	return "", false
}
