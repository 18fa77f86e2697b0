// Package skkerr collects the error kinds the core surfaces (spec §7).
// Runtime key processing never returns an error — only construction,
// rule loading, and dictionary load/save do.
package skkerr

import "fmt"

// ParseError signals malformed key-event text or a malformed rule tree.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("skk: parse error on %q: %s", e.Input, e.Reason)
}

// DictionaryLoadError signals a dictionary file that is missing, unreadable,
// or ill-encoded. Constructed from a dictionary constructor; never from
// ProcessKeyEvent.
type DictionaryLoadError struct {
	Path string
	Err  error
}

func (e *DictionaryLoadError) Error() string {
	return fmt.Sprintf("skk: failed to load dictionary %q: %v", e.Path, e.Err)
}

func (e *DictionaryLoadError) Unwrap() error { return e.Err }

// DictionarySaveError signals an I/O or encoding failure during save. The
// caller's dictionary remains dirty; the next save attempt will retry.
type DictionarySaveError struct {
	Path string
	Err  error
}

func (e *DictionarySaveError) Error() string {
	return fmt.Sprintf("skk: failed to save dictionary %q: %v", e.Path, e.Err)
}

func (e *DictionarySaveError) Unwrap() error { return e.Err }

// InvalidInstructionError signals a rule referencing an unknown instruction
// name.
type InvalidInstructionError struct {
	Name string
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("skk: unknown instruction %q", e.Name)
}

// InvariantViolation is the sentinel string every fatal LRU-map desync
// panics with (spec §4.8). It is not an error type: invariant violations
// are not recoverable and the process is expected to abort, so callers
// must not try to catch this as a normal error.
const InvariantViolation = "INVARIANT VIOLATION"
