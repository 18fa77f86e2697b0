package dictstack

// CompositeKey is the lookup key the state engine builds for a conversion:
// a reading plus the optional okurigana that follows it (spec §3, §4.5).
// Grounded on original_source/src/dictionary/composite_key.rs.
type CompositeKey struct {
	Reading string
	Okuri   string // "" when the conversion has no okurigana
}

func (k CompositeKey) HasOkuri() bool { return k.Okuri != "" }

// DictKey returns the on-disk midashi this key looks up under.
func (k CompositeKey) DictKey() string {
	return DictKey(k.Reading, k.Okuri)
}
