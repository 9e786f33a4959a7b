package ir

import "github.com/arloliu/sbe/internal/hash"

// Interner deduplicates repeated token name strings across a decoded IR
// stream: a schema with many fields of the same composite type (e.g. many
// "price" fields of type decimal64) otherwise repeats the same name bytes in
// the Registry once per token.
type Interner struct {
	byID map[uint64]string
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{byID: make(map[uint64]string)}
}

// Intern returns a single shared copy of s, keyed by its xxHash64 digest.
func (in *Interner) Intern(s string) string {
	id := hash.ID(s)
	if existing, ok := in.byID[id]; ok && existing == s {
		return existing
	}
	in.byID[id] = s

	return s
}

// internTokenNames rewrites every name-bearing field of each token in place
// to its interner's canonical copy.
func internTokenNames(in *Interner, tokens []Token) {
	for i := range tokens {
		tokens[i].Name = in.Intern(tokens[i].Name)
		tokens[i].ReferencedName = in.Intern(tokens[i].ReferencedName)
	}
}
