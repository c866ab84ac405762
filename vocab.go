package bpe

import (
	"fmt"
	"maps"
	"slices"
)

// entry is one vocabulary slot: either a leaf carrying a raw byte or the pair
// a synthesized symbol was merged from. A tagged variant keeps "is this a raw
// byte" independent of id magnitude, though merged ids are still always
// allocated above the ids they are built from (that ordering is what makes
// the pair tree acyclic).
type entry struct {
	pair   Pair
	leaf   byte
	merged bool
}

// Vocab is the merge table: it records, for every token id, what the id
// stands for. It doubles as the trained vocabulary once training finishes.
// Ids are never removed or reused; the table only grows.
type Vocab struct {
	entries []entry        // forward index: Token -> entry
	byPair  map[Pair]Token // reverse index: Pair -> Token
}

// NewVocab returns a vocabulary with the 256 byte values pre-registered as
// leaves and no merged symbols.
func NewVocab() *Vocab {
	v := &Vocab{
		entries: make([]entry, baseAlphabetSize),
		byPair:  make(map[Pair]Token),
	}
	for i := 0; i < baseAlphabetSize; i++ {
		v.entries[i] = entry{leaf: byte(i)}
	}
	return v
}

// GetOrCreate returns the id for pair, allocating the next unused id if the
// pair has never been merged before. Reuse keeps the vocabulary injective:
// every occurrence of the same pair merges into the same symbol.
func (v *Vocab) GetOrCreate(pair Pair) Token {
	if tok, ok := v.byPair[pair]; ok {
		return tok
	}
	tok := Token(len(v.entries))
	v.entries = append(v.entries, entry{pair: pair, merged: true})
	v.byPair[pair] = tok
	return tok
}

// PairFor returns the pair tok was merged from; ok is false for base tokens.
func (v *Vocab) PairFor(tok Token) (Pair, bool) {
	e := v.entry(tok)
	return e.pair, e.merged
}

// Len returns the total number of registered symbols, base alphabet included.
func (v *Vocab) Len() int { return len(v.entries) }

// Merged returns the number of synthesized symbols.
func (v *Vocab) Merged() int { return len(v.entries) - baseAlphabetSize }

// Expand unfolds tok into the bytes it stands for, walking the pair tree with
// an explicit stack, left children before right. Termination is structural:
// a merged symbol is only ever built from ids that already exist, so the tree
// cannot contain a cycle.
func (v *Vocab) Expand(tok Token) []byte {
	var out []byte
	stack := []Token{tok}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := v.entry(cur)
		if e.merged {
			stack = append(stack, e.pair.Right, e.pair.Left)
		} else {
			out = append(out, e.leaf)
		}
	}
	return out
}

// Clone returns an independent copy; growing one copy is invisible to the
// other.
func (v *Vocab) Clone() *Vocab {
	return &Vocab{
		entries: slices.Clone(v.entries),
		byPair:  maps.Clone(v.byPair),
	}
}

// Referencing an id the table never allocated is a programming defect, not a
// runtime condition, so it panics rather than returning an error.
func (v *Vocab) entry(tok Token) entry {
	if int(tok) >= len(v.entries) {
		panic(fmt.Sprintf("bpe: token %d outside vocabulary of %d entries", tok, len(v.entries)))
	}
	return v.entries[tok]
}
