package bpe

import (
	"fmt"
	"io"
)

// Dump writes a full human-readable snapshot of the state: the token
// sequence, the merge mapping, and the pair frequencies.
func (s *State) Dump(w io.Writer) {
	s.DumpTokens(w)
	s.DumpMapping(w)
	s.DumpFrequencies(w)
}

// DumpTokens writes the token sequence with base tokens rendered as their raw
// characters and merged tokens as parenthesized ids.
func (s *State) DumpTokens(w io.Writer) {
	fmt.Fprintf(w, "Tokens:\n\"\"\"\n")
	for _, tok := range s.tokens {
		if tok.IsBase() {
			fmt.Fprintf(w, "%c", byte(tok))
		} else {
			fmt.Fprintf(w, "(%d)", tok)
		}
	}
	fmt.Fprintf(w, "\n\"\"\"\n")
}

// DumpMapping writes every merged vocabulary entry as
// "(id) -> (left, right) aka [decoded]".
func (s *State) DumpMapping(w io.Writer) {
	fmt.Fprintf(w, "Mapping:\n")
	for tok := FirstMerged; int(tok) < s.vocab.Len(); tok++ {
		pair, _ := s.vocab.PairFor(tok)
		fmt.Fprintf(w, "\t(%03d) -> (%03d, %03d) aka [%q]\n",
			tok, pair.Left, pair.Right, s.vocab.Expand(tok))
	}
}

// DumpFrequencies writes every frequency entry, including the zero and
// negative ones the incremental accounting leaves behind.
func (s *State) DumpFrequencies(w io.Writer) {
	fmt.Fprintf(w, "Frequencies:\n")
	for _, pair := range s.freqs.order {
		fmt.Fprintf(w, "\t%s,%s -> %d\n",
			renderSymbol(pair.Left), renderSymbol(pair.Right), s.freqs.count(pair))
	}
}

func renderSymbol(tok Token) string {
	if tok.IsBase() {
		return fmt.Sprintf("%5q", rune(tok))
	}
	return fmt.Sprintf("(%3d)", tok)
}
