package bpe

import "slices"

// State is one snapshot of a training run: the token sequence in its current
// compressed form plus the vocabulary and pair frequencies that describe it.
// Step never mutates a State; each step builds an independent successor, so
// earlier snapshots remain valid for inspection.
type State struct {
	tokens []Token
	freqs  *freqTable
	vocab  *Vocab
}

// FromText builds the initial training state: one base token per input byte
// and a frequency entry for every adjacent byte pair. Empty and one-byte
// inputs yield an empty frequency table, which the training loop treats the
// same as "no pair repeats".
func FromText(text string) *State {
	tokens := make([]Token, len(text))
	freqs := newFreqTable()
	for i := 0; i < len(text); i++ {
		tokens[i] = Token(text[i])
		if i+1 < len(text) {
			freqs.inc(Pair{Token(text[i]), Token(text[i+1])})
		}
	}
	return &State{tokens: tokens, freqs: freqs, vocab: NewVocab()}
}

// ToText decodes the state back to the original text. This holds after any
// number of merge steps: merging regroups information, it never loses any.
func (s *State) ToText() string {
	var out []byte
	for _, tok := range s.tokens {
		out = append(out, s.vocab.Expand(tok)...)
	}
	return string(out)
}

// Tokens returns a copy of the current token sequence.
func (s *State) Tokens() []Token { return slices.Clone(s.tokens) }

// Len returns the current token sequence length.
func (s *State) Len() int { return len(s.tokens) }

// Vocab returns the state's merge table. It is shared, not copied; callers
// must treat it as read-only while the state is still being stepped.
func (s *State) Vocab() *Vocab { return s.vocab }
