// Package bpe trains byte-pair-encoding vocabularies from text.
//
// # Overview
//
// Byte-pair encoding compresses a token sequence by repeatedly finding the
// most frequent adjacent pair of symbols and replacing every occurrence with
// a single synthesized symbol. Each replacement is recorded in a growing
// vocabulary that maps the new symbol back to the pair it stands for, so any
// trained sequence can be expanded losslessly back to the original text.
//
// Training starts from one base token per input byte (ids 0-255) and runs
// merge steps until no adjacent pair occurs more than once. The pair
// frequencies that drive each step are maintained incrementally: a merge
// patches only the counts around each merge point instead of rescanning the
// whole sequence.
//
// # Basic Usage
//
//	state := bpe.Train("the quick brown fox jumps over the lazy dog")
//
//	state.Tokens()        // final compressed token sequence
//	state.ToText()        // reconstructs the input exactly
//	vocab := state.Vocab() // the learned merge table
//
//	// Apply the trained vocabulary to new text.
//	tokens := vocab.Encode("the lazy dog")
//	dec := bpe.NewDecoder(vocab)
//	text := dec.Decode(tokens)
//
// # Stepping Manually
//
// Train is a thin loop over Step. Callers that want to observe intermediate
// states drive it themselves; Step returns its input unchanged once no pair
// repeats:
//
//	state := bpe.FromText(input)
//	for {
//		next := bpe.Step(state)
//		if next == state {
//			break
//		}
//		state = next
//	}
//
// States are immutable snapshots: Step builds an independent successor and
// earlier states stay valid for inspection.
//
// # Limitations
//
// The unit of merging is the raw byte; there is no Unicode normalization or
// rune-aware segmentation. Trained vocabularies live in memory only, with no
// serialization format.
package bpe
