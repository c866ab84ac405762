package bpe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeMatchesTraining(t *testing.T) {
	// Replaying the learned merges over the training text must land on the
	// exact final training sequence.
	state := Train(foxText)
	require.Equal(t, state.Tokens(), state.Vocab().Encode(foxText))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	vocab := Train(foxText).Vocab()
	dec := NewDecoder(vocab)

	inputs := []string{
		"",
		"the lazy dog",
		"The quick brown fox",
		"completely unrelated input 12345",
		foxText,
	}
	for _, input := range inputs {
		require.Equal(t, input, dec.Decode(vocab.Encode(input)))
	}
}

func TestEncodeUntrainedVocab(t *testing.T) {
	v := NewVocab()
	require.Equal(t, []Token{'a', 'b', 'c'}, v.Encode("abc"))
}

func TestMergeAllNonOverlapping(t *testing.T) {
	tokens := []Token{'a', 'a', 'a'}
	require.Equal(t, []Token{FirstMerged, 'a'}, mergeAll(tokens, Pair{'a', 'a'}, FirstMerged))
}
