package bpe

// Encode tokenizes text against an already-trained vocabulary by replaying
// the learned merges in creation order: earlier merges were more frequent in
// the training corpus and must apply before later merges that build on their
// results. Encoding the training text itself reproduces the final training
// sequence exactly.
func (v *Vocab) Encode(text string) []Token {
	tokens := make([]Token, len(text))
	for i := 0; i < len(text); i++ {
		tokens[i] = Token(text[i])
	}
	for tok := FirstMerged; int(tok) < len(v.entries); tok++ {
		tokens = mergeAll(tokens, v.entries[tok].pair, tok)
	}
	return tokens
}

// mergeAll rewrites tokens in place with every non-overlapping occurrence of
// pair replaced by merged, using the same left-to-right cursor discipline as
// Step. The write index never passes the read index, so compacting into the
// same backing array is safe.
func mergeAll(tokens []Token, pair Pair, merged Token) []Token {
	out := tokens[:0]
	i := 0
	for i < len(tokens) {
		if i+1 < len(tokens) && tokens[i] == pair.Left && tokens[i+1] == pair.Right {
			out = append(out, merged)
			i += 2
		} else {
			out = append(out, tokens[i])
			i++
		}
	}
	return out
}
