package bpe

// Step performs one merge: it finds the most frequent adjacent pair and
// rewrites the token sequence with every non-overlapping occurrence collapsed
// into one symbol, patching pair frequencies incrementally instead of
// rescanning. When no pair occurs more than once (or there are no pairs at
// all) the input state is returned unchanged.
func Step(s *State) *State {
	target, count, ok := s.freqs.mostFrequent()
	if !ok || count <= 1 {
		return s
	}

	tokens := make([]Token, 0, len(s.tokens))
	freqs := s.freqs.clone()
	vocab := s.vocab.Clone()
	merged := vocab.GetOrCreate(target)

	i := 0
	for i < len(s.tokens) {
		if i+1 >= len(s.tokens) {
			// trailing token, no successor to pair with
			tokens = append(tokens, s.tokens[i])
			break
		}
		if (Pair{s.tokens[i], s.tokens[i+1]}) != target {
			tokens = append(tokens, s.tokens[i])
			i++
			continue
		}

		// Each merge touches exactly three positions: the consumed pair, the
		// boundary with the already-emitted left neighbor, and the boundary
		// with the upcoming right neighbor. Applied per occurrence in
		// sequence order so consecutive merges compose.
		freqs.dec(target)
		if n := len(tokens); n > 0 {
			left := tokens[n-1]
			freqs.dec(Pair{left, target.Left})
			freqs.inc(Pair{left, merged})
		}
		if i+2 < len(s.tokens) {
			right := s.tokens[i+2]
			freqs.dec(Pair{target.Right, right})
			freqs.inc(Pair{merged, right})
		}

		tokens = append(tokens, merged)
		i += 2
	}

	return &State{tokens: tokens, freqs: freqs, vocab: vocab}
}

// Train runs merge steps over text until no adjacent pair occurs more than
// once, returning the final state. The sequence strictly shortens on every
// step taken, so the loop is bounded by the initial length.
func Train(text string) *State {
	return TrainN(text, 0)
}

// TrainN is Train with a step cap, for callers that want a fixed vocabulary
// budget or a defensive bound on adversarial input. maxSteps <= 0 means
// unbounded.
func TrainN(text string, maxSteps int) *State {
	state := FromText(text)
	for steps := 0; maxSteps <= 0 || steps < maxSteps; steps++ {
		next := Step(state)
		if next == state {
			break
		}
		state = next
	}
	return state
}
