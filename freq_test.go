package bpe

import "testing"

func TestFreqTableBasic(t *testing.T) {
	f := newFreqTable()
	pair := Pair{'a', 'b'}

	f.inc(pair)
	f.inc(pair)
	if f.count(pair) != 2 {
		t.Fatalf("count=2 got %d", f.count(pair))
	}
	f.dec(pair)
	if f.count(pair) != 1 {
		t.Fatalf("count=1 got %d", f.count(pair))
	}

	// Decrementing an absent pair creates the entry and goes negative.
	other := Pair{'x', 'y'}
	f.dec(other)
	if f.count(other) != -1 {
		t.Fatalf("count=-1 got %d", f.count(other))
	}
}

func TestFreqMostFrequentEmpty(t *testing.T) {
	f := newFreqTable()
	if _, _, ok := f.mostFrequent(); ok {
		t.Fatalf("empty table reported a most frequent pair")
	}
}

func TestFreqMostFrequent(t *testing.T) {
	f := newFreqTable()
	f.inc(Pair{'a', 'b'})
	f.inc(Pair{'b', 'c'})
	f.inc(Pair{'b', 'c'})

	best, count, ok := f.mostFrequent()
	if !ok || best != (Pair{'b', 'c'}) || count != 2 {
		t.Fatalf("mostFrequent=%v/%d/%v", best, count, ok)
	}
}

func TestFreqTieBreakFirstSeen(t *testing.T) {
	f := newFreqTable()
	f.inc(Pair{'a', 'b'})
	f.inc(Pair{'c', 'd'})
	f.inc(Pair{'a', 'b'})
	f.inc(Pair{'c', 'd'})

	best, count, ok := f.mostFrequent()
	if !ok || best != (Pair{'a', 'b'}) || count != 2 {
		t.Fatalf("tie must go to the first-seen pair, got %v/%d/%v", best, count, ok)
	}
}

func TestFreqZeroAndNegativeNeverWin(t *testing.T) {
	f := newFreqTable()
	f.dec(Pair{'a', 'b'})
	f.inc(Pair{'z', 'z'})
	f.dec(Pair{'z', 'z'})
	f.inc(Pair{'c', 'd'})

	best, count, ok := f.mostFrequent()
	if !ok || best != (Pair{'c', 'd'}) || count != 1 {
		t.Fatalf("expected ('c','d')/1, got %v/%d/%v", best, count, ok)
	}
}

func TestFreqCloneIndependent(t *testing.T) {
	f := newFreqTable()
	f.inc(Pair{'a', 'b'})

	clone := f.clone()
	clone.inc(Pair{'a', 'b'})
	clone.inc(Pair{'c', 'd'})

	if f.count(Pair{'a', 'b'}) != 1 {
		t.Fatalf("clone mutated the original counts")
	}
	if len(f.order) != 1 || len(clone.order) != 2 {
		t.Fatalf("clone mutated the original order: %d/%d", len(f.order), len(clone.order))
	}
}
