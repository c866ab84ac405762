package bpe

import (
	"maps"
	"slices"
)

// freqTable counts how many times each adjacent pair currently occurs in the
// live token sequence. Counts are signed: the incremental accounting in Step
// can drive an entry to zero, or transiently below zero when a pair overlaps
// itself (as in "aaa"). Such entries are not errors; they simply never win
// mostFrequent.
type freqTable struct {
	counts map[Pair]int
	order  []Pair // first-seen order, the mostFrequent tie-break
}

func newFreqTable() *freqTable {
	return &freqTable{counts: make(map[Pair]int)}
}

// touch ensures pair has an entry and a slot in the first-seen order.
func (f *freqTable) touch(pair Pair) {
	if _, ok := f.counts[pair]; !ok {
		f.counts[pair] = 0
		f.order = append(f.order, pair)
	}
}

func (f *freqTable) inc(pair Pair) {
	f.touch(pair)
	f.counts[pair]++
}

func (f *freqTable) dec(pair Pair) {
	f.touch(pair)
	f.counts[pair]--
}

func (f *freqTable) count(pair Pair) int { return f.counts[pair] }

// mostFrequent returns the pair with the strictly maximum count. Ties go to
// the pair seen first, which keeps training deterministic for a given input.
// ok is false when the table has no entries.
func (f *freqTable) mostFrequent() (best Pair, count int, ok bool) {
	for _, pair := range f.order {
		if c := f.counts[pair]; !ok || c > count {
			best, count, ok = pair, c, true
		}
	}
	return
}

func (f *freqTable) clone() *freqTable {
	return &freqTable{
		counts: maps.Clone(f.counts),
		order:  slices.Clone(f.order),
	}
}
