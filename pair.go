package bpe

// Token identifies a symbol in a token sequence. Ids 0-255 are the raw byte
// values; ids from FirstMerged up are synthesized merge symbols, allocated
// sequentially in the order their pairs were first created.
type Token uint32

const (
	baseAlphabetSize = 256

	// FirstMerged is the lowest id a synthesized symbol can have.
	FirstMerged Token = baseAlphabetSize
)

// IsBase reports whether t denotes a raw byte rather than a merged symbol.
func (t Token) IsBase() bool { return t < FirstMerged }

// Pair is an ordered pair of adjacent tokens, the unit of counting and
// merging. Pairs compare by value and are usable as map keys.
type Pair struct {
	Left, Right Token
}
