package bpe

import (
	lru "github.com/hashicorp/golang-lru"
)

// decoderCacheSize bounds the per-token expansion cache. Vocabularies rarely
// exceed a few thousand symbols, so this effectively caches everything while
// still capping memory on degenerate inputs.
const decoderCacheSize = 8192

// Decoder expands token streams against a trained vocabulary. It keeps an
// LRU cache of per-token expansions so long streams do not re-walk the pair
// tree for every repeated token. State.ToText stays cache-free and serves as
// the correctness reference; Decoder is the throughput path.
type Decoder struct {
	vocab *Vocab
	cache *lru.Cache
}

// NewDecoder returns a Decoder over vocab. The vocabulary is shared, not
// copied, and must not grow while the decoder is in use.
func NewDecoder(vocab *Vocab) *Decoder {
	cache, _ := lru.New(decoderCacheSize) // only fails for size <= 0
	return &Decoder{vocab: vocab, cache: cache}
}

// Decode expands tokens into the text they stand for.
func (d *Decoder) Decode(tokens []Token) string {
	var out []byte
	for _, tok := range tokens {
		out = append(out, d.expand(tok)...)
	}
	return string(out)
}

func (d *Decoder) expand(tok Token) []byte {
	if cached, ok := d.cache.Get(tok); ok {
		return cached.([]byte)
	}
	expansion := d.vocab.Expand(tok)
	d.cache.Add(tok, expansion)
	return expansion
}
