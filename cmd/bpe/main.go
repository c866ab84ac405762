// Command bpe trains a byte-pair-encoding vocabulary on a piece of text and
// prints the final token sequence and merge table.
//
//	bpe [-debug] [text]
//
// With no positional argument a built-in sample text is used. The -debug flag
// dumps the full state after every merge step instead of only the final
// report.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/axiomhq/bpe"
)

const defaultText = `
The quick brown fox jumps over the lazy dog
The quick brown fox jumps over the lazy dog
The quick brown fox jumps over the lazy dog
`

var debug = flag.Bool("debug", false, "dump the full state after every merge step")

func main() {
	flag.Parse()

	text := defaultText
	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		text = args[0]
	default:
		flag.Usage()
		os.Exit(2)
	}

	state := bpe.FromText(text)
	iter := 0
	for {
		next := bpe.Step(state)
		if next == state {
			break
		}
		if *debug {
			fmt.Printf("-- State -- iteration: %d\n", iter+1)
			state.Dump(os.Stdout)
		}
		state = next
		iter++
	}

	fmt.Printf("-- State -- iteration: %d\n", iter+1)
	if *debug {
		state.Dump(os.Stdout)
	} else {
		state.DumpTokens(os.Stdout)
		state.DumpMapping(os.Stdout)
	}
	fmt.Printf("%d tokens, originally %d bytes; %d merge symbols learned\n",
		state.Len(), len(text), state.Vocab().Merged())
}
