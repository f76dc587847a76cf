package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// CodeBook maps each Symbol of a Tree to its code.
type CodeBook struct {
	codes    [NumSymbols]Code
	numCodes int
	minSize  byte
	maxSize  byte
}

// NewCodeBook derives the code of every leaf of t from its path.  Codes are
// prefix-free because only leaves receive one.
//
// A tree read from a container may be up to 255 levels deep, but a Code holds
// at most MaxCodeSize bits; such trees yield ErrCodeTooLong.  Trees built by
// BuildTree from in-memory input never do.
func NewCodeBook(t *Tree) (*CodeBook, error) {
	if depth := t.Depth(); depth > MaxCodeSize {
		return nil, errors.Wrapf(ErrCodeTooLong, "tree depth %d", depth)
	}

	cb := new(CodeBook)
	t.Walk(func(leaf *Node, hc Code) {
		assert.Assertf(hc.Size >= 1 && hc.Size <= MaxCodeSize, "code size %d out of range for symbol %d", hc.Size, leaf.Symbol)
		assert.Assertf(cb.codes[leaf.Symbol].Size == 0, "symbol %d has two leaves", leaf.Symbol)

		cb.codes[leaf.Symbol] = hc
		if cb.numCodes == 0 {
			cb.minSize, cb.maxSize = hc.Size, hc.Size
		} else if cb.minSize > hc.Size {
			cb.minSize = hc.Size
		} else if cb.maxSize < hc.Size {
			cb.maxSize = hc.Size
		}
		cb.numCodes++
	})
	return cb, nil
}

// Encode returns the code for symbol.  Symbols absent from the tree have the
// empty code.
func (cb *CodeBook) Encode(symbol Symbol) Code {
	return cb.codes[symbol]
}

// Lookup returns the code for symbol and whether the symbol has one.
func (cb *CodeBook) Lookup(symbol Symbol) (Code, bool) {
	hc := cb.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols with a code.
func (cb *CodeBook) Len() int {
	return cb.numCodes
}

// MinSize is the bit length of the shortest code.
func (cb *CodeBook) MinSize() byte {
	return cb.minSize
}

// MaxSize is the bit length of the longest code.
func (cb *CodeBook) MaxSize() byte {
	return cb.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, 0 for symbols without a code.
func (cb *CodeBook) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol, hc := range cb.codes {
		out[symbol] = hc.Size
	}
	return out
}

// EncodedBits returns the length in bits of the code stream for input with
// the given frequencies.
func (cb *CodeBook) EncodedBits(ft *FrequencyTable) uint64 {
	var sum uint64
	for _, symbol := range ft.Symbols() {
		sum += ft.Count(symbol) * uint64(cb.codes[symbol].Size)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeBook to the
// given writer.
func (cb *CodeBook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeBook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cb.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cb.maxSize)
	for symbol, hc := range cb.codes {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
