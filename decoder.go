package huffpack

import (
	"bytes"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// maxPrealloc caps how much output DecodeContainer reserves up front, since
// the length field has not been checked against the code stream yet.
const maxPrealloc = 1 << 20

// Decoder walks a Huffman tree one bit at a time.
type Decoder struct {
	tree *Tree
}

// Init initializes this Decoder with a non-empty tree.
func (d *Decoder) Init(tree *Tree) {
	assert.Assertf(!tree.Empty(), "Decoder.Init called with the empty tree")
	*d = Decoder{tree: tree}
}

// Decode reads bits from br, descending from the root until it reaches a leaf,
// and returns that leaf's symbol.
func (d Decoder) Decode(br *BitReader) (Symbol, error) {
	node := d.tree.root
	for !node.IsLeaf() {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, br.readError(err, TruncatedBitstream, "code stream")
		}
		next := node.Child(bit)
		if next == nil {
			return 0, corruptf(UnreachableSymbol, br.Offset()-1, "no branch for bit %d", boolToBit(bit))
		}
		node = next
	}
	return node.Symbol, nil
}

// DecodeContainer reads a whole container from r and returns the original
// bytes.
func DecodeContainer(r io.Reader) ([]byte, error) {
	br := NewBitReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	prealloc := hdr.Length
	if prealloc > maxPrealloc {
		prealloc = maxPrealloc
	}
	return decodeBody(br, hdr, make([]byte, 0, prealloc))
}

// Decompress returns the original bytes of container.
func Decompress(container []byte) ([]byte, error) {
	br := NewBitReader(bytes.NewReader(container))
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	// Every symbol takes at least one bit.
	remaining := uint64(len(container))*8 - br.Offset()
	if hdr.Length > remaining {
		return nil, corruptf(TruncatedBitstream, br.Offset(), "%d symbols cannot fit in %d bits", hdr.Length, remaining)
	}
	return decodeBody(br, hdr, make([]byte, 0, hdr.Length))
}

func decodeBody(br *BitReader, hdr Header, out []byte) ([]byte, error) {
	if hdr.Length != 0 {
		var d Decoder
		d.Init(hdr.Tree)
		for uint64(len(out)) < hdr.Length {
			symbol, err := d.Decode(br)
			if err != nil {
				return nil, err
			}
			out = append(out, byte(symbol))
		}
	}

	br.Align()
	eof, err := br.AtEOF()
	if err != nil {
		return nil, errors.Wrap(err, "code stream")
	}
	if !eof {
		return nil, corruptf(MalformedContainer, br.Offset(), "trailing data after code stream")
	}
	return out, nil
}

func boolToBit(bit bool) int {
	if bit {
		return 1
	}
	return 0
}
