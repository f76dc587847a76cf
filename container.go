package huffpack

import (
	"io"
)

// Magic identifies a huffpack container.
const Magic = "HUFP"

// Version is the container format version written by Encoder.
const Version = 1

// Header is everything in a container ahead of the code stream.
type Header struct {
	Tree   *Tree
	Length uint64
}

func writeHeader(bw *BitWriter, tree *Tree, length uint64) error {
	for i := 0; i < len(Magic); i++ {
		if err := bw.WriteSymbol(Symbol(Magic[i])); err != nil {
			return err
		}
	}
	if err := bw.WriteSymbol(Version); err != nil {
		return err
	}
	if err := tree.WriteShape(bw); err != nil {
		return err
	}
	if err := bw.Align(); err != nil {
		return err
	}
	return bw.WriteUint64(length)
}

func readHeader(br *BitReader) (Header, error) {
	for i := 0; i < len(Magic); i++ {
		b, err := br.ReadSymbol()
		if err != nil {
			return Header{}, br.readError(err, MalformedContainer, "magic")
		}
		if byte(b) != Magic[i] {
			return Header{}, corruptf(MalformedContainer, br.Offset()-8, "bad magic")
		}
	}

	version, err := br.ReadSymbol()
	if err != nil {
		return Header{}, br.readError(err, MalformedContainer, "version")
	}
	if version != Version {
		return Header{}, corruptf(MalformedContainer, br.Offset()-8, "unsupported version %d", version)
	}

	tree, err := ReadTree(br)
	if err != nil {
		return Header{}, err
	}
	br.Align()

	length, err := br.ReadUint64()
	if err != nil {
		return Header{}, br.readError(err, MalformedContainer, "length")
	}

	switch {
	case tree.Empty() && length != 0:
		return Header{}, corruptf(MalformedContainer, br.Offset()-64, "empty tree with length %d", length)
	case !tree.Empty() && length == 0:
		return Header{}, corruptf(MalformedContainer, br.Offset()-64, "tree of %d symbols with length 0", tree.Len())
	}

	return Header{Tree: tree, Length: length}, nil
}

// ReadHeader reads the header of the container in r, leaving r positioned
// somewhere in the code stream.
func ReadHeader(r io.Reader) (Header, error) {
	return readHeader(NewBitReader(r))
}
