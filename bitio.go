package huffpack

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitWriter packs bits into bytes, most significant bit first.  The final
// partial byte is padded with zero bits by Align or Close.
type BitWriter struct {
	w *bitio.Writer
	n uint64
}

// NewBitWriter returns a BitWriter writing to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(w)}
}

// WriteBit writes a single bit.
func (bw *BitWriter) WriteBit(bit bool) error {
	if err := bw.w.WriteBool(bit); err != nil {
		return errors.WithStack(err)
	}
	bw.n++
	return nil
}

// WriteCode writes the bits of hc in order.
func (bw *BitWriter) WriteCode(hc Code) error {
	if hc.Size == 0 {
		return nil
	}
	if err := bw.w.WriteBits(hc.Bits, hc.Size); err != nil {
		return errors.WithStack(err)
	}
	bw.n += uint64(hc.Size)
	return nil
}

// WriteSymbol writes the 8 bits of symbol.
func (bw *BitWriter) WriteSymbol(symbol Symbol) error {
	return bw.WriteCode(MakeCode(8, uint64(symbol)))
}

// WriteUint64 writes v as 64 bits, i.e. big-endian when byte aligned.
func (bw *BitWriter) WriteUint64(v uint64) error {
	return bw.WriteCode(MakeCode(64, v))
}

// Align pads the current byte with zero bits.
func (bw *BitWriter) Align() error {
	skipped, err := bw.w.Align()
	if err != nil {
		return errors.WithStack(err)
	}
	bw.n += uint64(skipped)
	return nil
}

// Close flushes the final partial byte, if any.  It does not close the
// underlying writer.
func (bw *BitWriter) Close() error {
	if err := bw.Align(); err != nil {
		return err
	}
	return errors.WithStack(bw.w.Close())
}

// BitsWritten returns the number of bits written so far, including padding.
func (bw *BitWriter) BitsWritten() uint64 {
	return bw.n
}

// BitReader yields bits in the order BitWriter wrote them.
type BitReader struct {
	r *bitio.Reader
	n uint64
}

// NewBitReader returns a BitReader reading from r.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: bitio.NewReader(r)}
}

// ReadBit reads a single bit.
func (br *BitReader) ReadBit() (bool, error) {
	bit, err := br.r.ReadBool()
	if err != nil {
		return false, err
	}
	br.n++
	return bit, nil
}

// ReadSymbol reads 8 bits as a Symbol.
func (br *BitReader) ReadSymbol() (Symbol, error) {
	v, err := br.r.ReadBits(8)
	if err != nil {
		return 0, err
	}
	br.n += 8
	return Symbol(v), nil
}

// ReadUint64 reads 64 bits.
func (br *BitReader) ReadUint64() (uint64, error) {
	v, err := br.r.ReadBits(64)
	if err != nil {
		return 0, err
	}
	br.n += 64
	return v, nil
}

// Align discards the unread bits of the current byte.
func (br *BitReader) Align() {
	br.n += uint64(br.r.Align())
}

// AtEOF reports whether the underlying reader is exhausted.  It must only be
// called when byte aligned; a byte read while probing is lost.
func (br *BitReader) AtEOF() (bool, error) {
	_, err := br.r.ReadByte()
	switch {
	case err == io.EOF:
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}

// Offset returns the number of bits consumed so far.
func (br *BitReader) Offset() uint64 {
	return br.n
}

// readError converts a short read into a CorruptContainerError of the given
// kind and passes other I/O errors through.
func (br *BitReader) readError(err error, kind ErrorKind, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return corruptf(kind, br.n, "%s: unexpected end of data", what)
	}
	return errors.Wrap(err, what)
}
