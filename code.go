package huffpack

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the longest code a CodeBook can hold.  Exceeding it would
// require an input longer than Fib(66) bytes.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Bit returns the i'th bit of the code, counting from the first.
func (hc Code) Bit(i byte) bool {
	return (hc.Bits>>(hc.Size-1-i))&1 != 0
}

// Append returns the code extended by one bit.
func (hc Code) Append(bit bool) Code {
	out := Code{Size: hc.Size + 1, Bits: hc.Bits << 1}
	if bit {
		out.Bits |= 1
	}
	return out
}

// HasPrefix reports whether prefix is a prefix of hc.  Every code has the
// empty code as a prefix, and every code is a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
