package huffpack

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies a CorruptContainerError.
type ErrorKind uint8

const (
	// MalformedContainer means the header, tree shape or length field is
	// missing, truncated or inconsistent.
	MalformedContainer ErrorKind = iota + 1

	// TruncatedBitstream means the code stream ran out of bits before the
	// stored number of symbols was decoded.
	TruncatedBitstream

	// UnreachableSymbol means a descent reached a branch with no child.
	UnreachableSymbol
)

var kindNames = [...]string{
	MalformedContainer: "malformed container",
	TruncatedBitstream: "truncated bitstream",
	UnreachableSymbol:  "unreachable symbol",
}

// String returns the string representation of this ErrorKind.
func (kind ErrorKind) String() string {
	if int(kind) < len(kindNames) && kindNames[kind] != "" {
		return kindNames[kind]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(kind))
}

// CorruptContainerError is returned when a container cannot be decoded.
type CorruptContainerError struct {
	Kind ErrorKind

	// Offset is the bit offset into the container where the problem was
	// detected.
	Offset uint64

	Msg string
}

// Error fulfills the error interface.
func (err *CorruptContainerError) Error() string {
	if err.Msg == "" {
		return "huffpack: " + err.Kind.String()
	}
	return fmt.Sprintf("huffpack: %s at bit %d: %s", err.Kind, err.Offset, err.Msg)
}

// Is matches ErrCorruptContainer, and any CorruptContainerError of the same
// Kind that carries no message (i.e. the sentinels below).
func (err *CorruptContainerError) Is(target error) bool {
	if target == ErrCorruptContainer {
		return true
	}
	other, ok := target.(*CorruptContainerError)
	return ok && other.Msg == "" && other.Kind == err.Kind
}

var (
	// ErrCorruptContainer matches every CorruptContainerError.
	ErrCorruptContainer = errors.New("huffpack: corrupt container")

	ErrMalformedContainer = &CorruptContainerError{Kind: MalformedContainer}
	ErrTruncatedBitstream = &CorruptContainerError{Kind: TruncatedBitstream}
	ErrUnreachableSymbol  = &CorruptContainerError{Kind: UnreachableSymbol}

	// ErrCodeTooLong is returned by NewCodeBook for trees deeper than
	// MaxCodeSize.  Such trees are still valid for decoding.
	ErrCodeTooLong = errors.New("huffpack: code longer than 64 bits")
)

func corruptf(kind ErrorKind, offset uint64, format string, args ...interface{}) error {
	return errors.WithStack(&CorruptContainerError{
		Kind:   kind,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
	})
}
