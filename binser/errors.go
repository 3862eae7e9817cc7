package binser

import "github.com/pkg/errors"

var (
	// ErrInvalidSource is returned when a decode cursor is constructed
	// over a nil buffer.
	ErrInvalidSource = errors.New("binser: nil source buffer")

	// ErrInsufficientCapacity is returned by Serializer.To when the
	// destination buffer cannot hold the full sequence. Nothing is
	// written in that case.
	ErrInsufficientCapacity = errors.New("binser: insufficient buffer capacity")

	// ErrShortSource is returned by strict decode cursors when the
	// remaining input cannot supply a whole value. Lenient cursors
	// substitute zero values instead of returning this error.
	ErrShortSource = errors.New("binser: source exhausted")

	// ErrUnsupportedType is returned when a value's type matches no
	// encoding strategy.
	ErrUnsupportedType = errors.New("binser: unsupported type")

	// ErrNotPointer is returned when a decode target is not a non-nil
	// pointer.
	ErrNotPointer = errors.New("binser: decode target must be a non-nil pointer")
)
