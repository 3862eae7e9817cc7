package binser

import (
	"encoding/binary"
	"math"
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
)

// Serializer binds a fixed sequence of values for encoding. Values are
// written in the order they were passed to Serialize.
type Serializer struct {
	vals  []reflect.Value
	infos []*typeInfo
	err   error
}

// Serialize binds the given values into an encode sequence. Unsupported
// types are rejected here, before any buffer is touched; the error is
// surfaced by Size and To.
func Serialize(vals ...interface{}) *Serializer {
	s := &Serializer{
		vals:  make([]reflect.Value, 0, len(vals)),
		infos: make([]*typeInfo, 0, len(vals)),
	}
	if len(vals) == 0 {
		s.err = errors.New("binser: at least one value must be provided")
		return s
	}
	for _, val := range vals {
		if val == nil {
			s.err = errors.Wrap(ErrUnsupportedType, "untyped nil")
			return s
		}
		rv := reflect.ValueOf(val)
		info, err := infoFor(rv.Type())
		if err != nil {
			s.err = err
			return s
		}
		s.vals = append(s.vals, rv)
		s.infos = append(s.infos, info)
	}
	return s
}

// Size returns the exact number of bytes To will write.
func (s *Serializer) Size() (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	var total int
	for i, info := range s.infos {
		total += valueSize(s.vals[i], info)
	}
	return total, nil
}

// To encodes the bound sequence into buf and returns the number of bytes
// written. If buf cannot hold the full sequence, To writes nothing and
// returns (0, ErrInsufficientCapacity). Bytes of buf beyond the written
// region are left untouched.
func (s *Serializer) To(buf []byte) (int, error) {
	needed, err := s.Size()
	if err != nil {
		return 0, err
	}
	if needed > len(buf) {
		return 0, errors.Wrapf(ErrInsufficientCapacity, "need %d bytes, have %d", needed, len(buf))
	}
	cur := encodeCursor{buf: buf}
	for i, info := range s.infos {
		cur.writeValue(s.vals[i], info)
	}
	return cur.off, nil
}

// encodeCursor is a non-owning view over the caller's output buffer. It
// advances as values are written; capacity is validated before the first
// write, so writes past it never occur.
type encodeCursor struct {
	buf []byte
	off int
}

func (c *encodeCursor) writeValue(v reflect.Value, info *typeInfo) {
	switch info.strategy {
	case StrategyScalar, StrategyEnum:
		c.writeScalar(v, info.size)
	case StrategyFixedArray:
		for i := 0; i < info.n; i++ {
			c.writeValue(v.Index(i), info.elem)
		}
	case StrategyAggregate:
		c.off += copy(c.buf[c.off:], rawBytes(v, info.size))
	case StrategyCString:
		c.off += copy(c.buf[c.off:], v.String())
		c.buf[c.off] = 0
		c.off++
	}
}

func (c *encodeCursor) writeScalar(v reflect.Value, size int) {
	var scratch [8]byte
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			scratch[0] = 1
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		binary.LittleEndian.PutUint64(scratch[:], uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		binary.LittleEndian.PutUint64(scratch[:], v.Uint())
	case reflect.Float32:
		binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(float32(v.Float())))
	case reflect.Float64:
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v.Float()))
	}
	// The first size bytes of the 8-byte little-endian image are exactly
	// the value's little-endian encoding.
	c.off += copy(c.buf[c.off:], scratch[:size])
}

// rawBytes returns the in-memory image of a trivially copyable value,
// padding included. Unaddressable values are copied to a fresh location
// first; the copy is bit-identical for this type universe.
func rawBytes(v reflect.Value, size int) []byte {
	if !v.CanAddr() {
		tmp := reflect.New(v.Type()).Elem()
		tmp.Set(v)
		v = tmp
	}
	return unsafe.Slice((*byte)(v.Addr().UnsafePointer()), size)
}
