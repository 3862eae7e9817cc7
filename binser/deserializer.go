package binser

import (
	"encoding/binary"
	"math"
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
)

// Deserializer is a single-pass decode cursor over a borrowed input buffer.
// Every read consumes its own byte count; the cursor strictly shrinks and
// never returns to a previous position. Once the input is exhausted the
// cursor remains callable and simply yields zero-valued reads (or
// ErrShortSource in strict mode).
type Deserializer struct {
	data   []byte
	strict bool
}

// Deserialize constructs a decode cursor over data. The buffer is borrowed,
// not owned: the caller must not mutate it while the cursor is in use.
// A nil buffer is a precondition violation and yields ErrInvalidSource;
// an empty non-nil buffer is a valid, already-exhausted cursor.
func Deserialize(data []byte) (*Deserializer, error) {
	if data == nil {
		return nil, ErrInvalidSource
	}
	return &Deserializer{data: data}, nil
}

// DeserializeStrict constructs a cursor whose reads fail with
// ErrShortSource when the remaining input cannot supply a whole value,
// instead of substituting zero values. A failing read consumes nothing.
func DeserializeStrict(data []byte) (*Deserializer, error) {
	d, err := Deserialize(data)
	if err != nil {
		return nil, err
	}
	d.strict = true
	return d, nil
}

// Remaining reports how many bytes the cursor has left to consume.
func (d *Deserializer) Remaining() int {
	return len(d.data)
}

// To decodes one value per target, in argument order. Every target must be
// a non-nil pointer to a supported type. Short input degrades per strategy:
// scalars, enums and aggregates decode whole-or-zero without consuming
// anything, while arrays decode as many whole elements as fit, zero the
// remaining slots, and consume only the bytes of the decoded elements.
func (d *Deserializer) To(targets ...interface{}) error {
	for _, target := range targets {
		if err := d.decode(target); err != nil {
			return err
		}
	}
	return nil
}

func (d *Deserializer) decode(target interface{}) error {
	if target == nil {
		return errors.Wrap(ErrNotPointer, "untyped nil")
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Wrapf(ErrNotPointer, "%T", target)
	}
	elem := rv.Elem()
	info, err := infoFor(elem.Type())
	if err != nil {
		return err
	}
	switch info.strategy {
	case StrategyScalar, StrategyEnum, StrategyAggregate:
		if len(d.data) < info.size {
			if d.strict {
				return errors.Wrapf(ErrShortSource, "need %d bytes for %s, have %d", info.size, elem.Type(), len(d.data))
			}
			elem.Set(reflect.Zero(elem.Type()))
			return nil
		}
		d.readValue(elem, info)
	case StrategyFixedArray:
		return d.decodeArray(elem, info)
	case StrategyCString:
		return errors.Wrap(ErrUnsupportedType, "cstrings are serialize-only")
	}
	return nil
}

// decodeArray applies the partial-recovery policy: whole elements are
// decoded while they fit, the unread tail is zeroed, and only the bytes of
// the decoded elements are consumed.
func (d *Deserializer) decodeArray(arr reflect.Value, info *typeInfo) error {
	if d.strict && len(d.data) < info.size {
		return errors.Wrapf(ErrShortSource, "need %d bytes for %s, have %d", info.size, arr.Type(), len(d.data))
	}
	fit := len(d.data) / info.elem.size
	if fit > info.n {
		fit = info.n
	}
	for i := 0; i < fit; i++ {
		d.readValue(arr.Index(i), info.elem)
	}
	if fit < info.n {
		zero := reflect.Zero(arr.Type().Elem())
		for i := fit; i < info.n; i++ {
			arr.Index(i).Set(zero)
		}
	}
	return nil
}

// readValue decodes one whole value whose bytes are known to be available,
// consuming exactly its encoded size.
func (d *Deserializer) readValue(v reflect.Value, info *typeInfo) {
	switch info.strategy {
	case StrategyScalar, StrategyEnum:
		d.readScalar(v, info.size)
	case StrategyFixedArray:
		for i := 0; i < info.n; i++ {
			d.readValue(v.Index(i), info.elem)
		}
	case StrategyAggregate:
		dst := unsafe.Slice((*byte)(v.Addr().UnsafePointer()), info.size)
		copy(dst, d.data[:info.size])
		d.data = d.data[info.size:]
	}
}

func (d *Deserializer) readScalar(v reflect.Value, size int) {
	b := d.data[:size]
	switch v.Kind() {
	case reflect.Bool:
		v.SetBool(b[0] != 0)
	case reflect.Int8:
		v.SetInt(int64(int8(b[0])))
	case reflect.Int16:
		v.SetInt(int64(int16(binary.LittleEndian.Uint16(b))))
	case reflect.Int32:
		v.SetInt(int64(int32(binary.LittleEndian.Uint32(b))))
	case reflect.Int64, reflect.Int:
		if size == 8 {
			v.SetInt(int64(binary.LittleEndian.Uint64(b)))
		} else {
			v.SetInt(int64(int32(binary.LittleEndian.Uint32(b))))
		}
	case reflect.Uint8:
		v.SetUint(uint64(b[0]))
	case reflect.Uint16:
		v.SetUint(uint64(binary.LittleEndian.Uint16(b)))
	case reflect.Uint32:
		v.SetUint(uint64(binary.LittleEndian.Uint32(b)))
	case reflect.Uint64, reflect.Uint:
		if size == 8 {
			v.SetUint(binary.LittleEndian.Uint64(b))
		} else {
			v.SetUint(uint64(binary.LittleEndian.Uint32(b)))
		}
	case reflect.Float32:
		v.SetFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))))
	case reflect.Float64:
		v.SetFloat(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	}
	d.data = d.data[size:]
}
