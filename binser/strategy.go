package binser

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// CString is a null-terminated text value. It is the codec's single
// variable-length type and is serialize-only: its encoding is the content
// bytes followed by one zero byte, and decode cursors reject it.
type CString string

// Strategy identifies the encoding strategy a type resolves to. Every
// supported type resolves to exactly one strategy.
type Strategy uint8

const (
	StrategyInvalid Strategy = iota
	StrategyScalar
	StrategyEnum
	StrategyFixedArray
	StrategyAggregate
	StrategyCString
)

func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "Scalar"
	case StrategyEnum:
		return "Enum"
	case StrategyFixedArray:
		return "FixedArray"
	case StrategyAggregate:
		return "Aggregate"
	case StrategyCString:
		return "CString"
	default:
		return "Invalid"
	}
}

// typeInfo is the resolved encoding plan for one concrete type. Plans are
// computed once per type and cached, so dispatch after the first use of a
// type costs a single map load.
type typeInfo struct {
	strategy Strategy
	size     int // encoded bytes; -1 for CString
	elem     *typeInfo
	n        int
}

var (
	cstringType = reflect.TypeOf(CString(""))
	planCache   sync.Map // reflect.Type -> *typeInfo
)

// Classify returns the encoding strategy for v's type.
func Classify(v interface{}) (Strategy, error) {
	if v == nil {
		return StrategyInvalid, errors.Wrap(ErrUnsupportedType, "untyped nil")
	}
	return ClassifyType(reflect.TypeOf(v))
}

// ClassifyType returns the encoding strategy for t. Types outside the
// supported universe yield ErrUnsupportedType.
func ClassifyType(t reflect.Type) (Strategy, error) {
	info, err := infoFor(t)
	if err != nil {
		return StrategyInvalid, err
	}
	return info.strategy, nil
}

func infoFor(t reflect.Type) (*typeInfo, error) {
	if cached, ok := planCache.Load(t); ok {
		return cached.(*typeInfo), nil
	}
	info, err := resolve(t)
	if err != nil {
		return nil, err
	}
	cached, _ := planCache.LoadOrStore(t, info)
	return cached.(*typeInfo), nil
}

func resolve(t reflect.Type) (*typeInfo, error) {
	if t == cstringType {
		return &typeInfo{strategy: StrategyCString, size: -1}, nil
	}
	switch t.Kind() {
	case reflect.Bool, reflect.Float32, reflect.Float64:
		return &typeInfo{strategy: StrategyScalar, size: int(t.Size())}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		strategy := StrategyScalar
		if t.PkgPath() != "" {
			// A defined integer type encodes as its underlying
			// representation; the symbolic value never matters.
			strategy = StrategyEnum
		}
		return &typeInfo{strategy: strategy, size: int(t.Size())}, nil
	case reflect.Array:
		if t.Len() == 0 {
			return nil, errors.Wrapf(ErrUnsupportedType, "%s: arrays must have at least one element", t)
		}
		elem, err := infoFor(t.Elem())
		if err != nil {
			return nil, err
		}
		if elem.strategy == StrategyCString {
			return nil, errors.Wrapf(ErrUnsupportedType, "%s: arrays of cstrings", t)
		}
		if elem.size == 0 {
			return nil, errors.Wrapf(ErrUnsupportedType, "%s: zero-size array elements", t)
		}
		return &typeInfo{
			strategy: StrategyFixedArray,
			size:     t.Len() * elem.size,
			elem:     elem,
			n:        t.Len(),
		}, nil
	case reflect.Struct:
		if err := checkTrivial(t, t); err != nil {
			return nil, err
		}
		return &typeInfo{strategy: StrategyAggregate, size: int(t.Size())}, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedType, "%s", t)
}

// checkTrivial verifies that every field of a struct, recursively, has a
// fixed in-memory representation with no ownership semantics. Only such
// structs may be encoded as raw memory images.
func checkTrivial(root, t reflect.Type) error {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Array:
		return checkTrivial(root, t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if err := checkTrivial(root, t.Field(i).Type); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Wrapf(ErrUnsupportedType, "%s: field type %s is not trivially copyable", root, t)
}
