package binser

import (
	"reflect"

	"github.com/pkg/errors"
)

// SizeOfType returns the encoded byte length of t without touching any
// value. CString has no static size and is rejected.
func SizeOfType(t reflect.Type) (int, error) {
	info, err := infoFor(t)
	if err != nil {
		return 0, err
	}
	if info.strategy == StrategyCString {
		return 0, errors.Wrap(ErrUnsupportedType, "cstring size depends on content")
	}
	return info.size, nil
}

// SizeOfTypes returns the summed encoded byte length of the given types in
// argument order.
func SizeOfTypes(types ...reflect.Type) (int, error) {
	var total int
	for _, t := range types {
		size, err := SizeOfType(t)
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}

// SizeOf returns the summed encoded byte length of the given values. Unlike
// SizeOfTypes it accepts CString values, whose length is probed from the
// content at call time.
func SizeOf(vals ...interface{}) (int, error) {
	var total int
	for _, val := range vals {
		if val == nil {
			return 0, errors.Wrap(ErrUnsupportedType, "untyped nil")
		}
		rv := reflect.ValueOf(val)
		info, err := infoFor(rv.Type())
		if err != nil {
			return 0, err
		}
		total += valueSize(rv, info)
	}
	return total, nil
}

func valueSize(v reflect.Value, info *typeInfo) int {
	if info.strategy == StrategyCString {
		return v.Len() + 1
	}
	return info.size
}
