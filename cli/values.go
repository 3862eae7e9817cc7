package cli

import (
	"reflect"
	"strconv"
	"strings"

	"eser/binser"

	"github.com/pkg/errors"
)

var scalarTypes = map[string]reflect.Type{
	"bool":    reflect.TypeOf(false),
	"int8":    reflect.TypeOf(int8(0)),
	"int16":   reflect.TypeOf(int16(0)),
	"int32":   reflect.TypeOf(int32(0)),
	"int64":   reflect.TypeOf(int64(0)),
	"int":     reflect.TypeOf(int(0)),
	"uint8":   reflect.TypeOf(uint8(0)),
	"byte":    reflect.TypeOf(byte(0)),
	"uint16":  reflect.TypeOf(uint16(0)),
	"uint32":  reflect.TypeOf(uint32(0)),
	"uint64":  reflect.TypeOf(uint64(0)),
	"uint":    reflect.TypeOf(uint(0)),
	"float32": reflect.TypeOf(float32(0)),
	"float64": reflect.TypeOf(float64(0)),
	"cstring": reflect.TypeOf(binser.CString("")),
}

// ParseType parses a type name such as "uint16", "[4]int32" or
// "[2][3]float32".
func ParseType(name string) (reflect.Type, error) {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "[") {
		end := strings.Index(name, "]")
		if end < 0 {
			return nil, errors.Errorf("malformed array type %s", name)
		}
		n, err := strconv.Atoi(name[1:end])
		if err != nil || n <= 0 {
			return nil, errors.Errorf("invalid array length in %s", name)
		}
		elem, err := ParseType(name[end+1:])
		if err != nil {
			return nil, err
		}
		return reflect.ArrayOf(n, elem), nil
	}
	t, ok := scalarTypes[name]
	if !ok {
		return nil, errors.Errorf("unknown type %s", name)
	}
	return t, nil
}

// ParseTypeList parses a comma-separated list of type names.
func ParseTypeList(list string) ([]reflect.Type, error) {
	var types []reflect.Type
	for _, name := range splitTypeList(list) {
		t, err := ParseType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if len(types) == 0 {
		return nil, errors.New("at least one type must be specified")
	}
	return types, nil
}

// splitTypeList splits on commas that are not inside array brackets, so
// nested array types parse without escaping.
func splitTypeList(list string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, c := range list {
		switch c {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, list[start:i])
				start = i + 1
			}
		}
	}
	if start < len(list) {
		parts = append(parts, list[start:])
	}
	return parts
}

// ParseValue parses a "type:value" argument into a codec value, e.g.
// "uint16:1234", "cstring:hello" or "[4]int32:1,2,3,4".
func ParseValue(arg string) (interface{}, error) {
	idx := strings.Index(arg, ":")
	if idx < 0 {
		return nil, errors.Errorf("expected type:value, got %s", arg)
	}
	t, err := ParseType(arg[:idx])
	if err != nil {
		return nil, err
	}
	return parseInto(t, arg[idx+1:])
}

func parseInto(t reflect.Type, raw string) (interface{}, error) {
	switch t.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid bool %s", raw)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 0, t.Bits())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s %s", t, raw)
		}
		v := reflect.New(t).Elem()
		v.SetInt(i)
		return v.Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 0, t.Bits())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s %s", t, raw)
		}
		v := reflect.New(t).Elem()
		v.SetUint(u)
		return v.Interface(), nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s %s", t, raw)
		}
		v := reflect.New(t).Elem()
		v.SetFloat(f)
		return v.Interface(), nil
	case reflect.String:
		return binser.CString(raw), nil
	case reflect.Array:
		parts := strings.Split(raw, ",")
		if len(parts) != t.Len() {
			return nil, errors.Errorf("%s needs %d elements, got %d", t, t.Len(), len(parts))
		}
		arr := reflect.New(t).Elem()
		for i, part := range parts {
			elem, err := parseInto(t.Elem(), strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}
			arr.Index(i).Set(reflect.ValueOf(elem))
		}
		return arr.Interface(), nil
	}
	return nil, errors.Errorf("cannot parse values of type %s", t)
}
