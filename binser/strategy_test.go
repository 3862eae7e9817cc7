package binser

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type testLevel uint8

type testMode int16

type testRatio float32

type testPoint struct {
	X int32
	Y int32
}

type testPadded struct {
	ID    uint32
	Ratio float32
	Flag  uint8
}

type testNested struct {
	Point testPoint
	Tags  [2]testLevel
}

type testHasString struct {
	Name string
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		strategy Strategy
	}{
		{"bool", true, StrategyScalar},
		{"int8", int8(-1), StrategyScalar},
		{"uint16", uint16(1), StrategyScalar},
		{"int32", int32(1), StrategyScalar},
		{"uint64", uint64(1), StrategyScalar},
		{"int", int(1), StrategyScalar},
		{"float32", float32(1), StrategyScalar},
		{"float64", float64(1), StrategyScalar},
		{"defined uint8", testLevel(3), StrategyEnum},
		{"defined int16", testMode(-2), StrategyEnum},
		{"defined float32", testRatio(0.5), StrategyScalar},
		{"byte array", [4]byte{}, StrategyFixedArray},
		{"int32 array", [3]int32{}, StrategyFixedArray},
		{"nested array", [2][3]uint16{}, StrategyFixedArray},
		{"struct", testPoint{}, StrategyAggregate},
		{"padded struct", testPadded{}, StrategyAggregate},
		{"nested struct", testNested{}, StrategyAggregate},
		{"struct array", [2]testPoint{}, StrategyFixedArray},
		{"cstring", CString("hi"), StrategyCString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := Classify(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.strategy, strategy)
		})
	}
}

func TestClassify_Unsupported(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"string", "hello"},
		{"byte slice", []byte{1}},
		{"int slice", []int32{1}},
		{"pointer", new(int32)},
		{"map", map[string]int{}},
		{"struct with string", testHasString{}},
		{"array of structs with strings", [2]testHasString{}},
		{"zero-length array", [0]int32{}},
		{"array of empty structs", [2]struct{}{}},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.value)
			require.Error(t, err)
			require.Equal(t, ErrUnsupportedType, errors.Cause(err))
		})
	}
}

func TestClassify_Disjoint(t *testing.T) {
	// Classification is cached per concrete type; repeated calls must
	// resolve to the same strategy.
	for i := 0; i < 3; i++ {
		strategy, err := ClassifyType(reflect.TypeOf(testLevel(0)))
		require.NoError(t, err)
		require.Equal(t, StrategyEnum, strategy)
	}
}

func TestStrategy_String(t *testing.T) {
	require.Equal(t, "Scalar", StrategyScalar.String())
	require.Equal(t, "Enum", StrategyEnum.String())
	require.Equal(t, "FixedArray", StrategyFixedArray.String())
	require.Equal(t, "Aggregate", StrategyAggregate.String())
	require.Equal(t, "CString", StrategyCString.String())
	require.Equal(t, "Invalid", StrategyInvalid.String())
}
