package binser

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	values := []interface{}{
		true,
		false,
		int8(-128),
		int16(-1234),
		int32(1 << 30),
		int64(-(1 << 40)),
		int(-7),
		uint8(255),
		uint16(65535),
		uint32(1 << 31),
		uint64(1<<63 + 1),
		uint(42),
		float32(3.5),
		float64(-2.25),
		testLevel(9),
		testMode(-5),
		[4]byte{0xDE, 0xAD, 0xBE, 0xEF},
		[3]int32{-1, 0, 1},
		[2][3]uint16{{1, 2, 3}, {4, 5, 6}},
		testPoint{X: -10, Y: 10},
		testPadded{ID: 7, Ratio: 0.5, Flag: 1},
		testNested{Point: testPoint{X: 1, Y: 2}, Tags: [2]testLevel{3, 4}},
		[2]testPoint{{X: 1, Y: 2}, {X: 3, Y: 4}},
	}
	buf := make([]byte, 64)
	for _, value := range values {
		t.Run(reflect.TypeOf(value).String(), func(t *testing.T) {
			n, err := Serialize(value).To(buf)
			require.NoError(t, err)

			size, err := SizeOf(value)
			require.NoError(t, err)
			require.Equal(t, size, n)

			d, err := Deserialize(buf[:n])
			require.NoError(t, err)
			out := reflect.New(reflect.TypeOf(value))
			require.NoError(t, d.To(out.Interface()))
			require.Equal(t, value, out.Elem().Interface())
			require.Equal(t, 0, d.Remaining())
		})
	}
}

func TestRoundTrip_Sequence(t *testing.T) {
	point := testPoint{X: 3, Y: -3}
	arr := [3]uint16{7, 8, 9}
	buf := make([]byte, 64)

	s := Serialize(uint8(1), point, arr, testLevel(2), float64(1.75))
	n, err := s.To(buf)
	require.NoError(t, err)

	size, err := s.Size()
	require.NoError(t, err)
	require.Equal(t, size, n)

	d, err := Deserialize(buf[:n])
	require.NoError(t, err)
	var gotTag uint8
	var gotPoint testPoint
	var gotArr [3]uint16
	var gotLevel testLevel
	var gotRatio float64
	require.NoError(t, d.To(&gotTag, &gotPoint, &gotArr, &gotLevel, &gotRatio))
	require.Equal(t, uint8(1), gotTag)
	require.Equal(t, point, gotPoint)
	require.Equal(t, arr, gotArr)
	require.Equal(t, testLevel(2), gotLevel)
	require.Equal(t, float64(1.75), gotRatio)
	require.Equal(t, 0, d.Remaining())
}

func TestRoundTrip_MismatchedTypesAreWellTyped(t *testing.T) {
	// The wire format carries no type information; decoding with the
	// wrong type sequence silently produces wrong but well-typed values.
	buf := make([]byte, 8)
	n, err := Serialize(uint16(0x0102), uint16(0x0304)).To(buf)
	require.NoError(t, err)

	d, err := Deserialize(buf[:n])
	require.NoError(t, err)
	var v uint32
	require.NoError(t, d.To(&v))
	require.Equal(t, uint32(0x03040102), v)
}
