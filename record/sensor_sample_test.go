package record

import "testing"

func TestSensorSample_Encoding(t *testing.T) {
	sample := &SensorSample{
		DeviceID:  1,
		Temp:      0.5,
		Vibration: [3]float32{1, 2, 3},
		Flags:     0x80,
	}
	testRecordEncoding(
		t,
		"010000000000003f0000803f000000400000404080000000",
		sample,
		&SensorSample{},
	)
}

func TestSensorSample_DegradesToDefault(t *testing.T) {
	// A truncated aggregate decodes whole-or-default.
	sample := &SensorSample{DeviceID: 9}
	if err := sample.Unmarshal(make([]byte, 4)); err != nil {
		t.Fatal(err)
	}
	if !sample.Equals(&SensorSample{}) {
		t.Fatalf("expected zero sample, got %+v", sample)
	}
}
