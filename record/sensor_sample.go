package record

import "eser/binser"

// SensorSample is a trivially copyable aggregate encoded as its raw memory
// image. The trailing padding field pins the layout explicitly: without it,
// the compiler's invisible padding after Flags would still travel on the
// wire, and producer and consumer would have to share an ABI. Keep the
// field list 4-byte aligned when extending this struct.
type SensorSample struct {
	DeviceID  uint32
	Temp      float32
	Vibration [3]float32
	Flags     uint8
	_         [3]byte
}

var _ Record = (*SensorSample)(nil)

func (s *SensorSample) Type() RecordType {
	return RecordTypeSensorSample
}

func (s *SensorSample) Size() int {
	return mustSize(*s)
}

func (s *SensorSample) MarshalTo(buf []byte) (int, error) {
	return binser.Serialize(*s).To(buf)
}

func (s *SensorSample) Unmarshal(data []byte) error {
	d, err := binser.Deserialize(data)
	if err != nil {
		return err
	}
	return d.To(s)
}

func (s *SensorSample) Equals(other Record) bool {
	cast, ok := other.(*SensorSample)
	if !ok {
		return false
	}
	return *s == *cast
}
