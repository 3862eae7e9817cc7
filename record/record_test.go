package record

import (
	"testing"

	"eser/binser"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestPutRecord_ReadRecord(t *testing.T) {
	records := []Record{
		&Heartbeat{Seq: 42, UptimeMS: 1000, Load: [4]uint16{9, 8, 7, 6}},
		&SensorSample{DeviceID: 3, Temp: -1.5, Vibration: [3]float32{0.1, 0.2, 0.3}, Flags: 1},
		&Announce{Name: fixedName(), Kind: AnnounceKindUpdate, TTL: 60},
	}
	buf := make([]byte, 128)
	for _, input := range records {
		t.Run(input.Type().String(), func(t *testing.T) {
			n, err := PutRecord(buf, input)
			require.NoError(t, err)
			require.Equal(t, recordTypeSize+input.Size(), n)

			recordType, err := ReadRecordType(buf[:n])
			require.NoError(t, err)
			require.Equal(t, input.Type(), recordType)

			decoded, err := ReadRecord(buf[:n])
			require.NoError(t, err)
			require.True(t, input.Equals(decoded))
		})
	}
}

func TestPutRecord_InsufficientCapacity(t *testing.T) {
	heartbeat := &Heartbeat{Seq: 1}
	short := make([]byte, recordTypeSize+heartbeat.Size()-1)
	n, err := PutRecord(short, heartbeat)
	require.Error(t, err)
	require.Equal(t, binser.ErrInsufficientCapacity, errors.Cause(err))
	require.Equal(t, 0, n)
}

func TestReadRecord_UnknownType(t *testing.T) {
	_, err := ReadRecord([]byte{0xFF, 0xFF})
	require.Error(t, err)
}

func TestReadRecordType_ShortSource(t *testing.T) {
	_, err := ReadRecordType([]byte{0x01})
	require.Error(t, err)
	require.Equal(t, binser.ErrShortSource, errors.Cause(err))
}

func TestRecordType_String(t *testing.T) {
	require.Equal(t, "Heartbeat", RecordTypeHeartbeat.String())
	require.Equal(t, "SensorSample", RecordTypeSensorSample.String())
	require.Equal(t, "Announce", RecordTypeAnnounce.String())
	require.Equal(t, "unknown", RecordType(99).String())
}

func TestRecords_EqualsTypeMismatch(t *testing.T) {
	require.False(t, (&Heartbeat{}).Equals(&Announce{}))
	require.False(t, (&Announce{}).Equals(&SensorSample{}))
	require.False(t, (&SensorSample{}).Equals(&Heartbeat{}))
}
