// Package record defines the fixed-layout record types exchanged by eser
// tooling, encoded with the binser codec. Records are prefixed on the wire
// with their RecordType; the bodies themselves carry no framing.
package record

import (
	"eser/binser"

	"github.com/pkg/errors"
)

// Record is a value with a fixed binary layout.
type Record interface {
	Type() RecordType
	Size() int
	MarshalTo(buf []byte) (int, error)
	Unmarshal(data []byte) error
	Equals(other Record) bool
}

type RecordType uint16

const (
	RecordTypeReserved RecordType = iota
	RecordTypeHeartbeat
	RecordTypeSensorSample
	RecordTypeAnnounce
)

// recordTypeSize is the encoded size of the RecordType prefix.
const recordTypeSize = 2

func (t RecordType) String() string {
	switch t {
	case RecordTypeHeartbeat:
		return "Heartbeat"
	case RecordTypeSensorSample:
		return "SensorSample"
	case RecordTypeAnnounce:
		return "Announce"
	default:
		return "unknown"
	}
}

// PutRecord writes r's type prefix followed by its body into buf and
// returns the total bytes written. Nothing is written if buf cannot hold
// the whole record.
func PutRecord(buf []byte, r Record) (int, error) {
	need := recordTypeSize + r.Size()
	if len(buf) < need {
		return 0, errors.Wrapf(binser.ErrInsufficientCapacity, "record %s needs %d bytes, have %d", r.Type(), need, len(buf))
	}
	n, err := binser.Serialize(r.Type()).To(buf)
	if err != nil {
		return 0, err
	}
	m, err := r.MarshalTo(buf[n:])
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// ReadRecordType reads the type prefix without consuming the body.
func ReadRecordType(data []byte) (RecordType, error) {
	d, err := binser.DeserializeStrict(data)
	if err != nil {
		return RecordTypeReserved, err
	}
	var recordType RecordType
	if err := d.To(&recordType); err != nil {
		return RecordTypeReserved, err
	}
	return recordType, nil
}

// ReadRecord decodes a type-prefixed record from data.
func ReadRecord(data []byte) (Record, error) {
	recordType, err := ReadRecordType(data)
	if err != nil {
		return nil, err
	}
	var r Record
	switch recordType {
	case RecordTypeHeartbeat:
		r = &Heartbeat{}
	case RecordTypeSensorSample:
		r = &SensorSample{}
	case RecordTypeAnnounce:
		r = &Announce{}
	default:
		return nil, errors.Errorf("record: unknown record type %d", recordType)
	}
	if err := r.Unmarshal(data[recordTypeSize:]); err != nil {
		return nil, err
	}
	return r, nil
}

func mustSize(vals ...interface{}) int {
	size, err := binser.SizeOf(vals...)
	if err != nil {
		panic(err)
	}
	return size
}
