package record

import "testing"

func TestHeartbeat_Encoding(t *testing.T) {
	heartbeat := &Heartbeat{
		Seq:      1,
		UptimeMS: 60000,
		Load:     [4]uint16{1, 2, 3, 4},
	}
	testRecordEncoding(
		t,
		"010000000000000060ea00000100020003000400",
		heartbeat,
		&Heartbeat{},
	)
}
