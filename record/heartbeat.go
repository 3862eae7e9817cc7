package record

import "eser/binser"

// Heartbeat reports a device's liveness counters.
type Heartbeat struct {
	Seq      uint64
	UptimeMS uint32
	Load     [4]uint16
}

var _ Record = (*Heartbeat)(nil)

func (h *Heartbeat) Type() RecordType {
	return RecordTypeHeartbeat
}

func (h *Heartbeat) Size() int {
	return mustSize(h.Seq, h.UptimeMS, h.Load)
}

func (h *Heartbeat) MarshalTo(buf []byte) (int, error) {
	return binser.Serialize(h.Seq, h.UptimeMS, h.Load).To(buf)
}

func (h *Heartbeat) Unmarshal(data []byte) error {
	d, err := binser.Deserialize(data)
	if err != nil {
		return err
	}
	return d.To(&h.Seq, &h.UptimeMS, &h.Load)
}

func (h *Heartbeat) Equals(other Record) bool {
	cast, ok := other.(*Heartbeat)
	if !ok {
		return false
	}
	return h.Seq == cast.Seq &&
		h.UptimeMS == cast.UptimeMS &&
		h.Load == cast.Load
}
