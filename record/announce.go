package record

import "eser/binser"

type AnnounceKind uint8

const (
	AnnounceKindJoin AnnounceKind = iota + 1
	AnnounceKindLeave
	AnnounceKindUpdate
)

// Announce declares a device joining or leaving a group.
type Announce struct {
	Name [16]byte
	Kind AnnounceKind
	TTL  uint16
}

var _ Record = (*Announce)(nil)

func (a *Announce) Type() RecordType {
	return RecordTypeAnnounce
}

func (a *Announce) Size() int {
	return mustSize(a.Name, a.Kind, a.TTL)
}

func (a *Announce) MarshalTo(buf []byte) (int, error) {
	return binser.Serialize(a.Name, a.Kind, a.TTL).To(buf)
}

func (a *Announce) Unmarshal(data []byte) error {
	d, err := binser.Deserialize(data)
	if err != nil {
		return err
	}
	return d.To(&a.Name, &a.Kind, &a.TTL)
}

func (a *Announce) Equals(other Record) bool {
	cast, ok := other.(*Announce)
	if !ok {
		return false
	}
	return a.Name == cast.Name &&
		a.Kind == cast.Kind &&
		a.TTL == cast.TTL
}

// MarshalWithNote encodes the announce followed by a zero-terminated
// free-text note. The note is an export-only trailer: zero-terminated runs
// cannot be decoded safely from untrusted input, so ReadRecord ignores it.
func (a *Announce) MarshalWithNote(buf []byte, note string) (int, error) {
	return binser.Serialize(a.Name, a.Kind, a.TTL, binser.CString(note)).To(buf)
}
