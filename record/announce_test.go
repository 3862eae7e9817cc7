package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fixedName() [16]byte {
	var name [16]byte
	copy(name[:], "dev-7")
	return name
}

func TestAnnounce_Encoding(t *testing.T) {
	announce := &Announce{
		Name: fixedName(),
		Kind: AnnounceKindJoin,
		TTL:  300,
	}
	testRecordEncoding(
		t,
		"6465762d370000000000000000000000"+
			"01"+
			"2c01",
		announce,
		&Announce{},
	)
}

func TestAnnounce_MarshalWithNote(t *testing.T) {
	announce := &Announce{
		Name: fixedName(),
		Kind: AnnounceKindLeave,
		TTL:  1,
	}
	buf := make([]byte, 64)
	n, err := announce.MarshalWithNote(buf, "bye")
	require.NoError(t, err)
	require.Equal(t, announce.Size()+4, n)
	require.Equal(t, []byte{'b', 'y', 'e', 0}, buf[n-4:n])
}
