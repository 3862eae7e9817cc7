package record

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRecordEncoding(t *testing.T, fixtureHex string, input Record, proto Record) {
	fixtureData, err := hex.DecodeString(fixtureHex)
	require.NoError(t, err)

	require.NoError(t, proto.Unmarshal(fixtureData))
	require.True(t, input.Equals(proto))

	require.Equal(t, len(fixtureData), input.Size())
	buf := make([]byte, len(fixtureData))
	n, err := input.MarshalTo(buf)
	require.NoError(t, err)
	require.Equal(t, fixtureData, buf[:n])
}
