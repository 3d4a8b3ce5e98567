package key

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhafranco/cryptocore/src/consts"
)

func TestRcon(t *testing.T) {
	want := []byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}
	for i, w := range want {
		require.Equal(t, w, Rcon(byte(i)))
	}
}

func TestRotWord(t *testing.T) {
	in := [consts.WORD_SIZE]byte{0x01, 0x02, 0x03, 0x04}
	require.Equal(t, [consts.WORD_SIZE]byte{0x02, 0x03, 0x04, 0x01}, RotWord(in))
}

func TestExpandKeyRejectsBadLengths(t *testing.T) {
	_, err := ExpandKey(make([]byte, 20))
	require.Error(t, err)
}

func TestExpandKeySizePerKeySize(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		schedule, ok := consts.ScheduleFor(size * 8)
		require.True(t, ok)

		xKey, err := ExpandKey(make([]byte, size))
		require.NoError(t, err)
		require.Len(t, xKey, schedule.ExpKeySize())
	}
}

// TestExpandKeyFIPSVector checks the first two round keys AES-128 derives
// from the FIPS-197 Appendix C.1 example key.
func TestExpandKeyFIPSVector(t *testing.T) {
	k, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	xKey, err := ExpandKey(k)
	require.NoError(t, err)

	require.Equal(t, k, []byte(xKey[:16]))

	wantRound1, err := hex.DecodeString("d6aa74fdd2af72fadaa678f1d6ab76fe")
	require.NoError(t, err)
	require.Equal(t, wantRound1, []byte(xKey[16:32]))
}
