package padding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPKCS5PadUnpadRoundTrip(t *testing.T) {
	for n := 0; n < 33; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}

		padded, err := Pad(PKCS5Padding, data)
		require.NoError(t, err)
		require.Zero(t, len(padded)%16)
		require.Greater(t, len(padded), len(data))

		unpadded, err := Unpad(PKCS5Padding, padded)
		require.NoError(t, err)
		require.Equal(t, data, unpadded)
	}
}

func TestPKCS5UnpadRejectsZeroPadByte(t *testing.T) {
	block := make([]byte, 16)
	_, err := Unpad(PKCS5Padding, block)
	require.ErrorIs(t, err, ErrInvalidPaddingData)
}

func TestPKCS5UnpadRejectsOversizePadByte(t *testing.T) {
	block := make([]byte, 16)
	block[15] = 0x20
	_, err := Unpad(PKCS5Padding, block)
	require.ErrorIs(t, err, ErrInvalidPaddingData)
}

func TestPKCS5UnpadRejectsMismatchingTrailer(t *testing.T) {
	block := make([]byte, 16)
	for i := 12; i < 16; i++ {
		block[i] = 4
	}
	block[13] = 0x99
	_, err := Unpad(PKCS5Padding, block)
	require.ErrorIs(t, err, ErrInvalidPaddingData)
}

func TestNoPaddingRequiresBlockAlignment(t *testing.T) {
	_, err := Pad(NoPadding, make([]byte, 17))
	require.ErrorIs(t, err, ErrLengthMismatch)

	out, err := Pad(NoPadding, make([]byte, 32))
	require.NoError(t, err)
	require.Len(t, out, 32)
}
