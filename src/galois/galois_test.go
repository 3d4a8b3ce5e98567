package galois

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGaddIsXor(t *testing.T) {
	require.Equal(t, byte(0x00), Gadd(0x53, 0x53))
	require.Equal(t, byte(0xd3), Gadd(0x53, 0x80))
}

func TestGmulKnownVectors(t *testing.T) {
	// {57} x {83} = {c1} is the textbook worked example from FIPS-197 §4.2.
	require.Equal(t, byte(0xc1), Gmul(0x57, 0x83))
	require.Equal(t, byte(0x00), Gmul(0x00, 0x57))
	require.Equal(t, byte(0x57), Gmul(0x01, 0x57))
}

func TestMulByConstAgreesWithGmul(t *testing.T) {
	for _, c := range mulConstants {
		for b := 0; b < 256; b++ {
			require.Equal(t, Gmul(c, byte(b)), MulByConst(c, byte(b)))
		}
	}
}

func TestMulByConstPanicsOnUnknownConstant(t *testing.T) {
	require.Panics(t, func() { MulByConst(0x04, 0x01) })
}

func TestGxorBlocksRoundTrips(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03, 0x04}
	b := []byte{0xff, 0x00, 0x10, 0x20}

	x := GxorBlocks(a, b)
	require.Equal(t, a, GxorBlocks(x, b))
}
