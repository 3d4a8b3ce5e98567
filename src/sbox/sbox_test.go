package sbox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSBoxKnownEntries(t *testing.T) {
	// From the canonical Rijndael S-box table.
	require.Equal(t, byte(0x63), SBox[0x00])
	require.Equal(t, byte(0x7c), SBox[0x01])
	require.Equal(t, byte(0x77), SBox[0x02])
	require.Equal(t, byte(0x16), SBox[0xff])
}

func TestSBoxIsInvolutionWithInverse(t *testing.T) {
	for i := 0; i < 256; i++ {
		require.Equal(t, byte(i), InvSBox[SBox[i]])
	}
}

func TestSBoxIsAPermutation(t *testing.T) {
	var seen [256]bool
	for i := 0; i < 256; i++ {
		v := SBox[i]
		require.False(t, seen[v], "duplicate S-box output %#x", v)
		seen[v] = true
	}
}

func TestRotL8(t *testing.T) {
	require.Equal(t, byte(0b00000011), RotL8(0b10000001, 1))
	require.Equal(t, byte(0b10000001), RotL8(0b10000001, 0))
}
