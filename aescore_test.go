// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package cryptocore

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// TestEncryptBlockFIPSVector checks the single-block AES-128 encryption
// example vector from FIPS-197 Appendix C.1.
func TestEncryptBlockFIPSVector(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	plaintext := mustHex(t, "00112233445566778899aabbccddeeff")
	want := mustHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a")

	cipher, err := newBlockCipher(key)
	require.NoError(t, err)

	got := cipher.encryptBlock(plaintext)
	require.Equal(t, want, got)
}

func TestEncryptDecryptBlockRoundTrip(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		key := make([]byte, size)
		for i := range key {
			key[i] = byte(i * 7)
		}

		cipher, err := newBlockCipher(key)
		require.NoError(t, err)

		plaintext := make([]byte, 16)
		for i := range plaintext {
			plaintext[i] = byte(i)
		}

		ciphertext := cipher.encryptBlock(plaintext)
		require.Equal(t, plaintext, cipher.decryptBlock(ciphertext))
	}
}

func TestNewBlockCipherRejectsBadKeySize(t *testing.T) {
	_, err := newBlockCipher(make([]byte, 20))
	require.Error(t, err)
}

func TestShiftRowsInverts(t *testing.T) {
	state := make([]byte, 16)
	for i := range state {
		state[i] = byte(i + 1)
	}

	require.Equal(t, state, invShiftRows(shiftRows(state)))
}

func TestMixColumnsInverts(t *testing.T) {
	state := make([]byte, 16)
	for i := range state {
		state[i] = byte(i * 3)
	}

	require.Equal(t, state, invMixColumns(mixColumns(state)))
}

func TestSubBytesInverts(t *testing.T) {
	state := make([]byte, 16)
	for i := range state {
		state[i] = byte(i * 11)
	}

	require.Equal(t, state, invSubBytes(subBytes(state)))
}
