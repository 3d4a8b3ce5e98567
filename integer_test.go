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
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntToKeyBytesRejectsNegative(t *testing.T) {
	_, err := IntToKeyBytes(big.NewInt(-1), 16)
	require.Error(t, err)
}

func TestIntToKeyBytesRejectsBadLength(t *testing.T) {
	_, err := IntToKeyBytes(big.NewInt(1), 20)
	require.Error(t, err)
}

func TestIntToKeyBytesRejectsOverflow(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 129) // 2^129, needs 17 bytes
	_, err := IntToKeyBytes(huge, 16)
	require.Error(t, err)
}

func TestIntToKeyBytesPadsLeadingZeros(t *testing.T) {
	out, err := IntToKeyBytes(big.NewInt(1), 16)
	require.NoError(t, err)
	require.Len(t, out, 16)
	require.Equal(t, byte(1), out[15])
	for _, b := range out[:15] {
		require.Zero(t, b)
	}
}

func TestEngineSetKeyIntMatchesSetKey(t *testing.T) {
	keyBytes := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	keyInt := new(big.Int).SetBytes(keyBytes)

	byBytes, err := NewEngine(ECB, NoPadding)
	require.NoError(t, err)
	require.NoError(t, byBytes.SetKey(128, keyBytes, nil))

	byInt, err := NewEngine(ECB, NoPadding)
	require.NoError(t, err)
	require.NoError(t, byInt.SetKeyInt(128, keyInt, nil))

	plaintext := mustHex(t, "00112233445566778899aabbccddeeff")

	want, err := byBytes.Encrypt(plaintext)
	require.NoError(t, err)
	got, err := byInt.Encrypt(plaintext)
	require.NoError(t, err)

	require.Equal(t, want, got)
}

func TestEngineEncryptIntDecryptIntRoundTrip(t *testing.T) {
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i)
	}

	e, err := NewEngine(ECB, NoPadding)
	require.NoError(t, err)
	require.NoError(t, e.SetKey(128, key, nil))

	plaintext := new(big.Int).SetBytes(mustHex(t, "00112233445566778899aabbccddeeff"))

	ciphertext, err := e.EncryptInt(plaintext)
	require.NoError(t, err)

	decrypted, err := e.DecryptInt(ciphertext)
	require.NoError(t, err)
	require.Equal(t, 0, plaintext.Cmp(decrypted))
}

func TestEngineEncryptIntRejectsNegative(t *testing.T) {
	e, err := NewEngine(ECB, NoPadding)
	require.NoError(t, err)
	require.NoError(t, e.SetKey(128, make([]byte, 16), nil))

	_, err = e.EncryptInt(big.NewInt(-5))
	require.Error(t, err)
}
