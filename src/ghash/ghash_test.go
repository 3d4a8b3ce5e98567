package ghash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func block(s string) [16]byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	var out [16]byte
	copy(out[:], b)
	return out
}

func TestSumEmptyInputs(t *testing.T) {
	var h [16]byte
	got := Sum(h, nil, nil)
	require.Equal(t, [16]byte{}, got)
}

func TestSumIsSensitiveToAAD(t *testing.T) {
	h := block("66e94bd4ef8a2c3b884cfa59ca342b2e")
	ct := []byte("some ciphertext!")

	a := Sum(h, []byte("aad-one"), ct)
	b := Sum(h, []byte("aad-two"), ct)
	require.NotEqual(t, a, b)
}

func TestSumIsSensitiveToLength(t *testing.T) {
	h := block("66e94bd4ef8a2c3b884cfa59ca342b2e")

	// Differ only in trailing zero padding, which the length trailer must
	// still distinguish.
	a := Sum(h, nil, []byte{0x01, 0x02, 0x03})
	b := Sum(h, nil, []byte{0x01, 0x02, 0x03, 0x00})
	require.NotEqual(t, a, b)
}

func TestMulByZeroIsZero(t *testing.T) {
	h := block("66e94bd4ef8a2c3b884cfa59ca342b2e")
	require.Equal(t, [16]byte{}, mul([16]byte{}, h))
	require.Equal(t, [16]byte{}, mul(h, [16]byte{}))
}

// TestSumKnownVector pins Sum against a single-block GHASH value derived
// from NIST GCM Test Case 2 (all-zero 128-bit key and IV, one all-zero
// plaintext block): H = E(K, 0^128), C = AES-GCM's ciphertext for that
// case, and tag2 XOR tag1 recovers GHASH(H, nil, C), since tag1 (Test
// Case 1, empty plaintext) is E(K, J0) alone and every GCM tag is
// GHASH(...) XOR E(K, J0). This is the one test in the package that
// checks a concrete mul output instead of a relative property, so a
// chaining or bit-reflection mistake in mul can't hide behind a
// self-consistent but wrong result.
func TestSumKnownVector(t *testing.T) {
	h := block("66e94bd4ef8a2c3b884cfa59ca342b2e")
	ciphertext, err := hex.DecodeString("0388dace60b6a392f328c2b971b2fe78")
	require.NoError(t, err)

	want := block("f38cbb1ad69223dcc3457ae5b6b0f885")
	require.Equal(t, want, Sum(h, nil, ciphertext))
}
