package katfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleRSP = `# CAVP-style sample, not an official vector
[ENCRYPT]
COUNT = 0
KEY = 000102030405060708090a0b0c0d0e0f
IV = 101112131415161718191a1b1c1d1e1f
PLAINTEXT = 00112233445566778899aabbccddeeff
CIPHERTEXT = 69c4e0d86a7b0430d8cdb78070b4c55a

[DECRYPT]
COUNT = 0
KEY = 000102030405060708090a0b0c0d0e0f
IV = 101112131415161718191a1b1c1d1e1f
CIPHERTEXT = 69c4e0d86a7b0430d8cdb78070b4c55a
PLAINTEXT = 00112233445566778899aabbccddeeff
`

func TestParseBasic(t *testing.T) {
	cases, err := Parse(strings.NewReader(sampleRSP))
	require.NoError(t, err)
	require.Len(t, cases, 2)

	require.Equal(t, Encrypt, cases[0].Direction)
	require.Equal(t, 0, cases[0].Count)
	require.Len(t, cases[0].Key, 16)
	require.Len(t, cases[0].Plaintext, 16)
	require.Len(t, cases[0].Ciphertext, 16)

	require.Equal(t, Decrypt, cases[1].Direction)
}

func TestParseIgnoresCommentsAndBlankLines(t *testing.T) {
	src := "# comment\n\n[ENCRYPT]\n\nCOUNT = 0\nKEY = 00\nIV = 00\nPLAINTEXT = 00\nCIPHERTEXT = 00\n"
	cases, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cases, 1)
}

func TestParseRejectsFieldBeforeDirection(t *testing.T) {
	_, err := Parse(strings.NewReader("KEY = 00\n"))
	require.Error(t, err)
}

func TestParseRejectsBadHex(t *testing.T) {
	src := "[ENCRYPT]\nKEY = zz\n"
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
}

func TestParseFilename(t *testing.T) {
	info, err := ParseFilename("/vectors/CBCMMT128.rsp")
	require.NoError(t, err)
	require.Equal(t, "CBC", info.Mode)
	require.Equal(t, "MMT", info.Type)
	require.Equal(t, 128, info.KeySize)
}

func TestParseFilenameRejectsBadName(t *testing.T) {
	_, err := ParseFilename("not-a-kat-file.txt")
	require.Error(t, err)
}

func TestFormatMismatch(t *testing.T) {
	c := Case{Direction: Encrypt, Count: 3, Ciphertext: []byte{0xde, 0xad}}
	msg := FormatMismatch(c, []byte{0xbe, 0xef})
	require.Contains(t, msg, "count=3")
	require.Contains(t, msg, "direction=ENCRYPT")
	require.Contains(t, msg, "dead")
	require.Contains(t, msg, "beef")
}
