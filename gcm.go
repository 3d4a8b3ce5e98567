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
	"github.com/pkg/errors"

	"github.com/jhafranco/cryptocore/src/consts"
	"github.com/jhafranco/cryptocore/src/counter"
	"github.com/jhafranco/cryptocore/src/ghash"
)

// computeY0 derives the initial counter block. A 96-bit IV takes the fast
// path (IV || 0x00000001); any other length goes through GHASH(H, ∅, IV).
func computeY0(h [consts.BLOCK_SIZE]byte, iv []byte) []byte {
	if len(iv) == consts.NONCE_SIZE {
		y0 := make([]byte, consts.BLOCK_SIZE)
		copy(y0, iv)
		y0[consts.BLOCK_SIZE-1] = 1
		return y0
	}

	sum := ghash.Sum(h, nil, iv)
	return sum[:]
}

// incr32 increments only the low 32 bits of a 16-byte counter block,
// wrapping to zero at 2^32 - 1. The high 96 bits (the IV-derived prefix)
// are left untouched.
func incr32(y []byte) []byte {
	out := append([]byte(nil), y...)

	c, err := counter.FromBytes(out[consts.BLOCK_SIZE-consts.COUNTER_SIZE:])
	if err != nil {
		panic(err)
	}

	c.Increment()
	copy(out[consts.BLOCK_SIZE-consts.COUNTER_SIZE:], c.Bytes[:])
	return out
}

// gcmKeystreamXOR XORs data against the GCM keystream derived from y0,
// counting blocks from incr32(y0) — the counter block used to encrypt the
// first plaintext/ciphertext block is always Y1, never Y0 itself (Y0 is
// reserved for masking the tag).
func gcmKeystreamXOR(cipher *blockCipher, y0 []byte, data []byte) []byte {
	out := make([]byte, len(data))
	y := y0

	for i := 0; i < len(data); i += consts.BLOCK_SIZE {
		y = incr32(y)

		end := i + consts.BLOCK_SIZE
		if end > len(data) {
			end = len(data)
		}

		stream := cipher.encryptBlock(y)
		for j := i; j < end; j++ {
			out[j] = data[j] ^ stream[j-i]
		}
	}

	return out
}

// constantTimeEqual reports whether a and b are equal, in time independent
// of where they first differ: every byte pair is XORed into a running
// fold and only the final fold is tested against zero.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}

	return diff == 0
}

func gcmSetup(keySizeBits int, key []byte) (*blockCipher, [consts.BLOCK_SIZE]byte, error) {
	schedule, ok := consts.ScheduleFor(keySizeBits)
	if !ok {
		return nil, [consts.BLOCK_SIZE]byte{}, errors.Wrapf(ErrInvalidKeySize, "unsupported key size %d", keySizeBits)
	}

	if len(key) != schedule.KeyBytes {
		return nil, [consts.BLOCK_SIZE]byte{}, errors.Wrapf(ErrInvalidKeySize, "want %d bytes, got %d", schedule.KeyBytes, len(key))
	}

	cipher, err := newBlockCipher(key)
	if err != nil {
		return nil, [consts.BLOCK_SIZE]byte{}, err
	}

	var zero [consts.BLOCK_SIZE]byte
	var h [consts.BLOCK_SIZE]byte
	copy(h[:], cipher.encryptBlock(zero[:]))

	return cipher, h, nil
}

// GCMEncrypt encrypts plaintext under AES-GCM, authenticating aad alongside
// it, and returns the ciphertext and its 16-byte tag.
func GCMEncrypt(keySizeBits int, key, iv, plaintext, aad []byte) ([]byte, []byte, error) {
	if len(iv) == 0 {
		return nil, nil, errors.New("cryptocore: GCM IV must not be empty")
	}

	cipher, h, err := gcmSetup(keySizeBits, key)
	if err != nil {
		return nil, nil, err
	}

	y0 := computeY0(h, iv)
	ciphertext := gcmKeystreamXOR(cipher, y0, plaintext)

	sum := ghash.Sum(h, aad, ciphertext)
	tagMask := cipher.encryptBlock(y0)

	tag := make([]byte, consts.TAG_SIZE)
	for i := range tag {
		tag[i] = sum[i] ^ tagMask[i]
	}

	return ciphertext, tag, nil
}

// GCMDecrypt verifies tag against ciphertext/aad and, only if it matches,
// decrypts and returns the plaintext. On any authentication failure —
// including the ErrTagMismatch case verifyTag reports internally — it
// returns (nil, false) rather than propagating an error, so a caller can
// never be tempted to inspect a partially-trusted plaintext.
func GCMDecrypt(keySizeBits int, key, iv, ciphertext, aad, tag []byte) ([]byte, bool) {
	if len(iv) == 0 || len(tag) != consts.TAG_SIZE {
		return nil, false
	}

	cipher, h, err := gcmSetup(keySizeBits, key)
	if err != nil {
		return nil, false
	}

	y0 := computeY0(h, iv)

	if err := verifyTag(cipher, h, y0, aad, ciphertext, tag); err != nil {
		return nil, false
	}

	return gcmKeystreamXOR(cipher, y0, ciphertext), true
}

// verifyTag recomputes the expected tag and compares it against tag in
// constant time, reporting ErrTagMismatch on any disagreement.
func verifyTag(cipher *blockCipher, h [consts.BLOCK_SIZE]byte, y0 []byte, aad, ciphertext, tag []byte) error {
	sum := ghash.Sum(h, aad, ciphertext)
	tagMask := cipher.encryptBlock(y0)

	expected := make([]byte, consts.TAG_SIZE)
	for i := range expected {
		expected[i] = sum[i] ^ tagMask[i]
	}

	if !constantTimeEqual(expected, tag) {
		return errors.WithStack(ErrTagMismatch)
	}
	return nil
}
