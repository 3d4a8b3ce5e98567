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

// Package rc4 implements the RC4 stream cipher (KSA + PRGA). It is
// independent of the AES core in the parent package and shares nothing
// with it beyond the module's error-handling conventions.
//
// A Cipher holds its permutation and stream indices as instance fields,
// never as package-level state, so that multiple keys can stream
// concurrently without one trampling another's position.
package rc4

import (
	"fmt"

	"github.com/pkg/errors"
)

const stateSize = 256

// KeySizeError reports a key whose length falls outside RC4's legal range.
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("rc4: invalid key size %d", int(k))
}

// Cipher is a single RC4 stream, keyed at construction and advanced one
// byte at a time as XORKeyStream consumes input. It is not safe for
// concurrent use; distinct Ciphers over the same key are independent
// streams that do not interfere with one another.
type Cipher struct {
	s    [stateSize]byte
	i, j byte
}

// NewCipher runs the key-scheduling algorithm over key and returns a
// ready-to-use stream, positioned at the start of its keystream. RC4 keys
// must be between 1 and 256 bytes.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) < 1 || len(key) > stateSize {
		return nil, errors.Wrap(KeySizeError(len(key)), "rc4: key must be 1-256 bytes")
	}

	c := &Cipher{}
	for i := 0; i < stateSize; i++ {
		c.s[i] = byte(i)
	}

	var j byte
	for i := 0; i < stateSize; i++ {
		j += c.s[i] + key[i%len(key)]
		c.s[i], c.s[j] = c.s[j], c.s[i]
	}

	return c, nil
}

// Reset zeroes the cipher's internal state. It does not make the
// underlying key material, which the caller supplied and owns,
// unreachable.
func (c *Cipher) Reset() {
	for i := range c.s {
		c.s[i] = 0
	}
	c.i, c.j = 0, 0
}

// XORKeyStream sets dst to the result of XORing src with the RC4
// keystream, advancing the cipher's PRGA state by len(src) bytes. dst and
// src may be the same slice but must not otherwise overlap, and dst must
// be at least as long as src.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	for k, b := range src {
		c.i++
		c.j += c.s[c.i]
		c.s[c.i], c.s[c.j] = c.s[c.j], c.s[c.i]
		dst[k] = b ^ c.s[byte(c.s[c.i]+c.s[c.j])]
	}
}

// Encrypt returns the RC4 encryption of plaintext under the cipher's
// current stream position, without mutating plaintext.
func (c *Cipher) Encrypt(plaintext []byte) []byte {
	out := make([]byte, len(plaintext))
	c.XORKeyStream(out, plaintext)
	return out
}

// Decrypt returns the RC4 decryption of ciphertext. RC4 is a symmetric
// XOR stream, so this is identical to Encrypt; it is named separately for
// call-site clarity and symmetry with the AES modes in the parent package.
func (c *Cipher) Decrypt(ciphertext []byte) []byte {
	out := make([]byte, len(ciphertext))
	c.XORKeyStream(out, ciphertext)
	return out
}
