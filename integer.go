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

// The reference this core grew out of accepted either a byte string or a
// Python integer for key/plaintext/ciphertext and returned whatever form
// it was given, dispatching on the argument's runtime type. Go has no such
// reflective dispatch, so per the predecessor's own design notes this file
// exposes a second, integer-typed entry point for each operation instead
// of trying to overload on type.
package cryptocore

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/jhafranco/cryptocore/src/consts"
)

// IntToKeyBytes packs a non-negative integer key into exactly length
// bytes (left zero-padded), where length must be 16, 24 or 32 — the three
// legal AES key sizes. This replaces the predecessor's intToList2
// helper, which had undefined behavior for an empty (zero) integer and
// for lengths over 32 bytes: any length other than 16, 24 or 32 and any
// integer too large for length are explicit errors, and zero packs to an
// all-zero key of the requested length.
func IntToKeyBytes(n *big.Int, length int) ([]byte, error) {
	if n == nil || n.Sign() < 0 {
		return nil, errors.New("cryptocore: key integer must be non-negative")
	}

	if length != 16 && length != 24 && length != 32 {
		return nil, errors.New("cryptocore: key length must be 16, 24 or 32 bytes")
	}

	raw := n.Bytes()
	if len(raw) > length {
		return nil, errors.New("cryptocore: key integer too large for the requested length")
	}

	out := make([]byte, length)
	copy(out[length-len(raw):], raw)
	return out, nil
}

// packBlockAligned big-endian-packs a non-negative integer into the
// smallest multiple of BLOCK_SIZE bytes that can hold it, left
// zero-padded, with a minimum of one full block. Zero packs to one
// all-zero block rather than the empty slice big.Int.Bytes would
// otherwise produce.
func packBlockAligned(n *big.Int) []byte {
	raw := n.Bytes()

	length := consts.BLOCK_SIZE
	for length < len(raw) {
		length += consts.BLOCK_SIZE
	}

	out := make([]byte, length)
	copy(out[length-len(raw):], raw)
	return out
}

// SetKeyInt is the integer-keyed equivalent of SetKey.
func (e *Engine) SetKeyInt(keySizeBits int, key *big.Int, iv []byte) error {
	schedule, ok := consts.ScheduleFor(keySizeBits)
	if !ok {
		return errors.Wrapf(ErrInvalidKeySize, "unsupported key size %d", keySizeBits)
	}

	keyBytes, err := IntToKeyBytes(key, schedule.KeyBytes)
	if err != nil {
		return errors.Wrap(ErrInvalidKeySize, err.Error())
	}

	return e.SetKey(keySizeBits, keyBytes, iv)
}

// EncryptInt is the integer-form equivalent of Encrypt. Note that encoding
// the result back through a big.Int drops any leading zero *blocks*
// exactly as the predecessor's arbitrary-precision integers did; callers
// that need the exact byte length of a result should use Encrypt instead.
func (e *Engine) EncryptInt(plaintext *big.Int) (*big.Int, error) {
	if plaintext == nil || plaintext.Sign() < 0 {
		return nil, errors.New("cryptocore: plaintext integer must be non-negative")
	}

	ciphertext, err := e.Encrypt(packBlockAligned(plaintext))
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetBytes(ciphertext), nil
}

// DecryptInt is the integer-form equivalent of Decrypt.
func (e *Engine) DecryptInt(ciphertext *big.Int) (*big.Int, error) {
	if ciphertext == nil || ciphertext.Sign() < 0 {
		return nil, errors.New("cryptocore: ciphertext integer must be non-negative")
	}

	plaintext, err := e.Decrypt(packBlockAligned(ciphertext))
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetBytes(plaintext), nil
}
