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
)

// newKeyedCipher validates keySizeBits/key/iv and expands the key, shared
// by every standalone (stateless) mode function below.
func newKeyedCipher(keySizeBits int, key, iv []byte) (*blockCipher, error) {
	schedule, ok := consts.ScheduleFor(keySizeBits)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidKeySize, "unsupported key size %d", keySizeBits)
	}

	if len(key) != schedule.KeyBytes {
		return nil, errors.Wrapf(ErrInvalidKeySize, "want %d bytes, got %d", schedule.KeyBytes, len(key))
	}

	if len(iv) != consts.IV_SIZE {
		return nil, errors.New("cryptocore: IV must be 16 bytes")
	}

	return newBlockCipher(key)
}

// EncryptCFB8 encrypts input under AES-CFB with an 8-bit feedback segment.
// The shift register starts at iv; each output byte feeds back into the
// register a byte at a time.
func EncryptCFB8(keySizeBits int, key, iv, input []byte) ([]byte, error) {
	cipher, err := newKeyedCipher(keySizeBits, key, iv)
	if err != nil {
		return nil, err
	}

	reg := append([]byte(nil), iv...)
	out := make([]byte, len(input))

	for i, p := range input {
		s := cipher.encryptBlock(reg)[0]
		c := p ^ s
		out[i] = c
		reg = append(reg[1:], c)
	}

	return out, nil
}

// DecryptCFB8 is the inverse of EncryptCFB8. The register feeds back the
// consumed ciphertext byte — not, as a once-shipped predecessor did, a
// zero-length byte slice converted from it by mistake.
func DecryptCFB8(keySizeBits int, key, iv, input []byte) ([]byte, error) {
	cipher, err := newKeyedCipher(keySizeBits, key, iv)
	if err != nil {
		return nil, err
	}

	reg := append([]byte(nil), iv...)
	out := make([]byte, len(input))

	for i, c := range input {
		s := cipher.encryptBlock(reg)[0]
		out[i] = c ^ s
		reg = append(reg[1:], c)
	}

	return out, nil
}

// EncryptCFB128 encrypts input under AES-CFB with full 16-byte feedback
// segments. A final short segment, if any, is XORed against the leading
// bytes of the last keystream block and does not advance the register.
func EncryptCFB128(keySizeBits int, key, iv, input []byte) ([]byte, error) {
	cipher, err := newKeyedCipher(keySizeBits, key, iv)
	if err != nil {
		return nil, err
	}

	reg := append([]byte(nil), iv...)
	out := make([]byte, len(input))

	for i := 0; i < len(input); i += consts.BLOCK_SIZE {
		end := i + consts.BLOCK_SIZE
		if end > len(input) {
			end = len(input)
		}

		stream := cipher.encryptBlock(reg)
		for j := i; j < end; j++ {
			out[j] = input[j] ^ stream[j-i]
		}

		if end-i == consts.BLOCK_SIZE {
			reg = append([]byte(nil), out[i:end]...)
		}
	}

	return out, nil
}

// DecryptCFB128 is the inverse of EncryptCFB128.
func DecryptCFB128(keySizeBits int, key, iv, input []byte) ([]byte, error) {
	cipher, err := newKeyedCipher(keySizeBits, key, iv)
	if err != nil {
		return nil, err
	}

	reg := append([]byte(nil), iv...)
	out := make([]byte, len(input))

	for i := 0; i < len(input); i += consts.BLOCK_SIZE {
		end := i + consts.BLOCK_SIZE
		if end > len(input) {
			end = len(input)
		}

		stream := cipher.encryptBlock(reg)
		for j := i; j < end; j++ {
			out[j] = input[j] ^ stream[j-i]
		}

		if end-i == consts.BLOCK_SIZE {
			reg = append([]byte(nil), input[i:end]...)
		}
	}

	return out, nil
}

// ofbKeystream implements OFB in both directions — the register is always
// re-keyed from its own previous encryption, so encrypt and decrypt share
// one code path.
func ofbKeystream(cipher *blockCipher, iv, input []byte) []byte {
	reg := append([]byte(nil), iv...)
	out := make([]byte, len(input))

	for i := 0; i < len(input); i += consts.BLOCK_SIZE {
		end := i + consts.BLOCK_SIZE
		if end > len(input) {
			end = len(input)
		}

		reg = cipher.encryptBlock(reg)
		for j := i; j < end; j++ {
			out[j] = input[j] ^ reg[j-i]
		}
	}

	return out
}

// EncryptOFB encrypts input under AES-OFB.
func EncryptOFB(keySizeBits int, key, iv, input []byte) ([]byte, error) {
	cipher, err := newKeyedCipher(keySizeBits, key, iv)
	if err != nil {
		return nil, err
	}
	return ofbKeystream(cipher, iv, input), nil
}

// DecryptOFB decrypts input under AES-OFB.
func DecryptOFB(keySizeBits int, key, iv, input []byte) ([]byte, error) {
	cipher, err := newKeyedCipher(keySizeBits, key, iv)
	if err != nil {
		return nil, err
	}
	return ofbKeystream(cipher, iv, input), nil
}

// ctrKeystream XORs input against the AES-CTR keystream derived from
// nonce, starting the counter at zero and incrementing it by one per
// block. Encrypt and decrypt are the same operation.
func ctrKeystream(cipher *blockCipher, nonce, input []byte) []byte {
	ctr := counter.New(0)
	block := make([]byte, consts.BLOCK_SIZE)
	copy(block, nonce)
	copy(block[consts.NONCE_SIZE:], ctr.Bytes[:])

	out := make([]byte, len(input))

	for i := 0; i < len(input); i += consts.BLOCK_SIZE {
		end := i + consts.BLOCK_SIZE
		if end > len(input) {
			end = len(input)
		}

		stream := cipher.encryptBlock(block)
		for j := i; j < end; j++ {
			out[j] = input[j] ^ stream[j-i]
		}

		ctr.Increment()
		copy(block[consts.NONCE_SIZE:], ctr.Bytes[:])
	}

	return out
}

func newCTRCipher(keySizeBits int, key, nonce []byte) (*blockCipher, error) {
	schedule, ok := consts.ScheduleFor(keySizeBits)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidKeySize, "unsupported key size %d", keySizeBits)
	}

	if len(key) != schedule.KeyBytes {
		return nil, errors.Wrapf(ErrInvalidKeySize, "want %d bytes, got %d", schedule.KeyBytes, len(key))
	}

	if len(nonce) != consts.NONCE_SIZE {
		return nil, errors.New("cryptocore: CTR nonce must be 12 bytes")
	}

	return newBlockCipher(key)
}

// EncryptCTR encrypts input under AES-CTR given a 12-byte nonce.
func EncryptCTR(keySizeBits int, key, nonce, input []byte) ([]byte, error) {
	cipher, err := newCTRCipher(keySizeBits, key, nonce)
	if err != nil {
		return nil, err
	}
	return ctrKeystream(cipher, nonce, input), nil
}

// DecryptCTR decrypts input under AES-CTR given a 12-byte nonce.
func DecryptCTR(keySizeBits int, key, nonce, input []byte) ([]byte, error) {
	cipher, err := newCTRCipher(keySizeBits, key, nonce)
	if err != nil {
		return nil, err
	}
	return ctrKeystream(cipher, nonce, input), nil
}
