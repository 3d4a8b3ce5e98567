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
	g "github.com/jhafranco/cryptocore/src/galois"
	"github.com/jhafranco/cryptocore/src/padding"
)

// Mode selects the chaining construction an Engine uses.
type Mode int

const (
	// ECB encrypts/decrypts every block independently. No IV.
	ECB Mode = iota

	// CBC chains blocks through XOR with the previous ciphertext block,
	// with independent encrypt/decrypt IV registers (see Engine).
	CBC
)

// Padding is re-exported so callers of this package never need to import
// src/padding directly.
type Padding = padding.Scheme

const (
	NoPadding    = padding.NoPadding
	PKCS5Padding = padding.PKCS5Padding
)

// Engine is a stateful AES block cipher configured with a mode and a
// padding scheme. It is unusable until SetKey is called.
//
// CBC keeps two independent IV registers: ivEnc advances to the last
// ciphertext block Encrypt emitted, ivDec advances to the last ciphertext
// block Decrypt consumed. A caller may alternate directions on one engine
// without the two chains interfering, and successive calls in the same
// direction act as a continuation of one long CBC stream — this statefulness
// is a deliberate contract, not an accident of implementation.
//
// An Engine is not safe for concurrent use; distinct Engines are
// independent.
type Engine struct {
	mode    Mode
	padding Padding
	cipher  *blockCipher
	ivEnc   []byte
	ivDec   []byte
}

// NewEngine constructs an Engine for the given mode and padding scheme. The
// engine must still be configured with SetKey before use.
func NewEngine(mode Mode, pad Padding) (*Engine, error) {
	if mode != ECB && mode != CBC {
		return nil, ErrInvalidMode
	}

	if pad != NoPadding && pad != PKCS5Padding {
		return nil, ErrInvalidPadding
	}

	return &Engine{mode: mode, padding: pad}, nil
}

// SetKey installs the AES key (and, for CBC, the initial IV) on the
// engine. keySizeBits must be 128, 192 or 256 and key must be that many
// bits long. CBC requires a BLOCK_SIZE-byte iv; ECB must be called with a
// nil/empty iv.
func (e *Engine) SetKey(keySizeBits int, key []byte, iv []byte) error {
	schedule, ok := consts.ScheduleFor(keySizeBits)
	if !ok {
		return errors.Wrapf(ErrInvalidKeySize, "unsupported key size %d", keySizeBits)
	}

	if len(key) != schedule.KeyBytes {
		return errors.Wrapf(ErrInvalidKeySize, "want %d bytes, got %d", schedule.KeyBytes, len(key))
	}

	cipher, err := newBlockCipher(key)
	if err != nil {
		return err
	}

	if e.mode == CBC {
		if len(iv) != consts.IV_SIZE {
			return errors.Wrap(ErrMissingIV, "CBC requires a 16-byte IV")
		}

		e.ivEnc = append([]byte(nil), iv...)
		e.ivDec = append([]byte(nil), iv...)
	}

	e.cipher = cipher
	return nil
}

// Encrypt encrypts plaintext under the engine's mode and padding. For CBC
// this advances the engine's encrypt-direction IV register.
func (e *Engine) Encrypt(plaintext []byte) ([]byte, error) {
	if e.cipher == nil {
		return nil, ErrKeyNotSet
	}

	padded, err := padding.Pad(e.padding, plaintext)
	if err != nil {
		return nil, mapPaddingErr(err)
	}

	out := make([]byte, 0, len(padded))

	switch e.mode {
	case ECB:
		for i := 0; i < len(padded); i += consts.BLOCK_SIZE {
			out = append(out, e.cipher.encryptBlock(padded[i:i+consts.BLOCK_SIZE])...)
		}
	case CBC:
		iv := e.ivEnc
		for i := 0; i < len(padded); i += consts.BLOCK_SIZE {
			masked := g.GxorBlocks(padded[i:i+consts.BLOCK_SIZE], iv)
			cBlock := e.cipher.encryptBlock(masked)
			out = append(out, cBlock...)
			iv = cBlock
		}
		e.ivEnc = iv
	default:
		return nil, ErrInvalidMode
	}

	return out, nil
}

// Decrypt decrypts ciphertext under the engine's mode and padding. For CBC
// this advances the engine's decrypt-direction IV register. ciphertext's
// length must be a multiple of the block size regardless of padding
// scheme — padding only governs what Unpad strips from the result.
func (e *Engine) Decrypt(ciphertext []byte) ([]byte, error) {
	if e.cipher == nil {
		return nil, ErrKeyNotSet
	}

	if len(ciphertext)%consts.BLOCK_SIZE != 0 {
		return nil, ErrLengthMismatch
	}

	padded := make([]byte, 0, len(ciphertext))

	switch e.mode {
	case ECB:
		for i := 0; i < len(ciphertext); i += consts.BLOCK_SIZE {
			padded = append(padded, e.cipher.decryptBlock(ciphertext[i:i+consts.BLOCK_SIZE])...)
		}
	case CBC:
		iv := e.ivDec
		for i := 0; i < len(ciphertext); i += consts.BLOCK_SIZE {
			cBlock := ciphertext[i : i+consts.BLOCK_SIZE]
			pBlock := g.GxorBlocks(e.cipher.decryptBlock(cBlock), iv)
			padded = append(padded, pBlock...)
			iv = cBlock
		}
		e.ivDec = iv
	default:
		return nil, ErrInvalidMode
	}

	plaintext, err := padding.Unpad(e.padding, padded)
	if err != nil {
		return nil, mapPaddingErr(err)
	}

	return plaintext, nil
}

func mapPaddingErr(err error) error {
	switch err {
	case padding.ErrInvalidPaddingData:
		return ErrInvalidPaddingData
	case padding.ErrLengthMismatch:
		return ErrLengthMismatch
	default:
		return err
	}
}
