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

import "errors"

// Sentinel errors for every typed failure this package can report. Callers
// can match them with errors.Is; internally we wrap them with
// github.com/pkg/errors to attach call-site context without losing the
// sentinel identity.
var (
	// ErrInvalidKeySize means the supplied key's length disagrees with the
	// declared key size.
	ErrInvalidKeySize = errors.New("cryptocore: invalid key size")

	// ErrInvalidMode means an Engine was constructed with an unrecognized
	// Mode tag.
	ErrInvalidMode = errors.New("cryptocore: invalid mode")

	// ErrInvalidPadding means an Engine was constructed with an
	// unrecognized Padding tag.
	ErrInvalidPadding = errors.New("cryptocore: invalid padding")

	// ErrMissingIV means CBC mode was configured without an IV.
	ErrMissingIV = errors.New("cryptocore: missing IV for CBC mode")

	// ErrKeyNotSet means Encrypt/Decrypt was called before SetKey.
	ErrKeyNotSet = errors.New("cryptocore: key not set")

	// ErrInvalidPaddingData means PKCS5 unpadding found a malformed
	// trailer (last byte 0 or > 16, or a mismatching padding byte).
	ErrInvalidPaddingData = errors.New("cryptocore: invalid padding data")

	// ErrLengthMismatch means NoPadding was used with input whose length
	// isn't a multiple of the block size.
	ErrLengthMismatch = errors.New("cryptocore: input length is not a multiple of the block size")

	// ErrTagMismatch means GCM tag verification failed. No plaintext is
	// ever derived or returned alongside this error.
	ErrTagMismatch = errors.New("cryptocore: GCM authentication tag mismatch")
)
