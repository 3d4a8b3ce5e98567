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

// Big portion of this package has been heavily inspired by CrackedPoly's
// implementation.
//
// Copyright (c) 2021 CrackedPoly
// https://github.com/CrackedPoly/AES-go

// Package padding implements the two block-padding schemes the ECB/CBC
// engine supports.
package padding

import (
	"errors"

	"github.com/jhafranco/cryptocore/src/consts"
)

// Scheme is the padding tag an Engine is configured with.
type Scheme int

const (
	// NoPadding requires the input to already be block-aligned.
	NoPadding Scheme = iota

	// PKCS5Padding appends N bytes of value N, where
	// N = 16 - (len(data) mod 16), N in [1,16].
	PKCS5Padding
)

// ErrInvalidPaddingData is returned by Unpad when the trailing padding
// bytes don't form a well-formed PKCS5 block (spec InvalidPaddingData).
var ErrInvalidPaddingData = errors.New("padding: invalid PKCS5 padding data")

// ErrLengthMismatch is returned by Pad/Unpad under NoPadding when the data
// isn't already a multiple of the block size (spec LengthMismatch).
var ErrLengthMismatch = errors.New("padding: input length is not a multiple of the block size")

// Pad applies scheme to data, returning a new block-aligned slice.
func Pad(scheme Scheme, data []byte) ([]byte, error) {
	switch scheme {
	case NoPadding:
		if len(data)%consts.BLOCK_SIZE != 0 {
			return nil, ErrLengthMismatch
		}
		return data, nil
	case PKCS5Padding:
		return pkcs5Pad(data), nil
	default:
		return nil, errors.New("padding: unknown padding scheme")
	}
}

// Unpad removes scheme's padding from data, returning the original input.
func Unpad(scheme Scheme, data []byte) ([]byte, error) {
	switch scheme {
	case NoPadding:
		if len(data)%consts.BLOCK_SIZE != 0 {
			return nil, ErrLengthMismatch
		}
		return data, nil
	case PKCS5Padding:
		return pkcs5Unpad(data)
	default:
		return nil, errors.New("padding: unknown padding scheme")
	}
}

func pkcs5Pad(data []byte) []byte {
	padded := make([]byte, len(data))
	copy(padded, data)

	remainder := len(padded) % consts.BLOCK_SIZE
	padLength := consts.BLOCK_SIZE - remainder

	for i := 0; i < padLength; i++ {
		padded = append(padded, byte(padLength))
	}

	return padded
}

func pkcs5Unpad(padded []byte) ([]byte, error) {
	if len(padded) == 0 || len(padded)%consts.BLOCK_SIZE != 0 {
		return nil, ErrInvalidPaddingData
	}

	padLength := int(padded[len(padded)-1])
	if padLength == 0 || padLength > consts.BLOCK_SIZE || padLength > len(padded) {
		return nil, ErrInvalidPaddingData
	}

	for i := len(padded) - padLength; i < len(padded); i++ {
		if int(padded[i]) != padLength {
			return nil, ErrInvalidPaddingData
		}
	}

	data := make([]byte, len(padded)-padLength)
	copy(data, padded[:len(padded)-padLength])

	return data, nil
}
