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

// Package galois implements GF(2^8) arithmetic used by the AES round
// transforms. The 128-bit field used by GHASH lives in its own package
// (src/ghash) since it uses a different (bit-reflected) representation.
package galois

// Gadd adds two elements of GF(2^8). Addition and subtraction coincide in
// characteristic 2.
func Gadd(a byte, b byte) byte {
	return a ^ b
}

// Gsub subtracts two elements of GF(2^8).
func Gsub(a byte, b byte) byte {
	return a ^ b
}

// Gmul multiplies two bytes as polynomials in GF(2^8), reduced modulo the
// AES polynomial x^8 + x^4 + x^3 + x + 1 (0x11B). This is the Russian
// peasant multiplication algorithm and is the specification reference the
// precomputed tables below are checked against; callers on a hot path
// should prefer MulByConst.
func Gmul(a byte, b byte) byte {
	var p byte = 0

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}

		hiBitSet := a&0x80 != 0
		a <<= 1

		if hiBitSet {
			a ^= 0x1b
		}

		b >>= 1
	}

	return p
}

// GxorBlocks XORs two equal-length byte slices.
func GxorBlocks(a []byte, b []byte) []byte {
	result := make([]byte, len(a))

	for i, val := range a {
		result[i] = Gadd(val, b[i])
	}

	return result
}

// mulConstants are the fixed multipliers MixColumns and InvMixColumns need.
var mulConstants = [...]byte{0x02, 0x03, 0x09, 0x0b, 0x0d, 0x0e}

// mulTables[k] is a 256-entry lookup table for multiplication by
// mulConstants[k], built once at init time from Gmul.
var mulTables [len(mulConstants)][256]byte

func init() {
	for k, c := range mulConstants {
		for b := 0; b < 256; b++ {
			mulTables[k][b] = Gmul(c, byte(b))
		}
	}
}

func tableIndex(c byte) int {
	switch c {
	case 0x02:
		return 0
	case 0x03:
		return 1
	case 0x09:
		return 2
	case 0x0b:
		return 3
	case 0x0d:
		return 4
	case 0x0e:
		return 5
	default:
		return -1
	}
}

// MulByConst multiplies b by one of the six fixed MixColumns constants
// ({0x02, 0x03, 0x09, 0x0b, 0x0d, 0x0e}) using a precomputed table. It
// panics if c is not one of those constants — this is a programming error,
// never caller input.
func MulByConst(c byte, b byte) byte {
	idx := tableIndex(c)
	if idx < 0 {
		panic("galois: MulByConst called with a non-MixColumns constant")
	}
	return mulTables[idx][b]
}
