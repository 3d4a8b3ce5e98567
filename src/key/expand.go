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

// This package has been heavily inspired by Sam Trenholme's blog.
// I highly recommend giving it a read:
// https://www.samiam.org/key-schedule.html

// Package key implements the AES key schedule (KeyExpansion) for all three
// NIST key sizes.
package key

import (
	"fmt"

	"github.com/jhafranco/cryptocore/src/consts"
	"github.com/jhafranco/cryptocore/src/galois"
	"github.com/jhafranco/cryptocore/src/sbox"
)

// ExpandedKey is the full sequence of round-key bytes produced by
// ExpandKey. Its length is schedule.ExpKeySize() for the key size used.
type ExpandedKey []byte

// Rcon returns the idx'th round constant, computed as 2^(idx-1) in GF(2^8).
// This agrees byte-for-byte with the fixed table
// {0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1B, 0x36} for idx in
// [1,10], which is the range AES-128/192/256 key expansion ever indexes.
func Rcon(idx byte) byte {
	if idx == 0 {
		return 0
	}

	var rcon byte = 1

	for idx != 1 {
		rcon = galois.Gmul(rcon, 2)
		idx--
	}

	return rcon
}

// RotWord rotates a 4-byte word left by one byte.
func RotWord(word [consts.WORD_SIZE]byte) [consts.WORD_SIZE]byte {
	var rotated [consts.WORD_SIZE]byte

	for i := 0; i < consts.WORD_SIZE-1; i++ {
		rotated[i] = word[i+1]
	}

	rotated[consts.WORD_SIZE-1] = word[0]
	return rotated
}

// SubWord applies the S-box to each byte of a 4-byte word.
func SubWord(word [consts.WORD_SIZE]byte) [consts.WORD_SIZE]byte {
	var subw [consts.WORD_SIZE]byte

	for i := 0; i < consts.WORD_SIZE; i++ {
		subw[i] = sbox.SBox[word[i]]
	}

	return subw
}

// scheduleCore applies RotWord, SubWord and the Rcon injection used every
// Nk words of the expansion.
func scheduleCore(word [consts.WORD_SIZE]byte, idx byte) [consts.WORD_SIZE]byte {
	word = RotWord(word)
	word = SubWord(word)
	word[0] ^= Rcon(idx)
	return word
}

// ExpandKey derives the full round-key schedule from a raw AES key. The key
// must be exactly 16, 24 or 32 bytes (AES-128/192/256); any other length is
// rejected.
func ExpandKey(k []byte) (ExpandedKey, error) {
	schedule, ok := consts.ScheduleFor(len(k) * 8)
	if !ok {
		return nil, fmt.Errorf("key: invalid key length %d (must be 16, 24 or 32 bytes)", len(k))
	}

	xKey := make(ExpandedKey, schedule.ExpKeySize())
	copy(xKey, k)

	var tmpKey [consts.WORD_SIZE]byte
	keyBytes := schedule.KeyBytes
	c := keyBytes
	var idx byte = 1

	for c < schedule.ExpKeySize() {
		for a := 0; a < consts.WORD_SIZE; a++ {
			tmpKey[a] = xKey[a+c-consts.WORD_SIZE]
		}

		if c%keyBytes == 0 {
			tmpKey = scheduleCore(tmpKey, idx)
			idx++
		} else if schedule.Nk == 8 && c%keyBytes == consts.BLOCK_SIZE {
			// 256-bit keys inject an extra SubWord halfway through each
			// key-length stride (FIPS-197 §5.2).
			tmpKey = SubWord(tmpKey)
		}

		for a := 0; a < consts.WORD_SIZE; a++ {
			xKey[c] = xKey[c-keyBytes] ^ tmpKey[a]
			c++
		}
	}

	return xKey, nil
}
