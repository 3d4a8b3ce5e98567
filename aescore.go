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

// Package cryptocore implements the AES block cipher (128/192/256-bit
// keys), the ECB/CBC/CFB/OFB/CTR/GCM modes layered on top of it, and the
// RC4 stream cipher (in the sibling rc4 package).
package cryptocore

import (
	"github.com/pkg/errors"

	"github.com/jhafranco/cryptocore/src/consts"
	g "github.com/jhafranco/cryptocore/src/galois"
	"github.com/jhafranco/cryptocore/src/key"
	"github.com/jhafranco/cryptocore/src/sbox"
)

// blockCipher holds one expanded AES key and can encrypt/decrypt single
// 16-byte blocks. It has no notion of mode, padding or IV — those live in
// Engine and the standalone mode functions that wrap blockCipher.
type blockCipher struct {
	schedule    consts.KeySchedule
	expandedKey key.ExpandedKey
}

// newBlockCipher expands k (16, 24 or 32 bytes) into a blockCipher.
func newBlockCipher(k []byte) (*blockCipher, error) {
	schedule, ok := consts.ScheduleFor(len(k) * 8)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidKeySize, "got %d bytes", len(k))
	}

	xKey, err := key.ExpandKey(k)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidKeySize, err.Error())
	}

	return &blockCipher{schedule: schedule, expandedKey: xKey}, nil
}

func subBytes(state []byte) []byte {
	out := make([]byte, consts.BLOCK_SIZE)
	for i, b := range state {
		out[i] = sbox.SBox[b]
	}
	return out
}

func invSubBytes(state []byte) []byte {
	out := make([]byte, consts.BLOCK_SIZE)
	for i, b := range state {
		out[i] = sbox.InvSBox[b]
	}
	return out
}

// shiftRows rotates row r left by r positions in the column-major 16-byte
// layout; row r occupies indices {r, r+4, r+8, r+12}.
func shiftRows(state []byte) []byte {
	out := make([]byte, consts.BLOCK_SIZE)
	copy(out, state)

	for r := 1; r < 4; r++ {
		out[r+4*0] = state[r+4*((r+0)%4)]
		out[r+4*1] = state[r+4*((r+1)%4)]
		out[r+4*2] = state[r+4*((r+2)%4)]
		out[r+4*3] = state[r+4*((r+3)%4)]
	}

	return out
}

func invShiftRows(state []byte) []byte {
	out := make([]byte, consts.BLOCK_SIZE)
	copy(out, state)

	for r := 1; r < 4; r++ {
		j := 4 - r
		out[r+4*0] = state[r+4*((j+0)%4)]
		out[r+4*1] = state[r+4*((j+1)%4)]
		out[r+4*2] = state[r+4*((j+2)%4)]
		out[r+4*3] = state[r+4*((j+3)%4)]
	}

	return out
}

// mixColumns applies the forward MDS matrix ({02,03,01,01} cyclically) to
// every column of state.
func mixColumns(state []byte) []byte {
	out := make([]byte, consts.BLOCK_SIZE)

	for i := 0; i < 4; i++ {
		out[4*i+0] = g.MulByConst(0x02, state[4*i+0]) ^ g.MulByConst(0x03, state[4*i+1]) ^ state[4*i+2] ^ state[4*i+3]
		out[4*i+1] = state[4*i+0] ^ g.MulByConst(0x02, state[4*i+1]) ^ g.MulByConst(0x03, state[4*i+2]) ^ state[4*i+3]
		out[4*i+2] = state[4*i+0] ^ state[4*i+1] ^ g.MulByConst(0x02, state[4*i+2]) ^ g.MulByConst(0x03, state[4*i+3])
		out[4*i+3] = g.MulByConst(0x03, state[4*i+0]) ^ state[4*i+1] ^ state[4*i+2] ^ g.MulByConst(0x02, state[4*i+3])
	}

	return out
}

// invMixColumns applies the inverse MDS matrix ({0e,0b,0d,09} cyclically).
func invMixColumns(state []byte) []byte {
	out := make([]byte, consts.BLOCK_SIZE)

	for i := 0; i < 4; i++ {
		out[4*i+0] = g.MulByConst(0x0e, state[4*i+0]) ^ g.MulByConst(0x0b, state[4*i+1]) ^ g.MulByConst(0x0d, state[4*i+2]) ^ g.MulByConst(0x09, state[4*i+3])
		out[4*i+1] = g.MulByConst(0x09, state[4*i+0]) ^ g.MulByConst(0x0e, state[4*i+1]) ^ g.MulByConst(0x0b, state[4*i+2]) ^ g.MulByConst(0x0d, state[4*i+3])
		out[4*i+2] = g.MulByConst(0x0d, state[4*i+0]) ^ g.MulByConst(0x09, state[4*i+1]) ^ g.MulByConst(0x0e, state[4*i+2]) ^ g.MulByConst(0x0b, state[4*i+3])
		out[4*i+3] = g.MulByConst(0x0b, state[4*i+0]) ^ g.MulByConst(0x0d, state[4*i+1]) ^ g.MulByConst(0x09, state[4*i+2]) ^ g.MulByConst(0x0e, state[4*i+3])
	}

	return out
}

func (b *blockCipher) addRoundKey(state []byte, roundIdx int) []byte {
	roundKey := b.expandedKey[roundIdx*consts.BLOCK_SIZE : (roundIdx+1)*consts.BLOCK_SIZE]

	out := make([]byte, consts.BLOCK_SIZE)
	for i, v := range state {
		out[i] = g.Gadd(v, roundKey[i])
	}

	return out
}

// encryptBlock performs one 16-byte AES encryption.
func (b *blockCipher) encryptBlock(block []byte) []byte {
	nr := b.schedule.Nr

	state := b.addRoundKey(block, 0)

	for round := 1; round < nr; round++ {
		state = subBytes(state)
		state = shiftRows(state)
		state = mixColumns(state)
		state = b.addRoundKey(state, round)
	}

	state = subBytes(state)
	state = shiftRows(state)
	state = b.addRoundKey(state, nr)

	return state
}

// decryptBlock performs one 16-byte AES decryption.
func (b *blockCipher) decryptBlock(block []byte) []byte {
	nr := b.schedule.Nr

	state := b.addRoundKey(block, nr)

	for round := nr - 1; round > 0; round-- {
		state = invShiftRows(state)
		state = invSubBytes(state)
		state = b.addRoundKey(state, round)
		state = invMixColumns(state)
	}

	state = invShiftRows(state)
	state = invSubBytes(state)
	state = b.addRoundKey(state, 0)

	return state
}
