// Package ghash implements the GF(2^128) polynomial hash GCM uses for
// authentication. It is a distinct field from the GF(2^8) the AES round
// transforms use (src/galois) — different size, different reduction
// polynomial, and a bit-reflected representation — so it gets its own
// package rather than being bolted onto galois.
//
// The predecessor this core grew out of derived its GF(2^128) multiply by
// porting the naive shift-and-add definition directly, mixing the
// standard's reflected bit convention with a non-reflected byte loop. That
// happens to cancel out for some vectors but not others; the
// implementation here follows NIST SP 800-38D Algorithm 1 instead, which
// is the form every independently-verifiable GCM test vector assumes.
package ghash

import (
	"encoding/binary"

	"github.com/jhafranco/cryptocore/src/consts"
)

// reductionConst is R = 11100001 || 0^120 in the reflected representation,
// i.e. 0xE1 placed in the top byte.
const reductionConst = 0xe1

// mul multiplies two 128-bit blocks in the reflected GF(2^128) used by
// GCM: x is shifted right one bit at a time (reducing through
// reductionConst whenever the bit shifted out was set), XORed into the
// accumulator whenever the corresponding bit of y — read MSB-first — is
// set.
func mul(x, y [consts.BLOCK_SIZE]byte) [consts.BLOCK_SIZE]byte {
	var z [consts.BLOCK_SIZE]byte
	v := x

	for i := 0; i < 128; i++ {
		if bitSet(y, i) {
			xorInto(&z, v)
		}

		lsbSet := v[consts.BLOCK_SIZE-1]&1 != 0
		shiftRightOne(&v)
		if lsbSet {
			v[0] ^= reductionConst
		}
	}

	return z
}

// bitSet reports whether bit i (0 = most significant bit of byte 0) of b
// is set.
func bitSet(b [consts.BLOCK_SIZE]byte, i int) bool {
	return b[i/8]&(0x80>>uint(i%8)) != 0
}

func xorInto(dst *[consts.BLOCK_SIZE]byte, src [consts.BLOCK_SIZE]byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func shiftRightOne(b *[consts.BLOCK_SIZE]byte) {
	var carry byte
	for i := 0; i < len(b); i++ {
		next := b[i] & 1
		b[i] = (b[i] >> 1) | (carry << 7)
		carry = next
	}
}

func xorBlocks(a, b [consts.BLOCK_SIZE]byte) [consts.BLOCK_SIZE]byte {
	var out [consts.BLOCK_SIZE]byte
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// padTo16 returns data padded with trailing zero bytes to a multiple of
// the block size. It never mutates data.
func padTo16(data []byte) []byte {
	rem := len(data) % consts.BLOCK_SIZE
	if rem == 0 {
		return data
	}

	padded := make([]byte, len(data)+(consts.BLOCK_SIZE-rem))
	copy(padded, data)
	return padded
}

func toBlock(b []byte) [consts.BLOCK_SIZE]byte {
	var block [consts.BLOCK_SIZE]byte
	copy(block[:], b)
	return block
}

// Sum computes GHASH(H, aad, ciphertext): the AAD and ciphertext are each
// zero-padded to a block boundary, hashed block by block, and finished
// with a 16-byte trailer encoding the two original (unpadded) bit lengths.
func Sum(h [consts.BLOCK_SIZE]byte, aad, ciphertext []byte) [consts.BLOCK_SIZE]byte {
	var x [consts.BLOCK_SIZE]byte

	data := append(padTo16(aad), padTo16(ciphertext)...)
	for i := 0; i < len(data); i += consts.BLOCK_SIZE {
		x = mul(xorBlocks(x, toBlock(data[i:i+consts.BLOCK_SIZE])), h)
	}

	var trailer [consts.BLOCK_SIZE]byte
	binary.BigEndian.PutUint64(trailer[0:8], uint64(len(aad))*8)
	binary.BigEndian.PutUint64(trailer[8:16], uint64(len(ciphertext))*8)

	x = mul(xorBlocks(x, trailer), h)
	return x
}
