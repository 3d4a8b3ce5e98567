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

// Package consts defines constant values used by the AES implementation.
//
// Unlike the single-variant predecessor this package grew out of, this core
// supports all three NIST key sizes, so the key-schedule shape (Nk/Nr/Nw) is
// looked up per key size instead of being hardcoded to AES-256.
package consts

const (
	// Size of the AES block, in bytes. Fixed regardless of key size.
	BLOCK_SIZE = 16

	// Size of the key segments (words) used in key expansion, in bytes.
	WORD_SIZE = 4

	// Number of columns in the AES state. Fixed at 4 for every key size.
	NB = 4

	// Size of the initializing vector, in bytes.
	IV_SIZE = 16

	// Size of the number-used-once used in CTR-family modes, in bytes.
	NONCE_SIZE = 12

	// Size of the counter field used in CTR-family modes, in bytes.
	COUNTER_SIZE = BLOCK_SIZE - NONCE_SIZE

	// Size of the GCM authentication tag, in bytes.
	TAG_SIZE = 16
)

// KeySchedule describes the Nk/Nr/Nw shape of the key expansion for one of
// the three AES key sizes, per FIPS-197 Table 4.
type KeySchedule struct {
	// KeyBytes is the raw key size in bytes (16, 24 or 32).
	KeyBytes int

	// Nk is the key length in 32-bit words.
	Nk int

	// Nr is the number of encryption rounds.
	Nr int

	// Nw is the number of 32-bit words in the expanded key schedule (4*(Nr+1)).
	Nw int
}

// ExpKeySize is the size in bytes of the fully expanded round-key schedule.
func (s KeySchedule) ExpKeySize() int {
	return s.Nw * WORD_SIZE
}

// RoundKeys is the number of distinct 16-byte round keys the schedule holds.
func (s KeySchedule) RoundKeys() int {
	return s.Nr + 1
}

var schedules = map[int]KeySchedule{
	128: {KeyBytes: 16, Nk: 4, Nr: 10, Nw: 44},
	192: {KeyBytes: 24, Nk: 6, Nr: 12, Nw: 52},
	256: {KeyBytes: 32, Nk: 8, Nr: 14, Nw: 60},
}

// ScheduleFor returns the key-schedule shape for a key size given in bits
// (128, 192 or 256). The second return value is false for any other size.
func ScheduleFor(keySizeBits int) (KeySchedule, bool) {
	s, ok := schedules[keySizeBits]
	return s, ok
}
