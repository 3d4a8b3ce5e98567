// Package counter implements the 32-bit counter field used by the
// CTR-family modes (CTR, GCM). Only the low 32 bits ever change; the high
// bits of a GCM counter block are the IV-derived prefix and are never
// touched by Increment.
package counter

import (
	"encoding/binary"

	"github.com/jhafranco/cryptocore/src/consts"
)

// Counter holds the COUNTER_SIZE-byte (32-bit) big-endian counter value.
type Counter struct {
	Bytes [consts.COUNTER_SIZE]byte
}

// New creates a counter starting at value, encoded big-endian.
func New(value uint32) *Counter {
	c := new(Counter)
	binary.BigEndian.PutUint32(c.Bytes[:], value)
	return c
}

// FromBytes creates a counter from an existing COUNTER_SIZE-byte big-endian
// value, e.g. the trailing 4 bytes of a GCM counter block.
func FromBytes(src []byte) (*Counter, error) {
	if len(src) != consts.COUNTER_SIZE {
		return nil, errInvalidSize
	}

	c := new(Counter)
	copy(c.Bytes[:], src)
	return c, nil
}

// Increment adds one to the counter modulo 2^32, wrapping to zero at
// 2^32 - 1 exactly like ordinary unsigned overflow.
func (c *Counter) Increment() {
	for i := consts.COUNTER_SIZE - 1; i >= 0; i-- {
		c.Bytes[i]++
		if c.Bytes[i] != 0 {
			break
		}
	}
}

// Uint32 returns the counter's current value.
func (c *Counter) Uint32() uint32 {
	return binary.BigEndian.Uint32(c.Bytes[:])
}

type invalidSizeError struct{}

func (invalidSizeError) Error() string { return "counter: invalid source size" }

var errInvalidSize = invalidSizeError{}
