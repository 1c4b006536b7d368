// Package bigint implements fixed-width multi-word integers.
//
// An Int is W little-endian 64-bit words. Unsigned values live modulo
// 2^(64W) and signed values are two's complement over the same width. All
// arithmetic wraps silently at the word boundary; there is no overflow
// signal. Values are immutable: every operation returns a new Int and never
// writes to its receiver or arguments, so copies never alias.
package bigint

import (
	"encoding/binary"
	"math/bits"
)

const (
	wordBits  = 64
	wordBytes = 8
)

// Int is a fixed-width integer. Use New or one of the From helpers to build
// one; the zero value has no words and is not usable.
type Int struct {
	w      []uint64
	signed bool
}

// New returns a zero value of the given word count. Widths are fixed by
// the caller's types, so a count below 1 is a programming error and
// panics; so do the From helpers, which all go through New.
func New(words int, signed bool) Int {
	if words < 1 {
		panic("bigint: word count must be positive")
	}
	return Int{w: make([]uint64, words), signed: signed}
}

// FromUint64 returns v as an unsigned Int of the given width.
func FromUint64(words int, v uint64) Int {
	z := New(words, false)
	z.w[0] = v
	return z
}

// FromInt64 returns v as a signed Int of the given width.
func FromInt64(words int, v int64) Int {
	z := New(words, true)
	z.w[0] = uint64(v)
	if v < 0 {
		for i := 1; i < words; i++ {
			z.w[i] = ^uint64(0)
		}
	}
	return z
}

// FromWords returns an unsigned Int holding the little-endian words ws.
func FromWords(ws []uint64) Int {
	z := New(len(ws), false)
	copy(z.w, ws)
	return z
}

// FromBytes reads little-endian bytes into an unsigned Int of the given
// width. Input longer than words*8 bytes is truncated; shorter input is
// zero-extended. words must be at least 1.
func FromBytes(words int, b []byte) Int {
	z := New(words, false)
	var buf [wordBytes]byte
	for i := 0; i < words && i*wordBytes < len(b); i++ {
		chunk := b[i*wordBytes:]
		if len(chunk) >= wordBytes {
			z.w[i] = binary.LittleEndian.Uint64(chunk)
			continue
		}
		buf = [wordBytes]byte{}
		copy(buf[:], chunk)
		z.w[i] = binary.LittleEndian.Uint64(buf[:])
	}
	return z
}

// Bytes returns exactly Words()*8 little-endian bytes.
func (x Int) Bytes() []byte {
	out := make([]byte, len(x.w)*wordBytes)
	for i, w := range x.w {
		binary.LittleEndian.PutUint64(out[i*wordBytes:], w)
	}
	return out
}

// Words returns the word count W.
func (x Int) Words() int { return len(x.w) }

// Bits returns the total bit width 64W.
func (x Int) Bits() int { return len(x.w) * wordBits }

// Signed reports whether x is the two's complement variant.
func (x Int) Signed() bool { return x.signed }

// Uint64 returns the low word.
func (x Int) Uint64() uint64 { return x.w[0] }

// Int64 returns the low word as a signed integer.
func (x Int) Int64() int64 { return int64(x.w[0]) }

// AsSigned reinterprets the bits of x as a signed value.
func (x Int) AsSigned() Int {
	z := x.clone()
	z.signed = true
	return z
}

// AsUnsigned reinterprets the bits of x as an unsigned value.
func (x Int) AsUnsigned() Int {
	z := x.clone()
	z.signed = false
	return z
}

// Resize returns x at a new word count. Narrowing truncates; widening
// sign-extends negative signed values and zero-extends everything else.
func (x Int) Resize(words int) Int {
	z := New(words, x.signed)
	copy(z.w, x.w)
	if x.IsNegative() {
		for i := len(x.w); i < words; i++ {
			z.w[i] = ^uint64(0)
		}
	}
	return z
}

// IsNegative reports whether x is signed and its top bit is set.
func (x Int) IsNegative() bool {
	return x.signed && x.w[len(x.w)-1]>>(wordBits-1) == 1
}

// IsZero reports whether every word is zero.
func (x Int) IsZero() bool {
	for _, w := range x.w {
		if w != 0 {
			return false
		}
	}
	return true
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.IsNegative():
		return -1
	default:
		return 1
	}
}

// BitLen returns the position of the highest set bit plus one, or 0 for
// zero. Negative signed values always report the full width.
func (x Int) BitLen() int {
	return bitLen(x.w)
}

// Bit reports whether bit i is set. Bits past the width read as zero.
func (x Int) Bit(i int) bool {
	if i < 0 || i >= len(x.w)*wordBits {
		return false
	}
	return x.w[i/wordBits]>>(uint(i)%wordBits)&1 == 1
}

// SetBit returns a copy of x with bit i set to v. Bits past the width are
// ignored.
func (x Int) SetBit(i int, v bool) Int {
	z := x.clone()
	if i < 0 || i >= len(z.w)*wordBits {
		return z
	}
	mask := uint64(1) << (uint(i) % wordBits)
	if v {
		z.w[i/wordBits] |= mask
	} else {
		z.w[i/wordBits] &^= mask
	}
	return z
}

func (x Int) clone() Int {
	z := Int{w: make([]uint64, len(x.w)), signed: x.signed}
	copy(z.w, x.w)
	return z
}

// fit returns y's words at x's width, sign-extending negative signed values.
func (x Int) fit(y Int) []uint64 {
	if len(y.w) == len(x.w) {
		return y.w
	}
	return y.Resize(len(x.w)).w
}

func bitLen(w []uint64) int {
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] != 0 {
			return i*wordBits + bits.Len64(w[i])
		}
	}
	return 0
}

func isZeroWords(w []uint64) bool {
	for _, v := range w {
		if v != 0 {
			return false
		}
	}
	return true
}
