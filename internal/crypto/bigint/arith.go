package bigint

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

const mask32 = 1<<32 - 1

// Add returns x + y mod 2^(64W).
func (x Int) Add(y Int) Int {
	z := x.clone()
	addTo(z.w, x.fit(y))
	return z
}

// Sub returns x - y mod 2^(64W).
func (x Int) Sub(y Int) Int {
	z := x.clone()
	subFrom(z.w, x.fit(y))
	return z
}

// Mul returns x * y truncated to W words. The two's complement product is
// the same bit pattern, so signed and unsigned values share the routine.
func (x Int) Mul(y Int) Int {
	z := New(len(x.w), x.signed)
	mulTo(z.w, x.w, x.fit(y))
	return z
}

// Neg returns -x mod 2^(64W).
func (x Int) Neg() Int {
	z := x.Not()
	addWord(z.w, 1)
	return z
}

// Abs returns |x|. For unsigned values it is a copy.
func (x Int) Abs() Int {
	if x.IsNegative() {
		return x.Neg()
	}
	return x.clone()
}

// DivMod returns the quotient and remainder of x / y. Signed values divide
// magnitudes and truncate toward zero, so the remainder carries the sign of
// the dividend.
func (x Int) DivMod(y Int) (Int, Int, error) {
	yw := x.fit(y)
	if isZeroWords(yw) {
		return Int{}, Int{}, errors.Wrap(cryptcore.ErrDivisionByZero, "bigint.DivMod")
	}
	if !x.signed {
		q, r := udivmod(x.w, yw)
		return Int{w: q, signed: false}, Int{w: r, signed: false}, nil
	}

	yv := Int{w: yw, signed: true}
	q, r := udivmod(x.Abs().w, yv.Abs().w)
	quo := Int{w: q, signed: true}
	rem := Int{w: r, signed: true}
	if x.IsNegative() != yv.IsNegative() {
		quo = quo.Neg()
	}
	if x.IsNegative() {
		rem = rem.Neg()
	}
	return quo, rem, nil
}

// Div returns the truncated quotient x / y.
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder of x / y.
func (x Int) Mod(y Int) (Int, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// Pow returns x^e mod 2^(64W). The exponent's bits are read as unsigned.
func (x Int) Pow(e Int) Int {
	ret := New(len(x.w), x.signed)
	ret.w[0] = 1
	base := x.clone()
	n := e.BitLen()
	for i := 0; i < n; i++ {
		if e.Bit(i) {
			ret = ret.Mul(base)
		}
		base = base.Mul(base)
	}
	return ret
}

// Sqrt returns the integer floor square root of x. Negative signed values
// have no root and return zero.
func (x Int) Sqrt() Int {
	if x.IsNegative() || x.IsZero() {
		return New(len(x.w), x.signed)
	}
	// Squares are compared at double width so mid*mid never wraps.
	wide := x.AsUnsigned().Resize(2 * len(x.w))
	one := FromUint64(len(wide.w), 1)
	lo := one
	hi := New(len(wide.w), false).SetBit((x.BitLen()+1)/2, true)
	for lo.Cmp(hi) < 0 {
		mid := lo.Add(hi).Add(one).Rsh(1)
		if mid.Mul(mid).Cmp(wide) > 0 {
			hi = mid.Sub(one)
		} else {
			lo = mid
		}
	}
	z := lo.Resize(len(x.w))
	z.signed = x.signed
	return z
}

func addTo(z, y []uint64) (carry uint64) {
	for i := range z {
		z[i], carry = bits.Add64(z[i], y[i], carry)
	}
	return carry
}

func subFrom(z, y []uint64) (borrow uint64) {
	for i := range z {
		z[i], borrow = bits.Sub64(z[i], y[i], borrow)
	}
	return borrow
}

func addWord(z []uint64, v uint64) {
	var carry uint64
	z[0], carry = bits.Add64(z[0], v, 0)
	for i := 1; i < len(z) && carry != 0; i++ {
		z[i], carry = bits.Add64(z[i], 0, carry)
	}
}

// mul64 returns the 128-bit product of a and b as (hi, lo), built from the
// four 32x32 partial products.
func mul64(a, b uint64) (hi, lo uint64) {
	a0, a1 := a&mask32, a>>32
	b0, b1 := b&mask32, b>>32

	ll := a0 * b0
	lh := a0 * b1
	hl := a1 * b0
	hh := a1 * b1

	mid := ll>>32 + lh&mask32 + hl&mask32
	lo = mid<<32 | ll&mask32
	hi = hh + lh>>32 + hl>>32 + mid>>32
	return hi, lo
}

// mulTo writes x*y truncated to len(z) words into z, which must be zeroed.
func mulTo(z, x, y []uint64) {
	n := len(z)
	for i := 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; i+j < n; j++ {
			hi, lo := mul64(x[i], y[j])
			var c uint64
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			z[i+j], c = bits.Add64(z[i+j], lo, 0)
			hi += c
			carry = hi
		}
	}
}

// udivmod is restoring binary long division on unsigned words of equal
// length. y must be non-zero.
func udivmod(x, y []uint64) (q, r []uint64) {
	n := len(x)
	q = make([]uint64, n)
	r = make([]uint64, n)
	copy(r, x)

	ylen := bitLen(y)
	if ylen <= wordBits {
		rem := divWord(q, r, y[0])
		for i := range r {
			r[i] = 0
		}
		r[0] = rem
		return q, r
	}

	y = y[:(ylen+wordBits-1)/wordBits]
	top := n - 1
	for {
		for top >= 0 && r[top] == 0 {
			top--
		}
		if top < 0 {
			break
		}
		// 1. align the divisor's top bit with the remainder's
		shift := top*wordBits + bits.Len64(r[top]) - ylen
		if shift < 0 {
			break
		}
		// 2. step back one bit if the shifted divisor overshoots
		if cmpShifted(r[:top+1], y, shift) < 0 {
			if shift == 0 {
				break
			}
			shift--
		}
		// 3. subtract and record the quotient bit
		subShifted(r, y, shift)
		q[shift/wordBits] |= 1 << (uint(shift) % wordBits)
	}
	return q, r
}

// divWord sets q = x / d and returns x mod d for a single-word divisor.
func divWord(q, x []uint64, d uint64) uint64 {
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		q[i], rem = bits.Div64(rem, x[i], d)
	}
	return rem
}

func cmpWords(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	return 0
}

// shiftedWord returns word i of y << shift without materialising the shift.
func shiftedWord(y []uint64, shift, i int) uint64 {
	ws, bs := shift/wordBits, uint(shift)%wordBits
	j := i - ws
	var w uint64
	if j >= 0 && j < len(y) {
		w = y[j] << bs
	}
	if bs > 0 && j >= 1 && j-1 < len(y) {
		w |= y[j-1] >> (wordBits - bs)
	}
	return w
}

func cmpShifted(r, y []uint64, shift int) int {
	for i := len(r) - 1; i >= 0; i-- {
		s := shiftedWord(y, shift, i)
		switch {
		case r[i] > s:
			return 1
		case r[i] < s:
			return -1
		}
	}
	return 0
}

func subShifted(r, y []uint64, shift int) {
	var borrow uint64
	top := shift/wordBits + len(y) + 1
	for i := shift / wordBits; i < len(r); i++ {
		if i >= top && borrow == 0 {
			return
		}
		r[i], borrow = bits.Sub64(r[i], shiftedWord(y, shift, i), borrow)
	}
}
