package modring

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// Legendre returns the Legendre symbol of a: 0 for zero, 1 for a quadratic
// residue and -1 otherwise. p must be an odd prime.
func (a Element) Legendre() int {
	if a.IsZero() {
		return 0
	}
	half := a.r.p.Sub(bigint.FromUint64(1, 1)).Rsh(1)
	t := a.Pow(half)
	if t.Equal(a.r.One()) {
		return 1
	}
	return -1
}

// Sqrt returns a square root of a by Tonelli-Shanks. Zero maps to zero and
// a non-residue fails with cryptcore.ErrNonResidue. Which of the two roots
// comes back is unspecified.
func (a Element) Sqrt() (Element, error) {
	r := a.r
	if a.IsZero() {
		return a, nil
	}
	one := bigint.FromUint64(r.words, 1)
	pm1 := r.p.Sub(one)

	// p - 1 = q * 2^s with q odd
	q, s := pm1, 0
	for !q.IsZero() && !q.Bit(0) {
		q = q.Rsh(1)
		s++
	}
	if s == 0 {
		// p = 2: every element is its own root.
		return a, nil
	}
	if a.Legendre() != 1 {
		return Element{}, errors.Wrapf(cryptcore.ErrNonResidue, "modring.Sqrt: %s", a)
	}
	if s == 1 {
		// p = 3 mod 4
		return a.Pow(r.p.Add(one).Rsh(2)), nil
	}

	z := r.FromUint64(2)
	for z.Legendre() != -1 {
		z = z.add(r.One())
	}

	m := s
	c := z.Pow(q)
	t := a.Pow(q)
	res := a.Pow(q.Add(one).Rsh(1))
	unit := r.One()
	for !t.Equal(unit) {
		// least i with t^(2^i) = 1
		i, t2 := 0, t
		for !t2.Equal(unit) {
			t2 = t2.mul(t2)
			i++
		}
		b := c
		for j := 0; j < m-i-1; j++ {
			b = b.mul(b)
		}
		m = i
		c = b.mul(b)
		t = t.mul(c)
		res = res.mul(b)
	}
	return res, nil
}
