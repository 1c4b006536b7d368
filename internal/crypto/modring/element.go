package modring

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// Element is a value in [0, p) bound to its Ring. Obtain one from a Ring
// factory; the zero Element is not usable.
type Element struct {
	v bigint.Int // 2W words, always reduced
	r *Ring
}

// Ring returns the ring the element belongs to.
func (a Element) Ring() *Ring { return a.r }

// Value returns the element at the ring's base width.
func (a Element) Value() bigint.Int { return a.v.Resize(a.r.words) }

// Bytes returns the value as W*8 little-endian bytes.
func (a Element) Bytes() []byte { return a.Value().Bytes() }

// String returns the value in base 10.
func (a Element) String() string { return a.v.String() }

// IsZero reports whether the element is zero.
func (a Element) IsZero() bool { return a.v.IsZero() }

// Equal reports whether a and b belong to the same ring and hold the same
// value.
func (a Element) Equal(b Element) bool {
	return a.r == b.r && a.v.Equal(b.v)
}

// Cmp compares the integer values of a and b.
func (a Element) Cmp(b Element) int { return a.v.Cmp(b.v) }

func (a Element) check(op string, b Element) error {
	if a.r != b.r {
		return errors.Wrapf(cryptcore.ErrModulusMismatch, "modring.%s", op)
	}
	return nil
}

// Add returns a + b mod p.
func (a Element) Add(b Element) (Element, error) {
	if err := a.check("Add", b); err != nil {
		return Element{}, err
	}
	return a.add(b), nil
}

// Sub returns a - b mod p.
func (a Element) Sub(b Element) (Element, error) {
	if err := a.check("Sub", b); err != nil {
		return Element{}, err
	}
	return a.sub(b), nil
}

// Mul returns a * b mod p.
func (a Element) Mul(b Element) (Element, error) {
	if err := a.check("Mul", b); err != nil {
		return Element{}, err
	}
	return a.mul(b), nil
}

// Div returns a * b^-1 mod p. p must be prime.
func (a Element) Div(b Element) (Element, error) {
	if err := a.check("Div", b); err != nil {
		return Element{}, err
	}
	inv, err := b.Inverse()
	if err != nil {
		return Element{}, errors.WithMessage(err, "modring.Div")
	}
	return a.mul(inv), nil
}

// Mod returns the remainder of a's value divided by b's value.
func (a Element) Mod(b Element) (Element, error) {
	if err := a.check("Mod", b); err != nil {
		return Element{}, err
	}
	rem, err := a.v.Mod(b.v)
	if err != nil {
		return Element{}, errors.WithMessage(err, "modring.Mod")
	}
	return Element{v: rem, r: a.r}, nil
}

// Neg returns -a mod p.
func (a Element) Neg() Element {
	if a.v.IsZero() {
		return a
	}
	return Element{v: a.r.wide.Sub(a.v), r: a.r}
}

// Pow returns a^e mod p using square-and-multiply from the low bit.
func (a Element) Pow(e bigint.Int) Element {
	ret := a.r.One()
	base := a
	n := e.BitLen()
	for i := 0; i < n; i++ {
		if e.Bit(i) {
			ret = ret.mul(base)
		}
		base = base.mul(base)
	}
	return ret
}

// Inverse returns a^(p-2) mod p, the multiplicative inverse when p is
// prime.
func (a Element) Inverse() (Element, error) {
	if a.v.IsZero() {
		return Element{}, errors.Wrap(cryptcore.ErrDivisionByZero, "modring.Inverse")
	}
	return a.Pow(a.r.p.Sub(bigint.FromUint64(1, 2))), nil
}

// Lsh shifts the value left by n bits and reduces.
func (a Element) Lsh(n uint) Element { return a.r.reduce(a.v.Lsh(n)) }

// Rsh shifts the value right by n bits.
func (a Element) Rsh(n uint) Element { return Element{v: a.v.Rsh(n), r: a.r} }

// And returns the reduced bitwise AND of the values.
func (a Element) And(b Element) (Element, error) {
	if err := a.check("And", b); err != nil {
		return Element{}, err
	}
	return a.r.reduce(a.v.And(b.v)), nil
}

// Or returns the reduced bitwise OR of the values.
func (a Element) Or(b Element) (Element, error) {
	if err := a.check("Or", b); err != nil {
		return Element{}, err
	}
	return a.r.reduce(a.v.Or(b.v)), nil
}

// Xor returns the reduced bitwise XOR of the values.
func (a Element) Xor(b Element) (Element, error) {
	if err := a.check("Xor", b); err != nil {
		return Element{}, err
	}
	return a.r.reduce(a.v.Xor(b.v)), nil
}

func (a Element) add(b Element) Element {
	return a.r.reduce(a.v.Add(b.v))
}

func (a Element) sub(b Element) Element {
	if a.v.Cmp(b.v) >= 0 {
		return Element{v: a.v.Sub(b.v), r: a.r}
	}
	return Element{v: a.v.Add(a.r.wide).Sub(b.v), r: a.r}
}

func (a Element) mul(b Element) Element {
	return a.r.reduce(a.v.Mul(b.v))
}
