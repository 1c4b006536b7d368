package curves

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/modring"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// Params holds the coefficients of a short Weierstrass curve
// y^2 = x^3 + a*x + b over a prime field.
type Params struct {
	a, b modring.Element
}

// NewParams binds a and b, which must come from the same field ring.
func NewParams(a, b modring.Element) (*Params, error) {
	if a.Ring() != b.Ring() {
		return nil, errors.Wrap(cryptcore.ErrModulusMismatch, "curves.NewParams")
	}
	return &Params{a: a, b: b}, nil
}

// A returns the linear coefficient.
func (w *Params) A() modring.Element { return w.a }

// B returns the constant coefficient.
func (w *Params) B() modring.Element { return w.b }

// Field returns the coordinate field.
func (w *Params) Field() *modring.Ring { return w.a.Ring() }

// Infinity returns the identity point.
func (w *Params) Infinity() Affine {
	z := w.Field().Zero()
	return Affine{x: z, y: z, inf: true, w: w}
}

// Point returns the affine point (x, y). It does not check that the point
// lies on the curve; use IsOnCurve for that.
func (w *Params) Point(x, y modring.Element) (Affine, error) {
	if x.Ring() != w.Field() || y.Ring() != w.Field() {
		return Affine{}, errors.Wrap(cryptcore.ErrModulusMismatch, "curves.Point")
	}
	return Affine{x: x, y: y, w: w}, nil
}

// LiftX returns a point with the given x coordinate. Either root of
// x^3 + ax + b may be chosen.
func (w *Params) LiftX(x modring.Element) (Affine, error) {
	var f fieldOps
	rhs := w.rhs(&f, x)
	if f.err != nil {
		return Affine{}, errors.WithMessage(f.err, "curves.LiftX")
	}
	y, err := rhs.Sqrt()
	if err != nil {
		return Affine{}, errors.WithMessage(err, "curves.LiftX")
	}
	return Affine{x: x, y: y, w: w}, nil
}

// rhs returns x^3 + ax + b.
func (w *Params) rhs(f *fieldOps, x modring.Element) modring.Element {
	x3 := f.mul(f.mul(x, x), x)
	return f.add(f.add(x3, f.mul(w.a, x)), w.b)
}

// fieldOps threads the first error through a chain of field operations.
// After a failure every call returns its first operand unchanged.
type fieldOps struct {
	err error
}

func (f *fieldOps) add(a, b modring.Element) modring.Element {
	if f.err != nil {
		return a
	}
	r, err := a.Add(b)
	f.err = err
	return r
}

func (f *fieldOps) sub(a, b modring.Element) modring.Element {
	if f.err != nil {
		return a
	}
	r, err := a.Sub(b)
	f.err = err
	return r
}

func (f *fieldOps) mul(a, b modring.Element) modring.Element {
	if f.err != nil {
		return a
	}
	r, err := a.Mul(b)
	f.err = err
	return r
}

func (f *fieldOps) div(a, b modring.Element) modring.Element {
	if f.err != nil {
		return a
	}
	r, err := a.Div(b)
	f.err = err
	return r
}

// small returns the field constant v.
func (f *fieldOps) small(r *modring.Ring, v uint64) modring.Element {
	return r.FromUint64(v)
}
