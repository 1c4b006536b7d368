package curves

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/internal/crypto/modring"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// Affine is a point (x, y) or the point at infinity. Arithmetic never
// checks curve membership.
type Affine struct {
	x, y modring.Element
	inf  bool
	w    *Params
}

// X returns the x coordinate. It is zero for infinity.
func (p Affine) X() modring.Element { return p.x }

// Y returns the y coordinate. It is zero for infinity.
func (p Affine) Y() modring.Element { return p.y }

// IsInfinity reports whether p is the identity.
func (p Affine) IsInfinity() bool { return p.inf }

// Params returns the curve the point belongs to.
func (p Affine) Params() *Params { return p.w }

// Equal compares coordinates. Any two infinities are equal.
func (p Affine) Equal(q Affine) bool {
	if p.inf || q.inf {
		return p.inf && q.inf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// IsOnCurve reports whether y^2 = x^3 + ax + b. Infinity is on every curve.
func (p Affine) IsOnCurve() bool {
	if p.inf {
		return true
	}
	var f fieldOps
	lhs := f.mul(p.y, p.y)
	rhs := p.w.rhs(&f, p.x)
	return f.err == nil && lhs.Equal(rhs)
}

// Neg returns (x, -y).
func (p Affine) Neg() Affine {
	if p.inf {
		return p
	}
	return Affine{x: p.x, y: p.y.Neg(), w: p.w}
}

// Double returns 2p.
func (p Affine) Double() (Affine, error) {
	if p.inf || p.y.IsZero() {
		return p.w.Infinity(), nil
	}
	r := p.w.Field()
	var f fieldOps

	// slope = (3x^2 + a) / 2y
	num := f.add(f.mul(f.small(r, 3), f.mul(p.x, p.x)), p.w.a)
	slope := f.div(num, f.add(p.y, p.y))

	x := f.sub(f.mul(slope, slope), f.add(p.x, p.x))
	y := f.sub(f.mul(slope, f.sub(p.x, x)), p.y)
	if f.err != nil {
		return Affine{}, errors.WithMessage(f.err, "curves.Double")
	}
	return Affine{x: x, y: y, w: p.w}, nil
}

// Add returns p + q.
func (p Affine) Add(q Affine) (Affine, error) {
	if p.w != q.w {
		return Affine{}, errors.Wrap(cryptcore.ErrModulusMismatch, "curves.Add")
	}
	switch {
	case p.inf:
		return q, nil
	case q.inf:
		return p, nil
	case p.Equal(q):
		return p.Double()
	case p.x.Equal(q.x):
		return p.w.Infinity(), nil
	}
	var f fieldOps

	slope := f.div(f.sub(q.y, p.y), f.sub(q.x, p.x))
	x := f.sub(f.sub(f.mul(slope, slope), p.x), q.x)
	y := f.sub(f.mul(slope, f.sub(p.x, x)), p.y)
	if f.err != nil {
		return Affine{}, errors.WithMessage(f.err, "curves.Add")
	}
	return Affine{x: x, y: y, w: p.w}, nil
}

// ScalarMult returns [k]p, accumulating in projective coordinates.
func (p Affine) ScalarMult(k bigint.Int) (Affine, error) {
	acc, err := p.ToProjective().ScalarMult(k)
	if err != nil {
		return Affine{}, err
	}
	return acc.ToAffine()
}

// ToProjective lifts p to (x, y, 1), or (0, 1, 0) for infinity.
func (p Affine) ToProjective() Projective {
	r := p.w.Field()
	if p.inf {
		return Projective{x: r.Zero(), y: r.One(), z: r.Zero(), w: p.w}
	}
	return Projective{x: p.x, y: p.y, z: r.One(), w: p.w}
}
