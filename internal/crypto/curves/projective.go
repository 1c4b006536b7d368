package curves

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/internal/crypto/modring"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// Projective is a point in homogeneous coordinates: the affine point is
// (X/Z, Y/Z) and Z = 0 is infinity.
type Projective struct {
	x, y, z modring.Element
	w       *Params
}

// IsInfinity reports whether Z is zero.
func (p Projective) IsInfinity() bool { return p.z.IsZero() }

// Params returns the curve the point belongs to.
func (p Projective) Params() *Params { return p.w }

// Equal compares the represented points, independent of scaling.
func (p Projective) Equal(q Projective) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	var f fieldOps
	x1, x2 := f.mul(p.x, q.z), f.mul(q.x, p.z)
	y1, y2 := f.mul(p.y, q.z), f.mul(q.y, p.z)
	return f.err == nil && x1.Equal(x2) && y1.Equal(y2)
}

// Neg returns (X, -Y, Z).
func (p Projective) Neg() Projective {
	return Projective{x: p.x, y: p.y.Neg(), z: p.z, w: p.w}
}

// ToAffine normalises with a single field inversion.
func (p Projective) ToAffine() (Affine, error) {
	if p.IsInfinity() {
		return p.w.Infinity(), nil
	}
	zinv, err := p.z.Inverse()
	if err != nil {
		return Affine{}, errors.WithMessage(err, "curves.ToAffine")
	}
	var f fieldOps
	x := f.mul(p.x, zinv)
	y := f.mul(p.y, zinv)
	if f.err != nil {
		return Affine{}, errors.WithMessage(f.err, "curves.ToAffine")
	}
	return Affine{x: x, y: y, w: p.w}, nil
}

// Double returns 2p.
func (p Projective) Double() (Projective, error) {
	if p.IsInfinity() || p.y.IsZero() {
		return p.w.Infinity().ToProjective(), nil
	}
	r := p.w.Field()
	var f fieldOps

	// w = aZ^2 + 3X^2, s = YZ, B = XYs, h = w^2 - 8B
	w := f.add(f.mul(p.w.a, f.mul(p.z, p.z)), f.mul(f.small(r, 3), f.mul(p.x, p.x)))
	s := f.mul(p.y, p.z)
	b := f.mul(f.mul(p.x, p.y), s)
	h := f.sub(f.mul(w, w), f.mul(f.small(r, 8), b))
	s2 := f.mul(s, s)

	x := f.mul(f.small(r, 2), f.mul(h, s))
	y := f.sub(
		f.mul(w, f.sub(f.mul(f.small(r, 4), b), h)),
		f.mul(f.small(r, 8), f.mul(f.mul(p.y, p.y), s2)),
	)
	z := f.mul(f.small(r, 8), f.mul(s2, s))
	if f.err != nil {
		return Projective{}, errors.WithMessage(f.err, "curves.Double")
	}
	return Projective{x: x, y: y, z: z, w: p.w}, nil
}

// Add returns p + q.
func (p Projective) Add(q Projective) (Projective, error) {
	if p.w != q.w {
		return Projective{}, errors.Wrap(cryptcore.ErrModulusMismatch, "curves.Add")
	}
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}
	var f fieldOps

	u1 := f.mul(q.y, p.z)
	u2 := f.mul(p.y, q.z)
	v1 := f.mul(q.x, p.z)
	v2 := f.mul(p.x, q.z)
	if f.err != nil {
		return Projective{}, errors.WithMessage(f.err, "curves.Add")
	}
	if v1.Equal(v2) {
		if u1.Equal(u2) {
			return p.Double()
		}
		return p.w.Infinity().ToProjective(), nil
	}

	u := f.sub(u1, u2)
	v := f.sub(v1, v2)
	w := f.mul(p.z, q.z)
	vv := f.mul(v, v)
	vvv := f.mul(vv, v)
	vvv2 := f.mul(vv, v2)
	// A = u^2 w - v^3 - 2 v^2 v2
	a := f.sub(f.sub(f.mul(f.mul(u, u), w), vvv), f.add(vvv2, vvv2))

	x := f.mul(v, a)
	y := f.sub(f.mul(u, f.sub(vvv2, a)), f.mul(vvv, u2))
	z := f.mul(vvv, w)
	if f.err != nil {
		return Projective{}, errors.WithMessage(f.err, "curves.Add")
	}
	return Projective{x: x, y: y, z: z, w: p.w}, nil
}

// ScalarMult returns [k]p by double-and-add from the low bit. The bits of k
// are read as an unsigned integer.
func (p Projective) ScalarMult(k bigint.Int) (Projective, error) {
	acc := p.w.Infinity().ToProjective()
	base := p
	n := k.BitLen()
	for i := 0; i < n; i++ {
		var err error
		if k.Bit(i) {
			if acc, err = acc.Add(base); err != nil {
				return Projective{}, err
			}
		}
		if i+1 < n {
			if base, err = base.Double(); err != nil {
				return Projective{}, err
			}
		}
	}
	return acc, nil
}
