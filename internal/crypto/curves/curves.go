package curves

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/internal/crypto/modring"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// Curve is a named short Weierstrass curve with a generator of prime order
// N. Field and Order share the curve's base word width.
type Curve struct {
	Name   string
	Words  int
	Field  *modring.Ring
	Order  *modring.Ring
	Params *Params
	G      Affine
}

// N returns the group order at base width.
func (c *Curve) N() bigint.Int { return c.Order.Modulus() }

// ByteLen returns the size of one encoded coordinate or scalar, W*8.
func (c *Curve) ByteLen() int { return c.Words * 8 }

// Infinity returns the identity point of the curve.
func (c *Curve) Infinity() Affine { return c.Params.Infinity() }

// ScalarBaseMult returns [k]G.
func (c *Curve) ScalarBaseMult(k bigint.Int) (Affine, error) {
	return c.G.ScalarMult(k)
}

// ScalarMult returns [k]p for a point on this curve.
func (c *Curve) ScalarMult(p Affine, k bigint.Int) (Affine, error) {
	if p.Params() != c.Params {
		return Affine{}, errors.Wrapf(cryptcore.ErrModulusMismatch, "curves.ScalarMult: point is not on %s", c.Name)
	}
	return p.ScalarMult(k)
}

// RandomScalar draws a uniform scalar in [1, N-1] from rand.
func (c *Curve) RandomScalar(rand io.Reader) (modring.Element, error) {
	n := c.N()
	bitLen := n.BitLen()
	buf := make([]byte, c.ByteLen())
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return modring.Element{}, errors.Wrap(err, "curves.RandomScalar")
		}
		k := bigint.FromBytes(c.Words, buf)
		if bitLen < k.Bits() {
			k = k.And(bigint.New(c.Words, false).Not().Rsh(uint(k.Bits() - bitLen)))
		}
		if !k.IsZero() && k.Cmp(n) < 0 {
			return c.Order.FromInt(k), nil
		}
	}
}

// Marshal encodes p as x || y, each W*8 little-endian bytes. Infinity
// encodes as all zeros.
func (c *Curve) Marshal(p Affine) []byte {
	out := make([]byte, 2*c.ByteLen())
	if p.IsInfinity() {
		return out
	}
	copy(out, p.X().Bytes())
	copy(out[c.ByteLen():], p.Y().Bytes())
	return out
}

// Unmarshal decodes x || y. A wrong length fails with
// ErrInvalidSignatureEncoding; coordinates out of range or off the curve
// fail with ErrInvalidPublicKey. All zeros decodes to infinity.
func (c *Curve) Unmarshal(b []byte) (Affine, error) {
	if len(b) != 2*c.ByteLen() {
		return Affine{}, errors.Wrapf(cryptcore.ErrInvalidSignatureEncoding,
			"curves.Unmarshal: %s point is %d bytes, got %d", c.Name, 2*c.ByteLen(), len(b))
	}
	if isZero(b) {
		return c.Infinity(), nil
	}
	x, err := c.coordinate(b[:c.ByteLen()])
	if err != nil {
		return Affine{}, err
	}
	y, err := c.coordinate(b[c.ByteLen():])
	if err != nil {
		return Affine{}, err
	}
	p, err := c.Params.Point(x, y)
	if err != nil {
		return Affine{}, err
	}
	if !p.IsOnCurve() {
		return Affine{}, errors.Wrapf(cryptcore.ErrInvalidPublicKey, "curves.Unmarshal: point not on %s", c.Name)
	}
	return p, nil
}

// DecompressX rebuilds a point from its W*8-byte x coordinate by solving
// for y. Which of the two roots is returned is unspecified. A wrong length
// fails with ErrInvalidSignatureEncoding.
func (c *Curve) DecompressX(b []byte) (Affine, error) {
	if len(b) != c.ByteLen() {
		return Affine{}, errors.Wrapf(cryptcore.ErrInvalidSignatureEncoding,
			"curves.DecompressX: %s coordinate is %d bytes, got %d", c.Name, c.ByteLen(), len(b))
	}
	x, err := c.coordinate(b)
	if err != nil {
		return Affine{}, err
	}
	p, err := c.Params.LiftX(x)
	if err != nil {
		return Affine{}, errors.WithMessagef(err, "curves.DecompressX: %s", c.Name)
	}
	return p, nil
}

func (c *Curve) coordinate(b []byte) (modring.Element, error) {
	v := bigint.FromBytes(c.Words, b)
	if v.Cmp(c.Field.Modulus()) >= 0 {
		return modring.Element{}, errors.Wrapf(cryptcore.ErrInvalidPublicKey, "curves: coordinate exceeds %s field", c.Name)
	}
	return c.Field.FromInt(v), nil
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

var registry = map[string]*Curve{}

func register(c *Curve) {
	registry[c.Name] = c
}

// Lookup returns the named curve.
func Lookup(name string) (*Curve, error) {
	c, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(cryptcore.ErrUnknownCurve, "curves.Lookup: %q", name)
	}
	return c, nil
}

// Default returns secp256r1.
func Default() *Curve {
	return registry[cryptcore.DefaultCurve]
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
