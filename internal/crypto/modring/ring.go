// Package modring implements arithmetic modulo a runtime-bound modulus.
//
// A Ring owns the modulus and every Element carries a pointer to the Ring
// that made it. Elements from different rings never mix: binary operations
// between them fail with cryptcore.ErrModulusMismatch.
package modring

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// Ring is an immutable modulus context. The modulus is stored at its base
// width W; element values are kept at 2W so the product of two reduced
// values never wraps.
type Ring struct {
	p     bigint.Int // modulus, W words
	wide  bigint.Int // modulus, 2W words
	words int
}

// New creates a ring for the given modulus. The modulus's word count fixes
// the ring's base width.
func New(modulus bigint.Int) (*Ring, error) {
	if modulus.IsZero() {
		return nil, errors.Wrap(cryptcore.ErrDivisionByZero, "modring.New: zero modulus")
	}
	p := modulus.AsUnsigned()
	return &Ring{
		p:     p,
		wide:  p.Resize(2 * p.Words()),
		words: p.Words(),
	}, nil
}

// MustNew is like New but panics on error. It is meant for constants.
func MustNew(modulus bigint.Int) *Ring {
	r, err := New(modulus)
	if err != nil {
		panic(err)
	}
	return r
}

// Modulus returns the modulus at base width.
func (r *Ring) Modulus() bigint.Int { return r.p }

// Words returns the base width W.
func (r *Ring) Words() int { return r.words }

// ByteLen returns the size of an encoded element, W*8.
func (r *Ring) ByteLen() int { return r.words * 8 }

// Zero returns the additive identity.
func (r *Ring) Zero() Element {
	return Element{v: bigint.New(2*r.words, false), r: r}
}

// One returns the multiplicative identity (zero in the trivial ring mod 1).
func (r *Ring) One() Element {
	return r.FromUint64(1)
}

// FromUint64 returns v mod p.
func (r *Ring) FromUint64(v uint64) Element {
	return r.reduce(bigint.FromUint64(2*r.words, v))
}

// FromInt reduces an integer of any width into the ring. Negative signed
// values map to p - (|x| mod p).
func (r *Ring) FromInt(x bigint.Int) Element {
	neg := x.IsNegative()
	mag := x.Abs().AsUnsigned()
	w := mag.Words()
	if w < 2*r.words {
		w = 2 * r.words
	}
	rem, _ := mag.Resize(w).Mod(r.p.Resize(w))
	e := Element{v: rem.Resize(2 * r.words), r: r}
	if neg {
		return e.Neg()
	}
	return e
}

// FromBytes reads little-endian bytes of any length and reduces them.
func (r *Ring) FromBytes(b []byte) Element {
	words := (len(b) + 7) / 8
	if words < 1 {
		words = 1
	}
	return r.FromInt(bigint.FromBytes(words, b))
}

// Parse reads text in the given base and reduces it into the ring.
func (r *Ring) Parse(text string, base int) (Element, error) {
	x, err := bigint.Parse(2*r.words, true, text, base)
	if err != nil {
		return Element{}, errors.WithMessage(err, "modring.Parse")
	}
	return r.FromInt(x), nil
}

// MustParse is like Parse but panics on error.
func (r *Ring) MustParse(text string, base int) Element {
	e, err := r.Parse(text, base)
	if err != nil {
		panic(err)
	}
	return e
}

// reduce maps a 2W-word unsigned value into [0, p).
func (r *Ring) reduce(x bigint.Int) Element {
	if x.Cmp(r.wide) < 0 {
		return Element{v: x, r: r}
	}
	rem, _ := x.Mod(r.wide)
	return Element{v: rem, r: r}
}
