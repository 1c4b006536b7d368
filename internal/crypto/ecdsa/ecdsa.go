// Package ecdsa signs and verifies messages on the registry curves.
//
// Message digests and nonces come from SHAKE256. Nonces are deterministic:
// k = LE(Hash256(HashN(d, 64)[32:64] || message)) mod N. The construction
// is not RFC 6979 and has not been reviewed; it is kept so signatures stay
// byte-compatible with existing peers.
package ecdsa

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/internal/crypto/curves"
	"github.com/smallyu/go-cryptcore/internal/crypto/modring"
	"github.com/smallyu/go-cryptcore/internal/crypto/shake"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// Signature is the pair (r, s), each at the curve's base width.
type Signature struct {
	R bigint.Int
	S bigint.Int
}

// Scheme signs and verifies on a single curve.
type Scheme struct {
	curve *curves.Curve
}

// New returns the scheme for c.
func New(c *curves.Curve) *Scheme {
	return &Scheme{curve: c}
}

// ForName looks the curve up in the registry.
func ForName(name string) (*Scheme, error) {
	c, err := curves.Lookup(name)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

// Curve returns the scheme's curve.
func (s *Scheme) Curve() *curves.Curve { return s.curve }

// MakePublicKey returns [secret mod N]G.
func (s *Scheme) MakePublicKey(secret bigint.Int) (curves.Affine, error) {
	d := s.curve.Order.FromInt(secret)
	if d.IsZero() {
		return curves.Affine{}, errors.Wrap(cryptcore.ErrDegenerateSignature, "ecdsa.MakePublicKey: secret is 0 mod N")
	}
	return s.curve.ScalarBaseMult(d.Value())
}

// Sign signs message with secret. Any zero intermediate (d, k, r or s)
// fails with ErrDegenerateSignature.
func (s *Scheme) Sign(secret bigint.Int, message []byte) (Signature, error) {
	c := s.curve
	d := c.Order.FromInt(secret)
	if d.IsZero() {
		return Signature{}, errors.Wrap(cryptcore.ErrDegenerateSignature, "ecdsa.Sign: secret is 0 mod N")
	}

	// 1. deterministic nonce
	k := s.nonce(d, message)
	if k.IsZero() {
		return Signature{}, errors.Wrap(cryptcore.ErrDegenerateSignature, "ecdsa.Sign: nonce is 0")
	}

	// 2. r = x([k]G) mod N
	kg, err := c.ScalarBaseMult(k.Value())
	if err != nil {
		return Signature{}, errors.WithMessage(err, "ecdsa.Sign")
	}
	r := c.Order.FromInt(kg.X().Value())
	if r.IsZero() {
		return Signature{}, errors.Wrap(cryptcore.ErrDegenerateSignature, "ecdsa.Sign: r is 0")
	}

	// 3. s = (e + r*d) / k mod N
	e := s.digest(message)
	rd, err := r.Mul(d)
	if err != nil {
		return Signature{}, errors.WithMessage(err, "ecdsa.Sign")
	}
	num, err := e.Add(rd)
	if err != nil {
		return Signature{}, errors.WithMessage(err, "ecdsa.Sign")
	}
	sig, err := num.Div(k)
	if err != nil {
		return Signature{}, errors.WithMessage(err, "ecdsa.Sign")
	}
	if sig.IsZero() {
		return Signature{}, errors.Wrap(cryptcore.ErrDegenerateSignature, "ecdsa.Sign: s is 0")
	}

	return Signature{R: r.Value(), S: sig.Value()}, nil
}

// Verify reports whether sig is a valid signature of message under pub.
// Out-of-range r or s, and public keys that are infinity, off the curve or
// on another curve, all verify as false.
func (s *Scheme) Verify(pub curves.Affine, sig Signature, message []byte) bool {
	c := s.curve
	if pub.Params() != c.Params || pub.IsInfinity() || !pub.IsOnCurve() {
		return false
	}
	n := c.N()
	if !inRange(sig.R, n) || !inRange(sig.S, n) {
		return false
	}
	r := c.Order.FromInt(sig.R)
	sv := c.Order.FromInt(sig.S)
	e := s.digest(message)

	w, err := sv.Inverse()
	if err != nil {
		return false
	}
	u1, err := e.Mul(w)
	if err != nil {
		return false
	}
	u2, err := r.Mul(w)
	if err != nil {
		return false
	}

	p1, err := c.G.ToProjective().ScalarMult(u1.Value())
	if err != nil {
		return false
	}
	p2, err := pub.ToProjective().ScalarMult(u2.Value())
	if err != nil {
		return false
	}
	sum, err := p1.Add(p2)
	if err != nil {
		return false
	}
	x, err := sum.ToAffine()
	if err != nil || x.IsInfinity() {
		return false
	}
	return c.Order.FromInt(x.X().Value()).Equal(r)
}

// nonce derives k from the reduced secret and the message.
func (s *Scheme) nonce(d modring.Element, message []byte) modring.Element {
	seed := shake.HashN(d.Bytes(), 64)[32:64]
	buf := make([]byte, 0, len(seed)+len(message))
	buf = append(buf, seed...)
	buf = append(buf, message...)
	return s.curve.Order.FromBytes(shake.Hash256(buf))
}

// digest returns e = LE(Hash256(message)) mod N.
func (s *Scheme) digest(message []byte) modring.Element {
	return s.curve.Order.FromBytes(shake.Hash256(message))
}

func inRange(v, n bigint.Int) bool {
	return !v.IsZero() && v.Cmp(n) < 0
}
