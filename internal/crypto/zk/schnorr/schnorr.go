package schnorr

import (
	"io"

	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/internal/crypto/curves"
	"github.com/smallyu/go-cryptcore/internal/crypto/modring"
	"github.com/smallyu/go-cryptcore/internal/crypto/shake"
)

// Proof represents a Schnorr proof of knowledge of a discrete logarithm.
// Proves knowledge of x such that X = x * G.
type Proof struct {
	R curves.Affine // Commitment R = k * G
	S bigint.Int    // Response s = k + e * x
}

// Prove generates a proof for the secret x behind X = x*G on curve c. The
// nonce k is drawn from rand.
func Prove(c *curves.Curve, x bigint.Int, X curves.Affine, rand io.Reader) (*Proof, error) {
	if X.Params() != c.Params || X.IsInfinity() {
		return nil, errors.Errorf("schnorr: public key is not a finite %s point", c.Name)
	}
	xs := c.Order.FromInt(x)

	// 1. Generate random nonce k
	k, err := c.RandomScalar(rand)
	if err != nil {
		return nil, errors.WithMessage(err, "schnorr: nonce")
	}

	// 2. Compute R = k * G
	R, err := c.ScalarBaseMult(k.Value())
	if err != nil {
		return nil, errors.WithMessage(err, "schnorr: commitment")
	}

	// 3. Compute challenge e = H(X, R)
	e := challenge(c, X, R)

	// 4. Compute s = k + e * x mod n
	ex, err := e.Mul(xs)
	if err != nil {
		return nil, errors.WithMessage(err, "schnorr: response")
	}
	s, err := k.Add(ex)
	if err != nil {
		return nil, errors.WithMessage(err, "schnorr: response")
	}

	return &Proof{
		R: R,
		S: s.Value(),
	}, nil
}

// Verify checks the proof for public key X on curve c.
func (p *Proof) Verify(c *curves.Curve, X curves.Affine) bool {
	if p == nil || X.Params() != c.Params || p.R.Params() != c.Params {
		return false
	}
	if X.IsInfinity() || !X.IsOnCurve() || !p.R.IsOnCurve() {
		return false
	}

	// Check if s is in [0, n-1]
	if p.S.Cmp(c.N()) >= 0 {
		return false
	}

	// 1. Compute challenge e = H(X, R)
	e := challenge(c, X, p.R)

	// 2. Check s*G = R + e*X
	lhs, err := c.ScalarBaseMult(p.S)
	if err != nil {
		return false
	}
	eX, err := c.ScalarMult(X, e.Value())
	if err != nil {
		return false
	}
	rhs, err := p.R.Add(eX)
	if err != nil {
		return false
	}
	return lhs.Equal(rhs)
}

// Bytes encodes the proof as R (x || y) followed by s.
func (p *Proof) Bytes(c *curves.Curve) []byte {
	out := c.Marshal(p.R)
	return append(out, p.S.Resize(c.Words).Bytes()...)
}

// ParseProof decodes the output of Bytes.
func ParseProof(c *curves.Curve, b []byte) (*Proof, error) {
	n := c.ByteLen()
	if len(b) != 3*n {
		return nil, errors.Errorf("schnorr: %s proof is %d bytes, got %d", c.Name, 3*n, len(b))
	}
	R, err := c.Unmarshal(b[:2*n])
	if err != nil {
		return nil, errors.WithMessage(err, "schnorr: commitment")
	}
	return &Proof{R: R, S: bigint.FromBytes(c.Words, b[2*n:])}, nil
}

// challenge computes LE(SHAKE256-256(X || R)) mod n.
func challenge(c *curves.Curve, X, R curves.Affine) modring.Element {
	buf := c.Marshal(X)
	buf = append(buf, c.Marshal(R)...)
	return c.Order.FromBytes(shake.Hash256(buf))
}
