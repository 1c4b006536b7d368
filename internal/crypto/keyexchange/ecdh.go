package keyexchange

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/internal/crypto/curves"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// ECDH exchanges x coordinates on a registry curve. The peer's y is
// recovered with a square root, and either root yields the same shared x.
type ECDH struct {
	curve *curves.Curve
}

// NewECDH returns the scheme for c.
func NewECDH(c *curves.Curve) *ECDH {
	return &ECDH{curve: c}
}

// Curve returns the underlying curve.
func (e *ECDH) Curve() *curves.Curve { return e.curve }

// Name implements Scheme.
func (e *ECDH) Name() string { return e.curve.Name }

// SecretBound implements Scheme. Secrets lie in (2, N).
func (e *ECDH) SecretBound() bigint.Int { return e.curve.N() }

// ByteLen returns the encoded size of public and shared values.
func (e *ECDH) ByteLen() int { return e.curve.ByteLen() }

// PublicKey returns x([secret]G).
func (e *ECDH) PublicKey(secret bigint.Int) ([]byte, error) {
	p, err := e.curve.ScalarBaseMult(secret)
	if err != nil {
		return nil, errors.WithMessage(err, "keyexchange: ecdh public key")
	}
	if p.IsInfinity() {
		return nil, errors.Wrap(cryptcore.ErrDegenerateSignature, "keyexchange: secret is 0 mod N")
	}
	return p.X().Bytes(), nil
}

// SharedKey returns x([secret]Q) where Q is rebuilt from the peer's x.
func (e *ECDH) SharedKey(secret bigint.Int, peer []byte) ([]byte, error) {
	q, err := e.curve.DecompressX(peer)
	if err != nil {
		return nil, errors.WithMessage(err, "keyexchange: ecdh peer")
	}
	s, err := e.curve.ScalarMult(q, secret)
	if err != nil {
		return nil, errors.WithMessage(err, "keyexchange: ecdh shared key")
	}
	if s.IsInfinity() {
		return nil, errors.Wrapf(cryptcore.ErrInvalidPublicKey, "keyexchange: %s shared point is infinity", e.curve.Name)
	}
	return s.X().Bytes(), nil
}
