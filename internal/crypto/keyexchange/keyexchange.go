// Package keyexchange implements Diffie-Hellman over MODP groups and
// x-only ECDH over the registry curves, plus the KeyManager that holds one
// party's secret.
package keyexchange

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/internal/crypto/curves"
	"github.com/smallyu/go-cryptcore/internal/crypto/shake"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// Scheme derives public values and shared secrets from a secret scalar.
type Scheme interface {
	Name() string

	// SecretBound is the exclusive upper bound for secrets.
	SecretBound() bigint.Int

	// ByteLen is the size of public and shared values.
	ByteLen() int

	PublicKey(secret bigint.Int) ([]byte, error)
	SharedKey(secret bigint.Int, peer []byte) ([]byte, error)
}

var (
	_ Scheme = (*DH)(nil)
	_ Scheme = (*ECDH)(nil)
)

// Lookup resolves name as a DH group first and a curve second.
func Lookup(name string) (Scheme, error) {
	if g, ok := groups[name]; ok {
		return g, nil
	}
	c, err := curves.Lookup(name)
	if err != nil {
		return nil, errors.Wrapf(cryptcore.ErrUnknownCurve, "keyexchange: no DH group or curve named %q", name)
	}
	return NewECDH(c), nil
}

// DeriveKey stretches a shared secret into n bytes of key material bound to
// info: SHAKE256(shared || info) truncated to n.
func DeriveKey(shared, info []byte, n int) []byte {
	buf := make([]byte, 0, len(shared)+len(info))
	buf = append(buf, shared...)
	buf = append(buf, info...)
	return shake.HashN(buf, n)
}
