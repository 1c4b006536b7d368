package keyexchange

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/internal/crypto/entropy"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// KeyManager holds one party's secret for a scheme.
type KeyManager struct {
	scheme Scheme
	secret bigint.Int
	logger *zap.Logger
	rand   io.Reader
}

var _ cryptcore.KeyAgreement = (*KeyManager)(nil)

// Option configures a KeyManager.
type Option func(*KeyManager)

// WithLogger sets the logger. Secrets are never logged.
func WithLogger(l *zap.Logger) Option {
	return func(m *KeyManager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRand sets the source the secret is drawn from. The default is
// entropy.Default().
func WithRand(r io.Reader) Option {
	return func(m *KeyManager) {
		if r != nil {
			m.rand = r
		}
	}
}

// NewKeyManager draws a fresh secret for scheme.
func NewKeyManager(scheme Scheme, opts ...Option) (*KeyManager, error) {
	m := newManager(scheme, opts)
	secret, draws, err := generateSecret(m.rand, scheme.SecretBound())
	if err != nil {
		return nil, errors.WithMessagef(err, "keyexchange: %s", scheme.Name())
	}
	m.secret = secret
	m.logger.Debug("generated key exchange secret",
		zap.String("scheme", scheme.Name()),
		zap.Int("draws", draws))
	return m, nil
}

// NewKeyManagerFromSecret wraps an existing secret, which must lie in the
// same range NewKeyManager draws from.
func NewKeyManagerFromSecret(scheme Scheme, secret bigint.Int, opts ...Option) (*KeyManager, error) {
	bound := scheme.SecretBound()
	s := secret.AsUnsigned().Resize(bound.Words())
	if s.Cmp(bigint.FromUint64(bound.Words(), minSecret)) <= 0 || s.Cmp(bound) >= 0 {
		return nil, errors.Errorf("keyexchange: %s secret out of range", scheme.Name())
	}
	m := newManager(scheme, opts)
	m.secret = s
	m.logger.Debug("loaded key exchange secret", zap.String("scheme", scheme.Name()))
	return m, nil
}

func newManager(scheme Scheme, opts []Option) *KeyManager {
	m := &KeyManager{
		scheme: scheme,
		logger: zap.NewNop(),
		rand:   entropy.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Scheme returns the manager's scheme.
func (m *KeyManager) Scheme() Scheme { return m.scheme }

// Secret returns the secret scalar.
func (m *KeyManager) Secret() bigint.Int { return m.secret }

// PublicKey returns the value to send to the peer.
func (m *KeyManager) PublicKey() ([]byte, error) {
	return m.scheme.PublicKey(m.secret)
}

// MakeSharedKey combines the peer's public value with the secret.
func (m *KeyManager) MakeSharedKey(peer []byte) ([]byte, error) {
	shared, err := m.scheme.SharedKey(m.secret, peer)
	if err != nil {
		m.logger.Debug("rejected peer public key",
			zap.String("scheme", m.scheme.Name()),
			zap.Int("len", len(peer)),
			zap.Error(err))
		return nil, err
	}
	return shared, nil
}
