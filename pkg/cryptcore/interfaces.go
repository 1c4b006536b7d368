package cryptcore

import "github.com/pkg/errors"

// Default configuration values.
const (
	DefaultCurve   = "secp256r1"
	DefaultDHGroup = "modp3072"
)

// Hasher produces SHAKE256 digests.
type Hasher interface {
	// Hash256 returns the 32-byte digest of msg.
	Hash256(msg []byte) []byte

	// HashN returns n bytes of output for msg; n <= 0 gives an empty slice.
	HashN(msg []byte, n int) []byte
}

// Signer is the byte-level ECDSA surface consumed by the transport layer.
// All integers are little-endian fixed-width word dumps.
type Signer interface {
	// MakePublicKey returns x || y of secret * G.
	MakePublicKey(secret []byte) ([]byte, error)

	// Sign returns r || s for message.
	Sign(secret, message []byte) ([]byte, error)

	// Verify reports whether sig is a valid signature of message under pub.
	// Malformed input lengths return ErrInvalidSignatureEncoding.
	Verify(pub, sig, message []byte) (bool, error)
}

// KeyAgreement is one party's side of a DH or ECDH exchange.
type KeyAgreement interface {
	// PublicKey returns the value to send to the peer.
	PublicKey() ([]byte, error)

	// MakeSharedKey derives the shared secret from the peer's public key.
	MakeSharedKey(peer []byte) ([]byte, error)
}

// Parameters holds the configuration for a crypto session.
type Parameters struct {
	Curve   string // Registry name of the ECDSA/ECDH curve (e.g. "secp256r1")
	DHGroup string // Finite-field DH group name (e.g. "modp3072")
}

// DefaultParameters returns the parameters used when nothing is configured.
func DefaultParameters() *Parameters {
	return &Parameters{
		Curve:   DefaultCurve,
		DHGroup: DefaultDHGroup,
	}
}

// Validate checks that the parameters name something. Whether the names
// exist is decided by the registries that consume them.
func (p *Parameters) Validate() error {
	if p == nil {
		return errors.New("cryptcore: nil parameters")
	}
	if p.Curve == "" {
		return errors.Wrap(ErrUnknownCurve, "cryptcore: empty curve name")
	}
	if p.DHGroup == "" {
		return errors.New("cryptcore: empty DH group name")
	}
	return nil
}
