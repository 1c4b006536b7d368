// Package commitment binds a party to a value before it is revealed, so an
// exchange partner cannot pick its own key after seeing ours.
package commitment

import (
	"crypto/subtle"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/shake"
)

// SaltSize is the length of the decommitment salt.
const SaltSize = 32

// Commitment represents the output of a commitment scheme.
// C = SHAKE256-256(salt || parts)
type Commitment struct {
	C []byte // The commitment value (hash)
	D []byte // The decommitment value (salt)
}

// New commits to parts using a salt drawn from rand. Each part is length
// prefixed, so moving bytes between parts changes the commitment.
func New(rand io.Reader, parts ...[]byte) (*Commitment, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand, salt); err != nil {
		return nil, errors.Wrap(err, "commitment: salt")
	}
	return &Commitment{
		C: digest(salt, parts),
		D: salt,
	}, nil
}

// Verify checks commitment c against the salt d and the revealed parts.
func Verify(c, d []byte, parts ...[]byte) bool {
	if len(c) != 32 || len(d) != SaltSize {
		return false
	}
	return subtle.ConstantTimeCompare(digest(d, parts), c) == 1
}

func digest(salt []byte, parts [][]byte) []byte {
	h := shake.New()
	h.Write(salt)
	var n [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(n[:], uint64(len(p)))
		h.Write(n[:])
		h.Write(p)
	}
	return h.Sum(nil, 32)
}
