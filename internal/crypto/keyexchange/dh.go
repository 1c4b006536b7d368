package keyexchange

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/internal/crypto/modring"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// RFC 3526 group 15.
const modp3072Hex = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
	"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
	"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
	"E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
	"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3D" +
	"C2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F" +
	"83655D23DCA3AD961C62F356208552BB9ED529077096966D" +
	"670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
	"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9" +
	"DE2BCBF6955817183995497CEA956AE515D2261898FA0510" +
	"15728E5A8AAAC42DAD33170D04507A33A85521ABDF1CBA64" +
	"ECFB850458DBEF0A8AEA71575D060C7DB3970F85A6E1E4C7" +
	"ABF5AE8CDB0933D71E8C94E04A25619DCEE3D2261AD2EE6B" +
	"F12FFA06D98A0864D87602733EC86A64521F2B18177B200C" +
	"BBE117577A615D6C770988C0BAD946E208E24FA074E5AB31" +
	"43DB5BFCE0FD108E4B82D120A93AD2CAFFFFFFFFFFFFFFFF"

// RFC 3526 group 14. The generator is the one existing peers use, not 2.
const (
	modp2048Hex = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
		"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
		"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
		"E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
		"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3D" +
		"C2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F" +
		"83655D23DCA3AD961C62F356208552BB9ED529077096966D" +
		"670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
		"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9" +
		"DE2BCBF6955817183995497CEA956AE515D2261898FA0510" +
		"15728E5A8AACAA68FFFFFFFFFFFFFFFF"
	modp2048Gen = "80000001F000000F80000001F0000001"
)

// DH is finite-field Diffie-Hellman in a fixed MODP group.
type DH struct {
	name string
	ring *modring.Ring
	g    modring.Element
}

var groups = map[string]*DH{}

func init() {
	registerGroup("modp3072", 48, modp3072Hex, "2")
	registerGroup("modp2048", 32, modp2048Hex, modp2048Gen)
}

func registerGroup(name string, words int, prime, gen string) {
	groups[name] = newGroup(name, words, prime, gen)
}

func newGroup(name string, words int, prime, gen string) *DH {
	ring := modring.MustNew(bigint.MustParse(words, false, prime, 16))
	return &DH{name: name, ring: ring, g: ring.MustParse(gen, 16)}
}

// DHGroup returns the named MODP group.
func DHGroup(name string) (*DH, error) {
	g, ok := groups[name]
	if !ok {
		return nil, errors.Errorf("keyexchange: unknown DH group %q", name)
	}
	return g, nil
}

// Name implements Scheme.
func (d *DH) Name() string { return d.name }

// Prime returns the group modulus p.
func (d *DH) Prime() bigint.Int { return d.ring.Modulus() }

// Generator returns the group generator.
func (d *DH) Generator() bigint.Int { return d.g.Value() }

// SecretBound implements Scheme. Secrets lie in (2, p).
func (d *DH) SecretBound() bigint.Int { return d.ring.Modulus() }

// PublicKey returns g^secret mod p as ByteLen little-endian bytes.
func (d *DH) PublicKey(secret bigint.Int) ([]byte, error) {
	return d.g.Pow(secret).Bytes(), nil
}

// SharedKey returns peer^secret mod p. The peer value must be exactly
// ByteLen bytes and lie in [2, p-2].
func (d *DH) SharedKey(secret bigint.Int, peer []byte) ([]byte, error) {
	if len(peer) != d.ring.ByteLen() {
		return nil, errors.Wrapf(cryptcore.ErrInvalidSignatureEncoding,
			"keyexchange: %s public key is %d bytes, got %d", d.name, d.ring.ByteLen(), len(peer))
	}
	words := d.ring.Words()
	v := bigint.FromBytes(words, peer)
	top := d.ring.Modulus().Sub(bigint.FromUint64(words, 2))
	if v.Cmp(bigint.FromUint64(words, 2)) < 0 || v.Cmp(top) > 0 {
		return nil, errors.Wrapf(cryptcore.ErrInvalidPublicKey, "keyexchange: %s public key out of range", d.name)
	}
	return d.ring.FromInt(v).Pow(secret).Bytes(), nil
}

// ByteLen returns the encoded size of public and shared values.
func (d *DH) ByteLen() int { return d.ring.ByteLen() }
