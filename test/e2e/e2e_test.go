package e2e

import (
	"bytes"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-cryptcore/internal/crypto/commitment"
	"github.com/smallyu/go-cryptcore/internal/crypto/ecdsa"
	"github.com/smallyu/go-cryptcore/internal/crypto/entropy"
	"github.com/smallyu/go-cryptcore/internal/crypto/keyexchange"
	"github.com/smallyu/go-cryptcore/internal/crypto/shake"
	"github.com/smallyu/go-cryptcore/internal/crypto/zk/schnorr"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

func TestAuthenticatedHandshake(t *testing.T) {
	params := cryptcore.DefaultParameters()
	if err := params.Validate(); err != nil {
		t.Fatal(err)
	}
	scheme, err := keyexchange.Lookup(params.Curve)
	if err != nil {
		t.Fatal(err)
	}
	signScheme, err := ecdsa.ForName(params.Curve)
	if err != nil {
		t.Fatal(err)
	}
	var signer cryptcore.Signer = signScheme.Signer()
	var hasher cryptcore.Hasher = shake.Hasher{}

	// 1. Each party has a long-term signing key and an ephemeral exchange key
	type party struct {
		kex     cryptcore.KeyAgreement
		signKey []byte
		signPub []byte
	}
	parties := make([]party, 2)
	for i := range parties {
		k, err := signScheme.Curve().RandomScalar(entropy.Default())
		if err != nil {
			t.Fatalf("Party %d failed to generate signing key: %v", i, err)
		}
		pub, err := signer.MakePublicKey(k.Value().Bytes())
		if err != nil {
			t.Fatalf("Party %d failed to derive public key: %v", i, err)
		}
		kex, err := keyexchange.NewKeyManager(scheme)
		if err != nil {
			t.Fatalf("Party %d failed to generate exchange key: %v", i, err)
		}
		parties[i] = party{kex: kex, signKey: k.Value().Bytes(), signPub: pub}
	}

	// 2. Public values are committed to, then signed and revealed
	pubs := make([][]byte, 2)
	sigs := make([][]byte, 2)
	comms := make([]*commitment.Commitment, 2)
	for i, p := range parties {
		pubs[i], err = p.kex.PublicKey()
		if err != nil {
			t.Fatalf("PublicKey failed: %v", err)
		}
		comms[i], err = commitment.New(entropy.Default(), pubs[i], p.signPub)
		if err != nil {
			t.Fatalf("Commit failed: %v", err)
		}
		sigs[i], err = signer.Sign(p.signKey, pubs[i])
		if err != nil {
			t.Fatalf("Sign failed: %v", err)
		}
	}

	// 3. Each side checks the other's signature and derives the key
	transcript := hasher.Hash256(bytes.Join(pubs, nil))
	keys := make([][]byte, 2)
	for i, p := range parties {
		j := 1 - i
		if !commitment.Verify(comms[j].C, comms[j].D, pubs[j], parties[j].signPub) {
			t.Fatalf("Party %d's reveal does not match its commitment", j)
		}
		ok, err := signer.Verify(parties[j].signPub, sigs[j], pubs[j])
		if err != nil || !ok {
			t.Fatalf("Party %d rejected party %d: ok=%v err=%v", i, j, ok, err)
		}
		shared, err := p.kex.MakeSharedKey(pubs[j])
		if err != nil {
			t.Fatalf("MakeSharedKey failed: %v", err)
		}
		keys[i] = keyexchange.DeriveKey(shared, transcript, 32)
	}
	if !bytes.Equal(keys[0], keys[1]) {
		t.Errorf("Session keys differ: %x vs %x", keys[0], keys[1])
	}

	// 4. A signature over someone else's value is rejected
	ok, err := signer.Verify(parties[0].signPub, sigs[1], pubs[1])
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("Signature verified under the wrong key")
	}
}

func TestSecp256k1AgainstDecred(t *testing.T) {
	s, err := ecdsa.ForName("secp256k1")
	if err != nil {
		t.Fatal(err)
	}
	rng := shake.NewReader([]byte("decred"))
	for i := 0; i < 4; i++ {
		k, err := s.Curve().RandomScalar(rng)
		if err != nil {
			t.Fatal(err)
		}
		secret := k.Value().Bytes()
		pub, err := s.PublicKeyBytes(secret)
		if err != nil {
			t.Fatal(err)
		}

		priv := secp256k1.PrivKeyFromBytes(reverse(secret))
		want := priv.PubKey().SerializeUncompressed()[1:]
		got := append(reverse(pub[:32]), reverse(pub[32:])...)
		if !bytes.Equal(want, got) {
			t.Fatalf("public key mismatch:\n got %x\nwant %x", got, want)
		}

		// A Schnorr proof binds the same key
		X, err := s.Curve().Unmarshal(pub)
		if err != nil {
			t.Fatal(err)
		}
		proof, err := schnorr.Prove(s.Curve(), k.Value(), X, rng)
		if err != nil {
			t.Fatal(err)
		}
		if !proof.Verify(s.Curve(), X) {
			t.Fatal("Schnorr proof did not verify")
		}
	}
}

func TestDHHandshake(t *testing.T) {
	if testing.Short() {
		t.Skip("full-size modular exponentiation")
	}
	scheme, err := keyexchange.Lookup("modp2048")
	if err != nil {
		t.Fatal(err)
	}
	a, err := keyexchange.NewKeyManager(scheme)
	if err != nil {
		t.Fatal(err)
	}
	b, err := keyexchange.NewKeyManager(scheme)
	if err != nil {
		t.Fatal(err)
	}
	pa, _ := a.PublicKey()
	pb, _ := b.PublicKey()
	sa, err := a.MakeSharedKey(pb)
	if err != nil {
		t.Fatal(err)
	}
	sb, err := b.MakeSharedKey(pa)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(sa, sb) {
		t.Error("DH shared secrets differ")
	}
}
