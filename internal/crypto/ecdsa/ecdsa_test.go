package ecdsa

import (
	stdecdsa "crypto/ecdsa"
	"crypto/elliptic"
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/internal/crypto/shake"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

func randomSecret(rng *rand.Rand, s *Scheme) bigint.Int {
	b := make([]byte, s.Curve().ByteLen())
	rng.Read(b)
	return bigint.FromBytes(s.Curve().Words, b)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	for _, name := range []string{"secp112r1", "secp160k1", "secp192r1", "secp256k1", "secp256r1", "secp384r1"} {
		t.Run(name, func(t *testing.T) {
			s, err := ForName(name)
			require.NoError(t, err)
			rng := rand.New(rand.NewSource(40))

			for i := 0; i < 2; i++ {
				secret := randomSecret(rng, s)
				msg := []byte("message number " + string(rune('a'+i)))

				pub, err := s.MakePublicKey(secret)
				require.NoError(t, err)
				require.True(t, pub.IsOnCurve())

				sig, err := s.Sign(secret, msg)
				require.NoError(t, err)
				assert.True(t, s.Verify(pub, sig, msg))

				tampered := append([]byte(nil), msg...)
				tampered[0] ^= 0x01
				assert.False(t, s.Verify(pub, sig, tampered), "tampered message verified")

				bad := sig
				bad.S = bad.S.Add(bigint.FromUint64(1, 1))
				assert.False(t, s.Verify(pub, bad, msg), "tampered s verified")
			}
		})
	}
}

func TestSignIsDeterministic(t *testing.T) {
	s, err := ForName(cryptcore.DefaultCurve)
	require.NoError(t, err)
	secret := bigint.FromUint64(4, 0x1234567890)

	a, err := s.Sign(secret, []byte("hello"))
	require.NoError(t, err)
	b, err := s.Sign(secret, []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())

	c, err := s.Sign(secret, []byte("hello!"))
	require.NoError(t, err)
	assert.NotEqual(t, a.R, c.R, "different messages must use different nonces")
}

func TestNonceDerivation(t *testing.T) {
	s, err := ForName("secp256k1")
	require.NoError(t, err)
	c := s.Curve()
	secret := bigint.FromUint64(4, 42)
	msg := []byte("nonce check")

	sig, err := s.Sign(secret, msg)
	require.NoError(t, err)

	d := c.Order.FromInt(secret)
	seed := shake.HashN(d.Bytes(), 64)[32:]
	k := c.Order.FromBytes(shake.Hash256(append(append([]byte(nil), seed...), msg...)))
	kg, err := c.ScalarBaseMult(k.Value())
	require.NoError(t, err)
	assert.True(t, c.Order.FromInt(kg.X().Value()).Value().Equal(sig.R))
}

func TestMatchesStdlibVerifier(t *testing.T) {
	s, err := ForName("secp256r1")
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(41))

	for i := 0; i < 3; i++ {
		secret := randomSecret(rng, s)
		msg := []byte{byte(i), 1, 2, 3}
		pub, err := s.MakePublicKey(secret)
		require.NoError(t, err)
		sig, err := s.Sign(secret, msg)
		require.NoError(t, err)

		key := &stdecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     new(big.Int).SetBytes(reverse(pub.X().Bytes())),
			Y:     new(big.Int).SetBytes(reverse(pub.Y().Bytes())),
		}
		e := s.Curve().Order.FromBytes(shake.Hash256(msg))
		r := new(big.Int).SetBytes(reverse(sig.R.Bytes()))
		sv := new(big.Int).SetBytes(reverse(sig.S.Bytes()))
		assert.True(t, stdecdsa.Verify(key, reverse(e.Bytes()), r, sv))
	}
}

func TestDegenerateSecret(t *testing.T) {
	s, err := ForName(cryptcore.DefaultCurve)
	require.NoError(t, err)

	_, err = s.Sign(bigint.New(4, false), []byte("x"))
	assert.True(t, errors.Is(err, cryptcore.ErrDegenerateSignature))

	// N itself reduces to zero.
	_, err = s.MakePublicKey(s.Curve().N())
	assert.True(t, errors.Is(err, cryptcore.ErrDegenerateSignature))
}

func TestVerifyRejectsOutOfRange(t *testing.T) {
	s, err := ForName(cryptcore.DefaultCurve)
	require.NoError(t, err)
	secret := bigint.FromUint64(4, 7)
	pub, err := s.MakePublicKey(secret)
	require.NoError(t, err)
	sig, err := s.Sign(secret, []byte("m"))
	require.NoError(t, err)

	n := s.Curve().N()
	assert.False(t, s.Verify(pub, Signature{R: bigint.New(4, false), S: sig.S}, []byte("m")))
	assert.False(t, s.Verify(pub, Signature{R: sig.R, S: n}, []byte("m")))
	// r + N, wrapped or not, is no longer the r that was signed.
	assert.False(t, s.Verify(pub, Signature{R: sig.R.Add(n), S: sig.S}, []byte("m")))

	assert.False(t, s.Verify(s.Curve().Infinity(), sig, []byte("m")))

	other, err := ForName("secp256k1")
	require.NoError(t, err)
	assert.False(t, s.Verify(other.Curve().G, sig, []byte("m")))
}

func TestByteAPI(t *testing.T) {
	s, err := ForName(cryptcore.DefaultCurve)
	require.NoError(t, err)
	var signer cryptcore.Signer = s.Signer()

	secret := make([]byte, 32)
	secret[0] = 9
	pub, err := signer.MakePublicKey(secret)
	require.NoError(t, err)
	require.Len(t, pub, 64)

	msg := []byte("over the wire")
	sig, err := signer.Sign(secret, msg)
	require.NoError(t, err)
	require.Len(t, sig, 64)

	ok, err := signer.Verify(pub, sig, msg)
	require.NoError(t, err)
	assert.True(t, ok)

	for i := range sig {
		flipped := append([]byte(nil), sig...)
		flipped[i] ^= 0x80
		ok, err := signer.Verify(pub, flipped, msg)
		require.NoError(t, err)
		assert.False(t, ok, "flipped byte %d verified", i)
		if i > 4 {
			break
		}
	}

	_, err = signer.Verify(pub, sig[:63], msg)
	assert.True(t, errors.Is(err, cryptcore.ErrInvalidSignatureEncoding))
	var op *cryptcore.OpError
	require.True(t, errors.As(err, &op))
	assert.Equal(t, "ecdsa.ParseSignature", op.Op)

	_, err = signer.Verify(pub[:10], sig, msg)
	assert.True(t, errors.Is(err, cryptcore.ErrInvalidSignatureEncoding))
	_, err = signer.Sign(secret[:31], msg)
	assert.True(t, errors.Is(err, cryptcore.ErrInvalidSignatureEncoding))
	_, err = signer.MakePublicKey(nil)
	assert.True(t, errors.Is(err, cryptcore.ErrInvalidSignatureEncoding))

	// Off-curve key of the right length is simply not valid.
	offCurve := append([]byte(nil), pub...)
	offCurve[0] ^= 1
	ok, err = signer.Verify(offCurve, sig, msg)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEveryFlippedByteFails(t *testing.T) {
	for _, name := range []string{"secp112r1", "secp256k1", "secp256r1"} {
		t.Run(name, func(t *testing.T) {
			s, err := ForName(name)
			require.NoError(t, err)
			secret := shake.HashN([]byte(name), s.Curve().ByteLen())
			secret[len(secret)-1] = 0
			msg := []byte("flip every byte")

			pub, err := s.PublicKeyBytes(secret)
			require.NoError(t, err)
			sig, err := s.SignBytes(secret, msg)
			require.NoError(t, err)
			ok, err := s.VerifyBytes(pub, sig, msg)
			require.NoError(t, err)
			require.True(t, ok)

			for i := range sig {
				for _, bit := range []byte{0x01, 0x80} {
					flipped := append([]byte(nil), sig...)
					flipped[i] ^= bit
					ok, err := s.VerifyBytes(pub, flipped, msg)
					require.NoError(t, err)
					assert.False(t, ok, "byte %d bit %#x verified", i, bit)
				}
			}
		})
	}
}

func FuzzVerifyBytes(f *testing.F) {
	s, err := ForName("secp112r1")
	if err != nil {
		f.Fatal(err)
	}
	secret := make([]byte, 16)
	secret[0] = 3
	pub, err := s.PublicKeyBytes(secret)
	if err != nil {
		f.Fatal(err)
	}
	sig, err := s.SignBytes(secret, []byte("seed"))
	if err != nil {
		f.Fatal(err)
	}
	f.Add(pub, sig, []byte("seed"))
	f.Add([]byte{}, []byte{}, []byte{})
	f.Add(pub[:5], sig, []byte("x"))

	f.Fuzz(func(t *testing.T, pub, sig, msg []byte) {
		ok, err := s.VerifyBytes(pub, sig, msg)
		if err != nil {
			if !errors.Is(err, cryptcore.ErrInvalidSignatureEncoding) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			if ok {
				t.Fatal("verified with an error")
			}
			return
		}
		if len(pub) != 32 || len(sig) != 32 {
			t.Fatalf("accepted lengths pub=%d sig=%d", len(pub), len(sig))
		}
	})
}
