package ecdsa

import (
	"fmt"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// Bytes returns r || s, each words*8 little-endian bytes.
func (sig Signature) Bytes() []byte {
	out := make([]byte, 0, 2*sig.R.Words()*8)
	out = append(out, sig.R.Bytes()...)
	return append(out, sig.S.Bytes()...)
}

// ParseSignature splits r || s for the scheme's curve. Only the length is
// checked; range checks happen in Verify.
func (s *Scheme) ParseSignature(b []byte) (Signature, error) {
	n := s.curve.ByteLen()
	if len(b) != 2*n {
		return Signature{}, cryptcore.NewOpError("ecdsa.ParseSignature",
			fmt.Sprintf("%s signature is %d bytes, got %d", s.curve.Name, 2*n, len(b)),
			cryptcore.ErrInvalidSignatureEncoding)
	}
	return Signature{
		R: bigint.FromBytes(s.curve.Words, b[:n]),
		S: bigint.FromBytes(s.curve.Words, b[n:]),
	}, nil
}

func (s *Scheme) parseSecret(op string, secret []byte) (bigint.Int, error) {
	if len(secret) != s.curve.ByteLen() {
		return bigint.Int{}, cryptcore.NewOpError(op,
			fmt.Sprintf("%s secret is %d bytes, got %d", s.curve.Name, s.curve.ByteLen(), len(secret)),
			cryptcore.ErrInvalidSignatureEncoding)
	}
	return bigint.FromBytes(s.curve.Words, secret), nil
}

// PublicKeyBytes returns x || y of [secret]G for a little-endian secret of
// exactly W*8 bytes.
func (s *Scheme) PublicKeyBytes(secret []byte) ([]byte, error) {
	d, err := s.parseSecret("ecdsa.PublicKeyBytes", secret)
	if err != nil {
		return nil, err
	}
	q, err := s.MakePublicKey(d)
	if err != nil {
		return nil, err
	}
	return s.curve.Marshal(q), nil
}

// SignBytes signs message with a little-endian secret of exactly W*8 bytes
// and returns r || s.
func (s *Scheme) SignBytes(secret, message []byte) ([]byte, error) {
	d, err := s.parseSecret("ecdsa.SignBytes", secret)
	if err != nil {
		return nil, err
	}
	sig, err := s.Sign(d, message)
	if err != nil {
		return nil, err
	}
	return sig.Bytes(), nil
}

// VerifyBytes checks an r || s signature against an x || y public key.
// Wrong input lengths fail with ErrInvalidSignatureEncoding; a well-formed
// but invalid key or signature returns false with no error.
func (s *Scheme) VerifyBytes(pub, sig, message []byte) (bool, error) {
	if len(pub) != 2*s.curve.ByteLen() {
		return false, cryptcore.NewOpError("ecdsa.VerifyBytes",
			fmt.Sprintf("%s public key is %d bytes, got %d", s.curve.Name, 2*s.curve.ByteLen(), len(pub)),
			cryptcore.ErrInvalidSignatureEncoding)
	}
	parsed, err := s.ParseSignature(sig)
	if err != nil {
		return false, err
	}
	q, err := s.curve.Unmarshal(pub)
	if err != nil {
		return false, nil
	}
	return s.Verify(q, parsed, message), nil
}

// Signer adapts the scheme to the byte-level cryptcore.Signer interface.
func (s *Scheme) Signer() cryptcore.Signer {
	return byteSigner{s}
}

type byteSigner struct {
	s *Scheme
}

func (b byteSigner) MakePublicKey(secret []byte) ([]byte, error) {
	return b.s.PublicKeyBytes(secret)
}

func (b byteSigner) Sign(secret, message []byte) ([]byte, error) {
	return b.s.SignBytes(secret, message)
}

func (b byteSigner) Verify(pub, sig, message []byte) (bool, error) {
	return b.s.VerifyBytes(pub, sig, message)
}
