package commitment

import (
	"bytes"
	"testing"

	"github.com/smallyu/go-cryptcore/internal/crypto/entropy"
	"github.com/smallyu/go-cryptcore/internal/crypto/shake"
)

func TestCommitment(t *testing.T) {
	msg := []byte("Hello, peer!")

	// 1. Commit
	comm, err := New(entropy.Default(), msg)
	if err != nil {
		t.Fatalf("Failed to create commitment: %v", err)
	}

	if len(comm.C) != 32 {
		t.Errorf("Expected commitment length 32, got %d", len(comm.C))
	}
	if len(comm.D) != SaltSize {
		t.Errorf("Expected decommitment length %d, got %d", SaltSize, len(comm.D))
	}

	// 2. Verify
	if !Verify(comm.C, comm.D, msg) {
		t.Fatal("Verification failed for valid commitment")
	}
}

func TestCommitmentVerifyFailed(t *testing.T) {
	msg := []byte("Secret Message")
	comm, err := New(entropy.Default(), msg)
	if err != nil {
		t.Fatal(err)
	}

	// Case 1: Wrong message
	if Verify(comm.C, comm.D, []byte("Wrong Message")) {
		t.Fatal("Verification passed for wrong message")
	}

	// Case 2: Wrong salt
	wrongSalt := bytes.Clone(comm.D)
	wrongSalt[0] ^= 0xFF
	if Verify(comm.C, wrongSalt, msg) {
		t.Fatal("Verification passed for wrong salt")
	}

	// Case 3: Wrong commitment
	wrongC := bytes.Clone(comm.C)
	wrongC[0] ^= 0xFF
	if Verify(wrongC, comm.D, msg) {
		t.Fatal("Verification passed for wrong commitment")
	}

	// Case 4: Truncated inputs
	if Verify(comm.C[:31], comm.D, msg) || Verify(comm.C, comm.D[:31], msg) {
		t.Fatal("Verification passed for truncated input")
	}
}

func TestMultiPartCommitment(t *testing.T) {
	comm, err := New(shake.NewReader([]byte("salt")), []byte("ab"), []byte("c"))
	if err != nil {
		t.Fatalf("Failed to create commitment: %v", err)
	}
	if !Verify(comm.C, comm.D, []byte("ab"), []byte("c")) {
		t.Fatal("Multi-part verification failed")
	}
	// Same bytes, different split
	if Verify(comm.C, comm.D, []byte("a"), []byte("bc")) {
		t.Fatal("Verification passed after moving a byte between parts")
	}
	if Verify(comm.C, comm.D, []byte("abc")) {
		t.Fatal("Verification passed for concatenated parts")
	}
}

func TestDeterministicSalt(t *testing.T) {
	a, err := New(shake.NewReader([]byte("seed")), []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(shake.NewReader([]byte("seed")), []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.C, b.C) {
		t.Error("Same salt and message gave different commitments")
	}

	if _, err := New(bytes.NewReader(make([]byte, 5)), []byte("x")); err == nil {
		t.Error("Expected an error from a short salt source")
	}
}
