//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-cryptcore/internal/crypto/ecdsa"
	"github.com/smallyu/go-cryptcore/internal/crypto/entropy"
	"github.com/smallyu/go-cryptcore/internal/crypto/keyexchange"
	"github.com/smallyu/go-cryptcore/internal/crypto/shake"
)

// Global map to store pending key exchanges
// Key: Session ID (string)
var sessions = make(map[string]*keyexchange.KeyManager)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go cryptcore WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoCryptcore", map[string]interface{}{
		"Hash256":     js.FuncOf(Hash256),
		"KeyPair":     js.FuncOf(KeyPair),
		"Sign":        js.FuncOf(Sign),
		"Verify":      js.FuncOf(Verify),
		"NewExchange": js.FuncOf(NewExchange),
		"SharedKey":   js.FuncOf(SharedKey),
	})

	<-c
}

// Hash256 returns the hex SHAKE256 digest of a string.
// Arguments:
// 0: message (string)
func Hash256(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (message)"
	}
	return hex.EncodeToString(shake.Hash256([]byte(args[0].String())))
}

// KeyPair generates an ECDSA key pair.
// Arguments:
// 0: curve name (string)
// Returns:
// JSON { secret, public } with hex values
func KeyPair(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (curve)"
	}
	s, err := ecdsa.ForName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, err := s.Curve().RandomScalar(entropy.Default())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	secret := k.Value().Bytes()
	pub, err := s.PublicKeyBytes(secret)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshal(map[string]string{
		"secret": hex.EncodeToString(secret),
		"public": hex.EncodeToString(pub),
	})
}

// Sign signs a message.
// Arguments:
// 0: curve name (string)
// 1: secret (hex)
// 2: message (string)
// Returns:
// signature r || s (hex) or error string
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, secretHex, message)"
	}
	s, err := ecdsa.ForName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	secret, err := hex.DecodeString(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex secret: %v", err)
	}
	sig, err := s.SignBytes(secret, []byte(args[2].String()))
	if err != nil {
		return fmt.Sprintf("error: sign failed: %v", err)
	}
	return hex.EncodeToString(sig)
}

// Verify checks a signature.
// Arguments:
// 0: curve name (string)
// 1: public key x || y (hex)
// 2: signature r || s (hex)
// 3: message (string)
// Returns:
// bool or error string
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 4 {
		return "error: expected 4 arguments (curve, pubHex, sigHex, message)"
	}
	s, err := ecdsa.ForName(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	pub, err := hex.DecodeString(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex public key: %v", err)
	}
	sig, err := hex.DecodeString(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex signature: %v", err)
	}
	ok, err := s.VerifyBytes(pub, sig, []byte(args[3].String()))
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return ok
}

// NewExchange starts one side of an ECDH or DH exchange.
// Arguments:
// 0: curve or DH group name (string)
// Returns:
// JSON { sessionID, public }
func NewExchange(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (scheme)"
	}
	scheme, err := keyexchange.Lookup(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	m, err := keyexchange.NewKeyManager(scheme)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	pub, err := m.PublicKey()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	id, err := entropy.Default().NextBytes(16)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	sessionID := hex.EncodeToString(id)
	sessions[sessionID] = m

	return marshal(map[string]string{
		"sessionID": sessionID,
		"public":    hex.EncodeToString(pub),
	})
}

// SharedKey completes an exchange and forgets the session.
// Arguments:
// 0: Session ID (string)
// 1: peer public value (hex)
// Returns:
// shared secret (hex) or error string
func SharedKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (sessionID, peerHex)"
	}
	sessionID := args[0].String()
	m, ok := sessions[sessionID]
	if !ok {
		return "error: session not found"
	}
	peer, err := hex.DecodeString(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex peer: %v", err)
	}
	shared, err := m.MakeSharedKey(peer)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	delete(sessions, sessionID)
	return hex.EncodeToString(shared)
}

func marshal(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}
