package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/internal/crypto/curves"
	"github.com/smallyu/go-cryptcore/internal/crypto/ecdsa"
	"github.com/smallyu/go-cryptcore/internal/crypto/entropy"
	"github.com/smallyu/go-cryptcore/internal/crypto/keyexchange"
	"github.com/smallyu/go-cryptcore/internal/crypto/shake"
)

var errInvalidSignature = errors.New("signature is not valid")

// message returns the first argument, or stdin when there is none.
func message(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errors.Wrap(err, "read message from stdin")
	}
	return b, nil
}

func decodeHex(flag, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", flag)
	}
	return b, nil
}

func (a *app) scheme() (*ecdsa.Scheme, error) {
	return ecdsa.ForName(a.params.Curve)
}

func (a *app) hashCmd() *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "hash [message]",
		Short: "SHAKE256 digest of a message or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if length <= 0 {
				return errors.Errorf("--length must be positive, got %d", length)
			}
			msg, err := message(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(shake.HashN(msg, length)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 32, "output length in bytes")
	return cmd
}

func (a *app) keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an ECDSA key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scheme()
			if err != nil {
				return err
			}
			k, err := s.Curve().RandomScalar(entropy.Default())
			if err != nil {
				return err
			}
			secret := k.Value().Bytes()
			pub, err := s.PublicKeyBytes(secret)
			if err != nil {
				return err
			}
			a.logger.Debug("generated key pair", zap.String("curve", s.Curve().Name))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "secret: %s\n", hex.EncodeToString(secret))
			fmt.Fprintf(out, "public: %s\n", hex.EncodeToString(pub))
			return nil
		},
	}
}

func (a *app) signCmd() *cobra.Command {
	var secretHex string
	cmd := &cobra.Command{
		Use:   "sign [message]",
		Short: "Sign a message or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scheme()
			if err != nil {
				return err
			}
			secret, err := decodeHex("secret", secretHex)
			if err != nil {
				return err
			}
			msg, err := message(cmd, args)
			if err != nil {
				return err
			}
			sig, err := s.SignBytes(secret, msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sig))
			return nil
		},
	}
	cmd.Flags().StringVar(&secretHex, "secret", "", "secret key, hex")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	var pubHex, sigHex string
	cmd := &cobra.Command{
		Use:   "verify [message]",
		Short: "Verify a signature over a message or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scheme()
			if err != nil {
				return err
			}
			pub, err := decodeHex("pub", pubHex)
			if err != nil {
				return err
			}
			sig, err := decodeHex("sig", sigHex)
			if err != nil {
				return err
			}
			msg, err := message(cmd, args)
			if err != nil {
				return err
			}
			ok, err := s.VerifyBytes(pub, sig, msg)
			if err != nil {
				return err
			}
			if !ok {
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubHex, "pub", "", "public key x || y, hex")
	cmd.Flags().StringVar(&sigHex, "sig", "", "signature r || s, hex")
	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}

func (a *app) kexCmd() *cobra.Command {
	var (
		useDH     bool
		secretHex string
		peerHex   string
		info      string
		keyLen    int
	)
	cmd := &cobra.Command{
		Use:   "kex",
		Short: "One side of an ECDH (or --dh) key exchange",
		Long: `Without --secret a fresh secret is generated and printed. With --peer the
shared secret is printed, followed by a derived key when --key-len is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.params.Curve
			if useDH {
				name = a.params.DHGroup
			}
			scheme, err := keyexchange.Lookup(name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var m *keyexchange.KeyManager
			if secretHex == "" {
				m, err = keyexchange.NewKeyManager(scheme, keyexchange.WithLogger(a.logger))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "secret: %s\n", hex.EncodeToString(m.Secret().Bytes()))
			} else {
				b, err := decodeHex("secret", secretHex)
				if err != nil {
					return err
				}
				words := scheme.SecretBound().Words()
				if len(b) > words*8 {
					return errors.Errorf("--secret is longer than %d bytes", words*8)
				}
				m, err = keyexchange.NewKeyManagerFromSecret(scheme, bigint.FromBytes(words, b), keyexchange.WithLogger(a.logger))
				if err != nil {
					return err
				}
			}

			pub, err := m.PublicKey()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "public: %s\n", hex.EncodeToString(pub))
			if peerHex == "" {
				return nil
			}

			peer, err := decodeHex("peer", peerHex)
			if err != nil {
				return err
			}
			shared, err := m.MakeSharedKey(peer)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "shared: %s\n", hex.EncodeToString(shared))
			if keyLen > 0 {
				key := keyexchange.DeriveKey(shared, []byte(info), keyLen)
				fmt.Fprintf(out, "key: %s\n", hex.EncodeToString(key))
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&useDH, "dh", false, "use the finite-field DH group instead of the curve")
	flags.StringVar(&secretHex, "secret", "", "existing secret, hex")
	flags.StringVar(&peerHex, "peer", "", "peer public value, hex")
	flags.StringVar(&info, "info", "", "context string for the derived key")
	flags.IntVar(&keyLen, "key-len", 0, "derived key length in bytes")
	return cmd
}

func curvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "List the registered curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range curves.Names() {
				c, err := curves.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-10s %4d-bit field, %4d-bit order\n",
					name, c.Field.Modulus().BitLen(), c.N().BitLen())
			}
			return nil
		},
	}
}
