// Command cryptcore exposes the crypto core on the command line: SHAKE256
// digests, ECDSA keys and signatures, and DH/ECDH key agreement.
//
// Integers on the wire are little-endian and hex encoded.
package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

const envPrefix = "CRYPTCORE"

// app carries the configuration shared by all subcommands.
type app struct {
	v      *viper.Viper
	params *cryptcore.Parameters
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	// For environment variables.
	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	root := &cobra.Command{
		Use:               "cryptcore",
		Short:             "Hash, sign, verify and agree on keys",
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
		PersistentPostRun: func(cmd *cobra.Command, args []string) { _ = a.logger.Sync() },
	}

	flags := root.PersistentFlags()
	flags.String("curve", cryptcore.DefaultCurve, "curve for ECDSA and ECDH")
	flags.String("dh-group", cryptcore.DefaultDHGroup, "MODP group for finite-field DH")
	flags.BoolP("verbose", "v", false, "debug logging to stderr")
	for _, name := range []string{"curve", "dh-group", "verbose"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		a.hashCmd(),
		a.keygenCmd(),
		a.signCmd(),
		a.verifyCmd(),
		a.kexCmd(),
		curvesCmd(),
	)
	return root
}

func (a *app) setup() error {
	a.params = &cryptcore.Parameters{
		Curve:   a.v.GetString("curve"),
		DHGroup: a.v.GetString("dh-group"),
	}
	if err := a.params.Validate(); err != nil {
		return err
	}

	var (
		logger *zap.Logger
		err    error
	)
	if a.v.GetBool("verbose") {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err = cfg.Build()
	}
	if err != nil {
		return errors.Wrap(err, "cryptcore: build logger")
	}
	a.logger = logger.Named("cryptcore")
	a.logger.Debug("configuration",
		zap.String("curve", a.params.Curve),
		zap.String("dh-group", a.params.DHGroup))
	return nil
}

func main() {
	// On failure Cobra prints the error string, so we only need to exit
	// with a non-0 status
	if newRootCmd().Execute() != nil {
		os.Exit(1)
	}
}
