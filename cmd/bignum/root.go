package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/calebcase/bignum/bigmath"
	"github.com/calebcase/bignum/config"
	"github.com/calebcase/bignum/decimal"
	"github.com/calebcase/bignum/logging"
	"github.com/calebcase/bignum/numeral"
)

// Error is the class of command line errors.
var Error = errs.Class("bignum")

// app holds the components built from the loaded configuration.
type app struct {
	cfg  *config.Config
	log  *slog.Logger
	conv *numeral.Converter
	ctx  *decimal.Context
	math bigmath.Math
}

func newApp(cfg *config.Config, log *slog.Logger) (_ *app, err error) {
	defer Error.WrapP(&err)

	registry := numeral.NewRegistry(log)

	for name, chars := range cfg.Numeral.Systems {
		err = registry.Register(numeral.Base(name), chars)
		if err != nil {
			return nil, err
		}
	}

	for _, sys := range cfg.Numeral.Named {
		err = registry.Register(numeral.Base(sys.Name), sys.Chars)
		if err != nil {
			return nil, err
		}
	}

	conv := numeral.NewConverter(
		numeral.WithRegistry(registry),
		numeral.WithNative(cfg.Numeral.Native),
		numeral.WithAccelerated(cfg.Numeral.Accelerated),
		numeral.WithLogger(log),
	)

	ctx := decimal.NewContext(
		decimal.WithScale(cfg.Decimal.Scale),
		decimal.WithFloorProbe(cfg.Decimal.FloorProbe),
		decimal.WithConverter(conv),
		decimal.WithLogger(log),
	)

	m, err := bigmath.Select(bigmath.Strategy(cfg.BigMath.Strategy),
		bigmath.WithConverter(conv),
		bigmath.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:  cfg,
		log:  log,
		conv: conv,
		ctx:  ctx,
		math: m,
	}, nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var configPath string

	root := &cobra.Command{
		Use:          "bignum",
		Short:        "Arbitrary precision decimals and numeral system conversion.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}

			log := logging.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())

			built, err := newApp(cfg, log)
			if err != nil {
				return err
			}

			*a = *built

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./bignum.yaml when present)")
	flags.Int("scale", decimal.DefaultScale, "fractional digits kept by decimal operations")
	flags.Int("floor-probe", decimal.DefaultFloorProbe, "fractional digits inspected by floor and ceil")
	flags.String("strategy", string(bigmath.Auto), "integer backend: auto, decimal, bigint or pure")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: json or text")

	root.AddCommand(
		newConvertCmd(a),
		newCalcCmd(a),
		newIntCmd(a),
		newSystemsCmd(a),
	)

	return root
}
