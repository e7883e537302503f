package cmd

import (
	"os"

	"github.com/urfave/cli"
	"github.com/xx-peach/borealis/config"
)

// Rewrite a configuration file in canonical 'key = value' form. Re-parsing
// the output yields an identical configuration record.
func FormatConfig(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return cli.NewExitError("fmt: expected exactly one configuration file", 1)
	}

	cfg, err := config.Load(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	out := os.Stdout
	if outFile := ctx.String("out"); outFile != "" {
		out, err = os.Create(outFile)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		defer out.Close()
	}

	if err = cfg.Encode(out); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}
