package cmd

import (
	"github.com/urfave/cli"
	"github.com/xx-peach/borealis/config"
)

// Validate training configuration files. The first invalid file aborts with a
// non-zero exit status; a trainer wrapping this loader must never start from
// an invalid configuration.
func ValidateConfig(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return cli.NewExitError("validate: no configuration files given", 1)
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		cfgFile := ctx.Args().Get(idx)
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		logger.Noticef("%s: ok; experiment %q, dataset type %s, %d iters", cfgFile, cfg.ExpName, cfg.DatasetType, cfg.Iters)
	}
	return nil
}
