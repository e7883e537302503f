package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"github.com/xx-peach/borealis/config"
	"github.com/xx-peach/borealis/dataset"
)

// Inspect the dataset referenced by a configuration file and report its
// geometry and holdout split.
func ProbeDataset(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return cli.NewExitError("probe: expected exactly one configuration file", 1)
	}

	cfg, err := config.Load(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if cfg.DatasetType != config.DatasetLLFF {
		return cli.NewExitError(fmt.Sprintf("%s %q", dataset.ErrUnsupportedDatasetType, cfg.DatasetType), 1)
	}

	opts := dataset.ConfigOptions(cfg)
	opts.PosesOnly = ctx.Bool("poses-only")

	ds, err := dataset.Load(cfg.DataDir, opts)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk([][]string{
		{"experiment", cfg.ExpName},
		{"data dir", ds.Dir},
		{"frames", fmt.Sprintf("%d", len(ds.Poses))},
		{"train / test", fmt.Sprintf("%d / %d", len(ds.Train), len(ds.Test))},
		{"resolution", fmt.Sprintf("%dx%d", ds.W, ds.H)},
		{"focal", fmt.Sprintf("%.2f", ds.Focal)},
		{"near / far", fmt.Sprintf("%.3f / %.3f", ds.Near, ds.Far)},
		{"render poses", fmt.Sprintf("%d", len(ds.RenderPoses))},
	})
	table.Render()
	return nil
}
