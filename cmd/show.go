package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
	"github.com/xx-peach/borealis/config"
)

// Print the typed contents of a configuration file as a table.
func ShowConfig(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return cli.NewExitError("show: expected exactly one configuration file", 1)
	}

	cfg, err := config.Load(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Value"})
	for _, field := range cfg.Fields() {
		table.Append([]string{field.Key, field.Type, field.Value})
	}
	table.Render()
	return nil
}
