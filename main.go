package main

import (
	"os"

	"github.com/urfave/cli"
	"github.com/xx-peach/borealis/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "borealis"
	app.Usage = "load and validate NeRF training configurations and LLFF datasets"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "validate",
			Usage: "validate training configuration files",
			Description: `
Parse each configuration file, coerce every value to its schema type and check
all range and enum constraints. Exits with a non-zero status on the first
invalid file; training must never start from an invalid configuration.`,
			ArgsUsage: "config1.txt config2.txt ...",
			Action:    cmd.ValidateConfig,
		},
		{
			Name:      "show",
			Usage:     "print the typed contents of a configuration file",
			ArgsUsage: "config.txt",
			Action:    cmd.ShowConfig,
		},
		{
			Name:  "fmt",
			Usage: "rewrite a configuration file in canonical form",
			Description: `
Load a configuration file and emit it back as canonical 'key = value' lines.
Re-parsing the output yields an identical configuration record.`,
			ArgsUsage: "config.txt",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "write output to file instead of stdout",
				},
			},
			Action: cmd.FormatConfig,
		},
		{
			Name:  "probe",
			Usage: "inspect the dataset referenced by a configuration file",
			Description: `
Load a configuration file, then run the matching dataset loader against its
data directory and report frame counts, image geometry, depth bounds and the
train/test holdout split.`,
			ArgsUsage: "config.txt",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "poses-only",
					Usage: "skip image decoding; derive geometry from pose metadata",
				},
			},
			Action: cmd.ProbeDataset,
		},
	}

	app.Run(os.Args)
}
