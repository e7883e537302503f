package cmd

import (
	"github.com/urfave/cli"
	"github.com/xx-peach/borealis/log"
)

var logger = log.New("borealis")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
