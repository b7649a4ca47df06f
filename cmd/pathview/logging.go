package main

import (
	"github.com/urfave/cli"

	"pathview/log"
)

var logger = log.New("pathview")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
