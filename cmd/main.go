/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/spmarsden/prettylog/cmd/commands"
	"github.com/spmarsden/prettylog/cmd/format"
	"github.com/spmarsden/prettylog/cmd/utils"
)

func main() {
	cmd := commands.NewCli()
	utils.ExitOnError(cmd.Execute())
}

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&format.Formatter{Colour: utils.IsTerminalInteractive()})
	log.SetLevel(log.InfoLevel)
}
