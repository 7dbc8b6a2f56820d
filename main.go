// Package main is the entry point for the tikload application.
package main

import (
	"github.com/samber/lo"
	"github.com/tikload-cli/tikload/cmd"
	"github.com/tikload-cli/tikload/config"
	"github.com/tikload-cli/tikload/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
