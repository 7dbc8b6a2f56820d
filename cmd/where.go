package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tikload-cli/tikload/color"
	"github.com/tikload-cli/tikload/config"
	"github.com/tikload-cli/tikload/style"
	"github.com/tikload-cli/tikload/where"
)

// whereTarget is a path the where command can print.
type whereTarget struct {
	name   string
	flag   string
	short  string
	path   func() string
	hidden bool
}

var whereTargets = []whereTarget{
	{name: "Config", flag: "config", short: "c", path: where.Config},
	{name: "Config file", flag: "config-file", short: "f", path: config.Path},
	{name: "Logs", flag: "logs", short: "l", path: where.Logs},
	{name: "Cache", flag: "cache", short: "C", path: where.Cache},
	{name: "Temp", flag: "temp", path: where.Temp, hidden: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range whereTargets {
		whereCmd.Flags().BoolP(t.flag, t.short, false, t.name+" path")
		if t.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(t.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(whereTargets, func(t whereTarget, _ int) string {
		return t.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints the paths of application files and directories.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the paths of application files and directories",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range whereTargets {
			if lo.Must(cmd.Flags().GetBool(t.flag)) {
				cmd.Println(t.path())
				return
			}
		}

		visible := lo.Reject(whereTargets, func(t whereTarget, _ int) bool {
			return t.hidden
		})

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, t := range visible {
			cmd.Printf("%s %s\n", header(t.name+"?"), style.Fg(color.Yellow)("--"+t.flag))
			cmd.Println(t.path())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
