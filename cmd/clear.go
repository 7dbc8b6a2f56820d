package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tikload-cli/tikload/icon"
	"github.com/tikload-cli/tikload/util"
	"github.com/tikload-cli/tikload/where"
)

// clearTarget is a directory the clear command can remove.
type clearTarget struct {
	name  string
	flag  string
	short string
	path  func() string
}

var clearTargets = []clearTarget{
	{name: "cache directory", flag: "cache", short: "c", path: where.Cache},
	{name: "logs directory", flag: "logs", short: "l", path: where.Logs},
	{name: "temporary files", flag: "temp", short: "t", path: where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, t := range clearTargets {
		clearCmd.Flags().BoolP(t.flag, t.short, false, "clear "+t.name)
	}
	clearCmd.Flags().BoolP("all", "a", false, "clear everything above")
}

// clearCmd removes cached and temporary application files.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached and temporary application files",
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))

		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return all || lo.Must(cmd.Flags().GetBool(t.flag))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, t := range selected {
			name := util.Capitalize(t.name)
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), name))
			err := util.Delete(t.path())
			erase()

			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Clean), name)
		}
	},
}
