package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tikload-cli/tikload/mini"
	"github.com/tikload-cli/tikload/open"
)

func init() {
	rootCmd.AddCommand(miniCmd)
}

// miniCmd launches the application in a lightweight, prompt-based terminal interface.
var miniCmd = &cobra.Command{
	Use:   "mini [url]",
	Short: "Launch the application in a lightweight, prompt-based terminal interface",
	Long:  `Fetch a video and choose a download format through a sequence of simple prompts.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()
		options := mini.Options{
			URL:     urlArg(args),
			Base:    client.Base(),
			Fetcher: client,
			Open:    open.Download,
		}
		err := mini.Run(&options)

		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}
