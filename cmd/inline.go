package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/tikload-cli/tikload/filesystem"
	"github.com/tikload-cli/tikload/inline"
	"github.com/tikload-cli/tikload/link"
	"github.com/tikload-cli/tikload/open"
	"github.com/tikload-cli/tikload/session"
	"github.com/tikload-cli/tikload/video"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("url", "u", "", "The video page URL to fetch")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("format", "f", "", "Select a video format by id or label")
	inlineCmd.Flags().StringP("audio", "A", "", "Select an audio format by id or label")
	inlineCmd.Flags().Lookup("audio").NoOptDefVal = "best"
	inlineCmd.Flags().BoolP("open", "O", false, "Open the selected download link")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	inlineCmd.MarkFlagsMutuallyExclusive("format", "audio")
	lo.Must0(inlineCmd.MarkFlagRequired("url"))
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Fetch a video and print its formats or the download link of one of them.

Without a selector the available formats are listed.

Format selectors (--format and --audio):
  best - the top ranked video, or the best-effort MP3 for audio
  worst - the lowest ranked concrete format
  [format id] - a format by its exact id
  [text] - the format whose label matches best

--audio without a value selects the best-effort MP3.`,
	Example: `  tikload inline -u https://www.tiktok.com/@user/video/1 --json
  tikload inline -u https://www.tiktok.com/@user/video/1 --format 1080p --open
  tikload inline -u https://www.tiktok.com/@user/video/1 --audio`,
	PreRun: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("open")) && !cmd.Flags().Changed("format") && !cmd.Flags().Changed("audio") {
			handleErr(errors.New("--open requires --format or --audio"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		var (
			writer io.Writer
			err    error
		)

		output := lo.Must(cmd.Flags().GetString("output"))
		if output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		} else {
			writer = os.Stdout
		}

		picker := mo.None[inline.Picker]()
		switch {
		case cmd.Flags().Changed("format"):
			fn, err := inline.ParsePicker(link.Video, lo.Must(cmd.Flags().GetString("format")))
			handleErr(err)
			picker = mo.Some(fn)
		case cmd.Flags().Changed("audio"):
			fn, err := inline.ParsePicker(link.Audio, lo.Must(cmd.Flags().GetString("audio")))
			handleErr(err)
			picker = mo.Some(fn)
		}

		opener := mo.None[session.Opener]()
		if lo.Must(cmd.Flags().GetBool("open")) {
			opener = mo.Some[session.Opener](open.Download)
		}

		client := newClient()
		options := &inline.Options{
			Out:     writer,
			URL:     lo.Must(cmd.Flags().GetString("url")),
			Base:    client.Base(),
			Fetcher: client,
			Json:    lo.Must(cmd.Flags().GetBool("json")),
			Picker:  picker,
			Open:    opener,
		}

		err = inline.Run(context.Background(), options)
		handleErr(err)
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("metadata", "m", false, "Generate the JSON Schema for the backend metadata document")
}

// inlineSchemaCmd generates JSON schemas for structured inline mode outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "entry", "document", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("metadata")):
			schema = reflector.Reflect(&video.Document{})
		default:
			schema = reflector.Reflect(&inline.Output{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
