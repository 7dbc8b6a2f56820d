package version

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"
	"github.com/tikload-cli/tikload/color"
	"github.com/tikload-cli/tikload/constant"
	"github.com/tikload-cli/tikload/icon"
	"github.com/tikload-cli/tikload/key"
	"github.com/tikload-cli/tikload/log"
	"github.com/tikload-cli/tikload/style"
	"github.com/tikload-cli/tikload/util"
)

// ReleasePage is the page of a tagged release.
func ReleasePage(version string) string {
	return "https://github.com/tikload-cli/tikload/releases/tag/v" + version
}

// Notify prints a notice when a newer release than the running one exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()

	notify(os.Stdout, latest, err)
}

func notify(out io.Writer, latest string, err error) {
	if err != nil {
		log.Warnf("version check: %v", err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Fprintf(out, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(ReleasePage(latest)),
	)
}
