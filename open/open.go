// Package open hands download links to the system's default handler or a configured application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"github.com/tikload-cli/tikload/constant"
	"github.com/tikload-cli/tikload/key"
	"github.com/tikload-cli/tikload/log"
)

// Download hands a download link to the application configured in download.open_with,
// or to the system default handler when none is set. It does not wait for the application to exit.
func Download(url string) error {
	return StartWith(url, viper.GetString(key.DownloadOpenWith))
}

// StartWith opens input with app, or with the default handler when app is empty.
func StartWith(input, app string) error {
	cmd, ok := command(runtime.GOOS, input, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	log.WithFields(log.Fields{
		"app":  app,
		"args": cmd.Args,
	}).Debug("opening link")

	return cmd.Start()
}

func command(goos, input, app string) (*exec.Cmd, bool) {
	if app == "" {
		return defaultCommand(goos, input)
	}

	switch goos {
	case constant.Windows:
		// start treats & as a command separator.
		escaped := strings.ReplaceAll(input, "&", "^&")
		return exec.Command("cmd", "/C", "start", "", app, escaped), true
	case constant.Darwin:
		return exec.Command("open", "-a", app, input), true
	case constant.Linux:
		return exec.Command(app, input), true
	case constant.Android:
		return exec.Command("termux-open", "--choose", input), true
	default:
		return nil, false
	}
}

func defaultCommand(goos, input string) (*exec.Cmd, bool) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
