package log

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tikload-cli/tikload/filesystem"
	"github.com/tikload-cli/tikload/key"
	"github.com/tikload-cli/tikload/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Logging setup", t, func() {
		Convey("Discards everything when logging is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
			So(func() { WithFields(Fields{"k": "v"}).Info("dropped") }, ShouldNotPanic)
		})

		Convey("Writes entries to the daily file when enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "not-a-level")
			viper.Set(key.LogsJson, true)
			defer func() {
				viper.Set(key.LogsWrite, false)
				viper.Set(key.LogsJson, false)
				_ = Setup()
			}()

			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			WithFields(Fields{"request_id": "abc"}).Info("fetched")
			Debugf("below the fallback level")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"request_id":"abc"`)
			So(string(data), ShouldNotContainSubstring, "below the fallback level")
		})
	})
}
