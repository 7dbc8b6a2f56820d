package version

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tikload-cli/tikload/constant"
)

func TestNotify(t *testing.T) {
	Convey("Given the result of a release lookup", t, func() {
		var out bytes.Buffer

		Convey("A newer release is announced with its page", func() {
			notify(&out, "99.0.0", nil)
			So(out.String(), ShouldContainSubstring, "New version is available")
			So(out.String(), ShouldContainSubstring, ReleasePage("99.0.0"))
		})

		Convey("The running release is not announced", func() {
			notify(&out, constant.Version, nil)
			So(out.String(), ShouldBeEmpty)
		})

		Convey("A failed lookup prints nothing", func() {
			notify(&out, "", errors.New("offline"))
			So(out.String(), ShouldBeEmpty)
		})

		Convey("A malformed tag prints nothing", func() {
			notify(&out, "nightly", nil)
			So(out.String(), ShouldBeEmpty)
		})
	})
}
