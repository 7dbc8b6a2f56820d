package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tikload-cli/tikload/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "format", "formats"), ShouldEqual, "1 format")
		So(Quantify(2, "format", "formats"), ShouldEqual, "2 formats")
		So(Quantify(0, "format", "formats"), ShouldEqual, "0 formats")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/tikload/parts", 0o755), ShouldBeNil)
		So(fs.WriteFile("/tmp/tikload/parts/a", []byte("a"), 0o644), ShouldBeNil)

		Convey("Deleting a file leaves the directory", func() {
			So(Delete("/tmp/tikload/parts/a"), ShouldBeNil)
			exists, _ := fs.DirExists("/tmp/tikload/parts")
			So(exists, ShouldBeTrue)
		})

		Convey("Deleting the directory removes everything", func() {
			So(Delete("/tmp/tikload"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/tikload/parts/a")
			So(exists, ShouldBeFalse)
		})

		Convey("Deleting a missing path is an error", func() {
			So(Delete("/tmp/missing"), ShouldNotBeNil)
		})
	})
}
