package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare orders semantic versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"0.3.1", "0.3.1", 0},
			{"v0.3.1", "0.3.1", 0},
			{"0.4.0", "0.3.9", 1},
			{"1.0.0", "0.99.99", 1},
			{"0.3.0", "0.3.1", -1},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}
	})

	Convey("Malformed versions are an error", t, func() {
		_, err := Compare("latest", "0.3.1")
		So(err, ShouldNotBeNil)
	})
}
