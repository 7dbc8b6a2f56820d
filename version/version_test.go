package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tikload-cli/tikload/constant"
	"github.com/tikload-cli/tikload/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestLatest(t *testing.T) {
	Convey("Given a release registry", t, func() {
		var (
			hits      int
			userAgent string
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			userAgent = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte(`{"tag_name": "v1.2.3"}`))
		}))
		defer server.Close()

		previous := releasesURL
		releasesURL = server.URL
		defer func() { releasesURL = previous }()

		Convey("The tag is returned without its prefix and cached", func() {
			v, err := Latest()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.2.3")

			v, err = Latest()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.2.3")
			So(hits, ShouldBeLessThanOrEqualTo, 1)
			if hits == 1 {
				So(userAgent, ShouldEqual, constant.UserAgent)
			}
		})
	})
}
