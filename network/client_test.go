package network

import (
	"net/http"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("New builds a client with its own tuned transport", t, func() {
		c := New(5 * time.Second)
		So(c.Timeout, ShouldEqual, 5*time.Second)

		transport, ok := c.Transport.(*http.Transport)
		So(ok, ShouldBeTrue)
		So(transport.MaxIdleConnsPerHost, ShouldEqual, 10)

		So(New(0).Timeout, ShouldEqual, time.Duration(0))
		So(Client.Timeout, ShouldEqual, time.Minute)
	})
}
