package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		pt *testing.T,
		mode Mode,
	) {
		if pt != t {
			t.Fatal()
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if mode.String() != "development" {
			t.Fatal()
		}
	})
}
