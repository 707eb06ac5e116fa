package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 30000, 42); n != 30000 {
		t.Fatalf("got %d", n)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %s", s)
	}
}

func TestStrToBool(t *testing.T) {
	for _, s := range []string{"true", "Y", " yes ", "on", "1"} {
		if !StrToBool(s) {
			t.Fatalf("%s", s)
		}
	}
	for _, s := range []string{"false", "n", "off", "0", "foo"} {
		if StrToBool(s) {
			t.Fatalf("%s", s)
		}
	}
}
