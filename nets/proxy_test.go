package nets

import (
	"io"
	"net"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tape/modes"
)

func TestNoProxyInDevelopment(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		if addr != "" {
			t.Fatalf("got %q", addr)
		}
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u != nil {
			t.Fatalf("got %v", u)
		}
		dialer, err := getDialer()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := dialer.(*net.Dialer); !ok {
			t.Fatalf("got %T", dialer)
		}
	})
}

func TestSocksProxyURL(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() ProxyAddr {
			return "socks://127.0.0.1:1080"
		},
	).Call(func(
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" || u.Host != "127.0.0.1:1080" {
			t.Fatalf("got %v", u)
		}
		if _, err := getDialer(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestConnect(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		_, _ = conn.Write([]byte("hi\n"))
	}()

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		connect Connect,
	) {
		conn, err := connect(t.Context(), ln.Addr().String())
		if err != nil {
			t.Fatal(err)
		}
		defer conn.Close()
		buf := make([]byte, 3)
		if _, err := io.ReadFull(conn, buf); err != nil {
			t.Fatal(err)
		}
		if string(buf) != "hi\n" {
			t.Fatalf("got %q", buf)
		}

		// nothing listens on port 1
		if _, err := connect(t.Context(), "127.0.0.1:1"); err == nil {
			t.Fatal("should fail")
		}
	})
}
