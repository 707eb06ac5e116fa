package nets

import (
	"context"
	"net"

	"github.com/reusee/e5"
	"github.com/reusee/tape/logs"
)

type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// Dialer dials local addresses directly and everything else through the proxy, if any.
func (Module) Dialer(
	getProxyDialer GetProxyDialer,
	isLocalAddr IsLocalAddr,
) Dialer {
	var direct net.Dialer
	return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		isLocal, err := isLocalAddr(addr)
		if err != nil {
			return nil, err
		}
		if isLocal {
			return direct.DialContext(ctx, network, addr)
		}
		proxyDialer, err := getProxyDialer()
		if err != nil {
			return nil, err
		}
		return proxyDialer.DialContext(ctx, network, addr)
	})
}

type DialerFunc func(context.Context, string, string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network string, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

func (d DialerFunc) Dial(network string, addr string) (net.Conn, error) {
	return d(context.Background(), network, addr)
}

// Connect opens the TCP stream a program reads its input from and writes its output to.
type Connect func(ctx context.Context, addr string) (net.Conn, error)

func (Module) Connect(
	dialer Dialer,
	logger logs.Logger,
) Connect {
	return func(ctx context.Context, addr string) (net.Conn, error) {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, wrap.With(e5.Info("connect %s", addr))(err)
		}
		logger.InfoContext(ctx, "connected",
			"addr", addr,
			"remote", conn.RemoteAddr().String(),
		)
		return conn, nil
	}
}
