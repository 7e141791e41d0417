package delivery

import (
	"context"
	"net"
	"strconv"
)

// Delivery is a long running entry point (HTTP server, relay loop, subscriber).
type Delivery interface {
	Serve(ctx context.Context) error
}

// ListenAddr is the all-interfaces address servers bind to.
func ListenAddr(port int) string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(port))
}
