// Package fullnode is a typed client of full node RPC service
package fullnode

import (
	"github.com/onederx/chia-rpc/rpc"
)

// DefaultPort is the port full node RPC service listens on by default
const DefaultPort = 8555

// Client exposes full node RPC endpoints as methods. It holds no state besides
// the caller and is safe for concurrent use when the caller is
type Client struct {
	caller rpc.Caller
}

// NewClient creates full node client issuing requests through caller
func NewClient(caller rpc.Caller) *Client {
	return &Client{caller: caller}
}

// Dial creates full node client connected to host:port with TLS credentials
// found in sslPath and default settings for everything else
func Dial(host string, port int, sslPath string) (*Client, error) {
	caller, err := rpc.NewClient(rpc.Config{Host: host, Port: port, SSLPath: sslPath})
	if err != nil {
		return nil, err
	}
	return NewClient(caller), nil
}
