// Package wallet is a typed client of wallet RPC service
package wallet

import (
	"github.com/onederx/chia-rpc/rpc"
)

// DefaultPort is the port wallet RPC service listens on by default
const DefaultPort = 9256

// Client exposes wallet RPC endpoints as methods
type Client struct {
	caller rpc.Caller
}

func NewClient(caller rpc.Caller) *Client {
	return &Client{caller: caller}
}

// Dial creates wallet client connected to host:port with TLS credentials
// found in sslPath and default settings for everything else
func Dial(host string, port int, sslPath string) (*Client, error) {
	caller, err := rpc.NewClient(rpc.Config{Host: host, Port: port, SSLPath: sslPath})
	if err != nil {
		return nil, err
	}
	return NewClient(caller), nil
}
