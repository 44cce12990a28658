package rpc

import (
	"testing"

	"github.com/onederx/chia-rpc/rpc/rpctest"
)

func newTestClient(t *testing.T, pki *rpctest.PKI, host string, port int, modify func(*Config)) *Client {
	cfg := Config{
		Host:    host,
		Port:    port,
		SSLPath: pki.SSLPath,
	}
	if modify != nil {
		modify(&cfg)
	}
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return client
}
