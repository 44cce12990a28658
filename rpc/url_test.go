package rpc

import "testing"

func TestBuildURL(t *testing.T) {
	tests := []struct {
		host     string
		port     int
		endpoint string
		want     string
	}{
		{"localhost", 8555, "get_blockchain_state", "https://localhost:8555/get_blockchain_state"},
		{"127.0.0.1", 9256, "get_wallets", "https://127.0.0.1:9256/get_wallets"},
		{"node.example.com", 443, "push_tx", "https://node.example.com:443/push_tx"},
		{"[::1]", 8555, "get_network_info", "https://[::1]:8555/get_network_info"},
		{"", 0, "", "https://:0/"},
	}

	for _, test := range tests {
		if got := BuildURL(test.host, test.port, test.endpoint); got != test.want {
			t.Errorf("BuildURL(%q, %d, %q) = %q, expected %q",
				test.host, test.port, test.endpoint, got, test.want)
		}
	}
}
