package rpc

import (
	"github.com/pkg/errors"

	"github.com/onederx/chia-rpc/settings"
)

// ConfigFromSettings reads connection settings of service ("fullnode" or
// "wallet") and shared SSL and RPC settings into a Config. Logger and Metrics
// are left for the caller to set
func ConfigFromSettings(s settings.Settings, service string) (Config, error) {
	host, err := s.GetStringMandatory(service + ".host")
	if err != nil {
		return Config{}, err
	}
	port := s.GetInt(service + ".port")
	if port <= 0 {
		return Config{}, errors.Errorf("setting %s.port is required", service)
	}
	sslPath, err := s.GetPath("ssl.path")
	if err != nil {
		return Config{}, err
	}

	return Config{
		Host:    host,
		Port:    port,
		SSLPath: sslPath,
		TLS: TLSOptions{
			CertFile:           s.GetString("ssl.cert"),
			KeyFile:            s.GetString("ssl.key"),
			RootCAFile:         s.GetString("ssl.root-ca"),
			ServerName:         s.GetString("ssl.server-name"),
			InsecureSkipVerify: s.GetBool("ssl.insecure-skip-verify"),
		},
		Timeout:         s.GetDuration("rpc.timeout"),
		MaxResponseSize: s.GetInt64("rpc.max-response-size"),
		RateLimit:       s.GetFloat64("rpc.rate-limit"),
		RateBurst:       s.GetInt("rpc.rate-burst"),
	}, nil
}
