package settings

import (
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeys maps persistent CLI flags to settings keys they override
var flagKeys = map[string]string{
	"ssl-path":             "ssl.path",
	"insecure-skip-verify": "ssl.insecure-skip-verify",
	"fullnode-host":        "fullnode.host",
	"fullnode-port":        "fullnode.port",
	"wallet-host":          "wallet.host",
	"wallet-port":          "wallet.port",
	"timeout":              "rpc.timeout",
}

func (s *settings) initConfig(cli *cobra.Command) error {
	// let CLI args override config params
	if cli != nil {
		for flag, key := range flagKeys {
			f := cli.PersistentFlags().Lookup(flag)
			if f == nil {
				continue
			}
			if err := s.viper.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "failed to bind flag %s", flag)
			}
		}
	}

	// defaults
	s.viper.SetDefault("ssl.path", "~/.chia/mainnet/config/ssl")
	s.viper.SetDefault("ssl.cert", "daemon/private_daemon.crt")
	s.viper.SetDefault("ssl.key", "daemon/private_daemon.key")
	s.viper.SetDefault("ssl.root-ca", "ca/private_ca.crt")
	s.viper.SetDefault("ssl.server-name", "chia.net")
	s.viper.SetDefault("ssl.insecure-skip-verify", false)
	s.viper.SetDefault("fullnode.host", "localhost")
	s.viper.SetDefault("fullnode.port", 8555)
	s.viper.SetDefault("wallet.host", "localhost")
	s.viper.SetDefault("wallet.port", 9256)
	s.viper.SetDefault("rpc.timeout", "300s")
	s.viper.SetDefault("rpc.max-response-size", 50*1024*1024)
	s.viper.SetDefault("rpc.rate-limit", 0)
	s.viper.SetDefault("rpc.rate-burst", 1)
	return nil
}

func (s *settings) GetString(key string) string {
	return s.viper.GetString(key)
}

func (s *settings) GetInt(key string) int {
	return s.viper.GetInt(key)
}

func (s *settings) GetInt64(key string) int64 {
	return s.viper.GetInt64(key)
}

func (s *settings) GetFloat64(key string) float64 {
	return s.viper.GetFloat64(key)
}

func (s *settings) GetBool(key string) bool {
	return s.viper.GetBool(key)
}

func (s *settings) GetDuration(key string) time.Duration {
	return s.viper.GetDuration(key)
}

// GetPath returns setting value with leading "~" expanded to home directory
func (s *settings) GetPath(key string) (string, error) {
	path, err := homedir.Expand(s.viper.GetString(key))
	if err != nil {
		return "", errors.Wrapf(err, "setting %s", key)
	}
	return path, nil
}

func (s *settings) GetStringMandatory(key string) (string, error) {
	value := s.viper.GetString(key)

	if value == "" {
		return "", errors.Errorf("setting %s is required", key)
	}
	return value, nil
}

func (s *settings) ConfigFileUsed() string {
	return s.viper.ConfigFileUsed()
}

func (s *settings) GetViper() *viper.Viper {
	return s.viper
}
