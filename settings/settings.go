package settings

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Settings is responsible for getting all settings used by RPC clients and
// CLI. Settings can come from command line or from configuration file. Parts
// of the program get them by calling Get* methods
type Settings interface {
	GetString(key string) string
	GetInt(key string) int
	GetInt64(key string) int64
	GetFloat64(key string) float64
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetPath(key string) (string, error)
	GetStringMandatory(key string) (string, error)
	ConfigFileUsed() string
	GetViper() *viper.Viper
}

type settings struct {
	cfgFile string
	viper   *viper.Viper
}

// NewSettings creates new Settings instance. Settings come from command line
// and from config file, so this function accepts a path to config file and
// a pointer to root cobra.Command whose persistent flags were registered with
// RegisterFlags.
// In case given path to config file is an empty string, config will be auto -
// searched: directories "/etc/chia-rpc" and current working directory will be
// checked for a file named config.{yaml,json,...} (possible extensions are
// ones supported by viper). Unlike an explicitly given file, a config that
// can't be found this way is not an error: defaults and flags are used.
func NewSettings(cfgFile string, cli *cobra.Command) (Settings, error) {
	s := &settings{cfgFile: cfgFile, viper: viper.New()}
	if cfgFile != "" {
		s.viper.SetConfigFile(cfgFile)
	} else {
		s.viper.AddConfigPath("/etc/chia-rpc")
		s.viper.AddConfigPath(".")
		s.viper.SetConfigName("config")
	}

	if err := s.viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			return nil, errors.Wrapf(err, "failed to read config %s", cfgFile)
		}
	}
	if err := s.initConfig(cli); err != nil {
		return nil, err
	}
	return s, nil
}
