package testutil

import (
	"errors"
	"time"

	"github.com/onederx/chia-rpc/settings"
)

// SettingsMock serves settings from Data. Unset keys and values of a wrong
// type read as zero values
type SettingsMock struct {
	settings.Settings

	Data map[string]interface{}
}

func (s *SettingsMock) GetString(key string) string {
	st, _ := s.Data[key].(string)
	return st
}

func (s *SettingsMock) GetStringMandatory(key string) (string, error) {
	st := s.GetString(key)

	if st == "" {
		return "", errors.New("setting " + key + " is required")
	}
	return st, nil
}

func (s *SettingsMock) GetPath(key string) (string, error) {
	return s.GetString(key), nil
}

func (s *SettingsMock) GetInt(key string) int {
	i, _ := s.Data[key].(int)
	return i
}

func (s *SettingsMock) GetInt64(key string) int64 {
	switch v := s.Data[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

func (s *SettingsMock) GetFloat64(key string) float64 {
	f, _ := s.Data[key].(float64)
	return f
}

func (s *SettingsMock) GetBool(key string) bool {
	b, _ := s.Data[key].(bool)
	return b
}

func (s *SettingsMock) GetDuration(key string) time.Duration {
	d, _ := s.Data[key].(time.Duration)
	return d
}
