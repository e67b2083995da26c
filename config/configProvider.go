package config

import (
	"github.com/spf13/cast"

	"github.com/sunwei/mdsite/common/maps"
)

// Provider provides the configuration settings for the site build.
type Provider interface {
	GetString(key string) string
	GetBool(key string) bool
	GetStringMap(key string) map[string]any
	GetStringMapString(key string) map[string]string
	Get(key string) any
	Set(key string, value any)
	SetDefaults(params maps.Params)
	IsSet(key string) bool
}

// GetStringSlicePreserveString returns a string slice from the given config and key.
// If the config value is a string, we do not attempt to split it into fields.
func GetStringSlicePreserveString(cfg Provider, key string) []string {
	sd := cfg.Get(key)
	if sd == nil {
		return nil
	}
	if s, ok := sd.(string); ok {
		return []string{s}
	}
	return cast.ToStringSlice(sd)
}
