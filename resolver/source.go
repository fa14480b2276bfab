package resolver

import (
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/propinject/errors"
)

// Source is a raw, untyped provider of property values.
type Source interface {
	Lookup(key string) (string, bool)
}

// MapSource serves properties from memory.
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// ViperSource serves properties from a viper instance. Keys are case-insensitive, as in viper.
// Keys holding non-scalar values (maps, lists) are reported as absent.
type ViperSource struct {
	v *viper.Viper
}

// NewViperSource wraps an already configured viper instance.
func NewViperSource(v *viper.Viper) *ViperSource {
	return &ViperSource{v: v}
}

// NewFileSource reads a configuration file in any format viper recognizes by extension
// (yaml, json, toml, ...). Nested keys are addressed with dots, e.g. "server.port".
func NewFileSource(path string) (*ViperSource, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errorc.With(
			errors.ErrSourceUnavailable,
			errorc.String(errors.ErrorFieldSourcePath, path),
			errorc.Error(errors.ErrorFieldCause, err),
		)
	}
	return &ViperSource{v: v}, nil
}

// NewEnvSource serves properties from environment variables. The key "db.url" with prefix
// "APP" is looked up as APP_DB_URL; without a prefix as DB_URL.
func NewEnvSource(prefix string) *ViperSource {
	v := viper.New()
	if prefix != "" {
		v.SetEnvPrefix(prefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return &ViperSource{v: v}
}

func (s *ViperSource) Lookup(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	v, err := cast.ToStringE(s.v.Get(key))
	if err != nil {
		return "", false
	}
	return v, true
}

// PropertiesSource serves properties from Java-style .properties files.
type PropertiesSource struct {
	p *properties.Properties
}

// NewPropertiesFileSource loads the given .properties files in order; later files override earlier ones.
func NewPropertiesFileSource(paths ...string) (*PropertiesSource, error) {
	p, err := properties.LoadFiles(paths, properties.UTF8, false)
	if err != nil {
		return nil, errorc.With(
			errors.ErrSourceUnavailable,
			errorc.String(errors.ErrorFieldSourcePath, strings.Join(paths, ",")),
			errorc.Error(errors.ErrorFieldCause, err),
		)
	}
	return &PropertiesSource{p: p}, nil
}

func (s *PropertiesSource) Lookup(key string) (string, bool) {
	return s.p.Get(key)
}
