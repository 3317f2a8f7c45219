// Package viperdefaults adapts a *viper.Viper into the two narrow
// seams the core consults for ambient configuration: an
// envbind.Reader (so a schema option's environment fallback can
// instead resolve from a config file/flag-layered viper instance) and
// a schema.OptionBuilder.Default producer. It mirrors
// internal/config/config.go's InitConfig precedence cascade (config
// file, then PIGSTY_* env, then hardcoded default) generalized to an
// arbitrary schema instead of pig's own fixed set of globals. This is
// additive: envbind.OSEnv remains the core's own default reader.
package viperdefaults

import (
	"errors"

	"github.com/spf13/viper"
)

// Reader adapts v into an envbind.Reader: Lookup(name) succeeds iff v
// has that key set, from any of viper's own layered sources (flag,
// env, config file, key/value store, default).
type Reader struct {
	v *viper.Viper
}

// NewReader wraps v. A nil v is treated as an always-empty reader.
func NewReader(v *viper.Viper) Reader {
	return Reader{v: v}
}

func (r Reader) Lookup(name string) (string, bool) {
	if r.v == nil || !r.v.IsSet(name) {
		return "", false
	}
	return r.v.GetString(name), true
}

// DefaultFrom returns a schema.OptionBuilder.Default producer that
// reads key from v at schema-build time... no, at first invocation
// time: the func is only ever called by the core when the cell is
// still Missing after token parsing and environment binding, so the
// viper lookup happens lazily, once per parse, the same as any other
// Default producer.
func DefaultFrom(v *viper.Viper, key string) func() any {
	return func() any {
		if v == nil || !v.IsSet(key) {
			return nil
		}
		return v.Get(key)
	}
}

// Load builds a *viper.Viper the way InitConfig does: YAML config file
// at configPath (if non-empty and present), environment variables
// under envPrefix, both optional. Missing files are not an error — an
// empty/defaulted Viper is still a usable Reader.
func Load(configPath, envPrefix string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if envPrefix != "" {
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}
	return v, nil
}
