package pkgconfig

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options describes where NewViper reads configuration from.
type Options struct {
	// File is an explicit config file. When empty, SearchName is looked up in
	// SearchPaths and a missing file is not an error.
	File        string
	SearchName  string
	SearchPaths []string

	// EnvPrefix enables environment lookups such as PREFIX_INPUT_ROSTER for
	// the key "input.roster".
	EnvPrefix string

	// Flags maps config keys to flag names in FlagSet.
	FlagSet *pflag.FlagSet
	Flags   map[string]string

	Defaults map[string]any
}

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

// NewViper loads configuration from the sources in opts and returns a
// Viper-backed Config.
//
// The config file type is inferred by Viper from the filename extension.
func NewViper(opts Options) (*Viper, error) {
	v := viper.New()

	for key, value := range opts.Defaults {
		v.SetDefault(key, value)
	}

	if opts.EnvPrefix != "" {
		v.SetEnvPrefix(opts.EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()
	}

	if opts.FlagSet != nil {
		for key, name := range opts.Flags {
			flag := opts.FlagSet.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	switch {
	case opts.File != "":
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	case opts.SearchName != "":
		v.SetConfigName(opts.SearchName)
		for _, p := range opts.SearchPaths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	return &Viper{v: v}, nil
}

// LoadDotEnv loads environment variables from the given files without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}

	return nil
}

// GetInt returns the value for key as int64.
func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetFloat returns the value for key as float64.
func (vc *Viper) GetFloat(key string) float64 {
	return vc.v.GetFloat64(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// ConfigFileUsed returns the path of the config file that was read, if any.
func (vc *Viper) ConfigFileUsed() string {
	return vc.v.ConfigFileUsed()
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	return nil
}
