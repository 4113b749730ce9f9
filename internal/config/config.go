// Copyright 2026 Marko Milivojevic
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/icemarkom/syncfmt/internal/errors"
	"github.com/icemarkom/syncfmt/internal/format"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "SYNCFMT"

// Config holds display settings
type Config struct {
	Locale          string            `mapstructure:"locale"`            // BCP 47 tag, e.g. "de-DE"
	Timezone        string            `mapstructure:"timezone"`          // IANA name, empty for local time
	PendingLabel    string            `mapstructure:"pending_label"`     // Shown for unknown sizes
	SecondsAgoLabel string            `mapstructure:"seconds_ago_label"` // Shown for timestamps under a minute old
	Separator       string            `mapstructure:"separator"`         // Remote path separator
	MimeTypes       map[string]string `mapstructure:"mime_types"`        // Extra MIME labels
	Workers         int               `mapstructure:"workers"`           // Parallel MIME sniffers in list
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"locale":            "locale",
	"timezone":          "timezone",
	"pending-label":     "pending_label",
	"seconds-ago-label": "seconds_ago_label",
	"separator":         "separator",
	"workers":           "workers",
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Locale:          "en-US",
		PendingLabel:    format.DefaultPending,
		SecondsAgoLabel: format.DefaultSecondsAgo,
		Separator:       string(format.PathSeparator),
		Workers:         runtime.NumCPU(),
	}
}

// Load reads configuration from defaults, the optional file at path,
// SYNCFMT_* environment variables and the changed flags in fs, in
// increasing order of precedence.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	// MIME keys contain dots, so the default "." key delimiter cannot be used.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))

	def := Defaults()
	v.SetDefault("locale", def.Locale)
	v.SetDefault("timezone", def.Timezone)
	v.SetDefault("pending_label", def.PendingLabel)
	v.SetDefault("seconds_ago_label", def.SecondsAgoLabel)
	v.SetDefault("separator", def.Separator)
	v.SetDefault("workers", def.Workers)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err,
				fmt.Sprintf("Failed to read config file %s", path),
				"Use a .toml, .yaml or .json file, or omit --config")
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all settings can be applied
func (c Config) Validate() error {
	if _, err := format.ParseLocale(c.Locale); err != nil {
		return errors.InvalidConfig("locale", err.Error(), "Use a tag such as en-US, de-DE or pt-BR")
	}
	if _, err := c.Location(); err != nil {
		return errors.InvalidConfig("timezone", err.Error(), "Use an IANA name such as Europe/Berlin, or leave it empty for local time")
	}
	if len(c.Separator) != 1 {
		return errors.InvalidConfig("separator", fmt.Sprintf("%q is not a single character", c.Separator), "Use / for remote paths")
	}
	if c.Workers <= 0 {
		return errors.InvalidConfig("workers", "must be positive", "Use a value greater than 0")
	}
	for mime := range c.MimeTypes {
		if !strings.Contains(mime, "/") {
			return errors.InvalidConfig("mime_types", fmt.Sprintf("%q is not a type/subtype pair", mime), "Use keys such as image/webp")
		}
	}
	return nil
}

// Location returns the configured time zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Sizer returns the byte-size formatter.
func (c Config) Sizer() format.SizeFormatter {
	return format.SizeFormatter{Pending: c.PendingLabel}
}

// MimeTable returns the built-in MIME labels merged with the configured ones.
func (c Config) MimeTable() format.MimeTable {
	return format.NewMimeTable(c.MimeTypes)
}

// StripSeparator returns the path normalizer for the configured separator.
func (c Config) StripSeparator() func(string) string {
	sep := byte(format.PathSeparator)
	if len(c.Separator) == 1 {
		sep = c.Separator[0]
	}
	return format.StripTrailingSeparatorFunc(sep)
}

// Timestamps returns a timestamp formatter for the configured locale and zone.
func (c Config) Timestamps() (*format.Timestamps, error) {
	locale, err := format.ParseLocale(c.Locale)
	if err != nil {
		return nil, err
	}
	loc, err := c.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone: %w", err)
	}
	ts := format.NewTimestamps(format.LocaleDates{Locale: locale, Location: loc})
	ts.SecondsAgo = c.SecondsAgoLabel
	return ts, nil
}
