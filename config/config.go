// Package config provides the process-wide numeric settings for prism:
// the initial domain-range scale, the float precision model, and the
// toggles for numeric warnings, caching and lazy loading.
//
// Settings resolve in order: PRISM_* environment variables, then an
// optional YAML config file, then defaults.
package config

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/zjrosen/prism/internal/log"
)

// Precision selects the float model used for exactness checks on
// integer-domain conversions.
type Precision string

const (
	Float64 Precision = "float64"
	Float32 Precision = "float32"
	Float16 Precision = "float16"
)

// ParsePrecision validates a precision name, case-insensitively.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float64", "":
		return Float64, nil
	case "float32":
		return Float32, nil
	case "float16":
		return Float16, nil
	default:
		return Float64, fmt.Errorf("unknown float precision %q", s)
	}
}

// MaxExactInteger returns the largest integer magnitude the precision can
// represent exactly (2^53, 2^24 and 2^11 respectively).
func (p Precision) MaxExactInteger() float64 {
	switch p {
	case Float32:
		return float64(1 << 24)
	case Float16:
		return float64(1 << 11)
	default:
		return math.Pow(2, 53)
	}
}

// Settings holds all configuration options for prism.
type Settings struct {
	// DomainRangeScale is the scale the default controller starts in.
	DomainRangeScale string `mapstructure:"domain_range_scale" yaml:"domain_range_scale"`

	// FloatPrecision bounds the exactness check for integer-domain results.
	FloatPrecision Precision `mapstructure:"float_precision" yaml:"float_precision"`

	// IgnoreNumericWarnings silences PrecisionWarning delivery.
	IgnoreNumericWarnings bool `mapstructure:"ignore_numeric_warnings" yaml:"ignore_numeric_warnings"`

	// DisableCaching makes memoized computations run every time.
	DisableCaching bool `mapstructure:"disable_caching" yaml:"disable_caching"`

	// DisableLazyLoad resolves deferred tables eagerly at construction.
	DisableLazyLoad bool `mapstructure:"disable_lazy_load" yaml:"disable_lazy_load"`
}

// Defaults returns the default settings.
func Defaults() Settings {
	return Settings{
		DomainRangeScale: "reference",
		FloatPrecision:   Float64,
	}
}

// Load resolves settings from PRISM_* environment variables over defaults.
func Load() Settings {
	return LoadFile("")
}

// LoadFile resolves settings from environment variables, then the YAML file
// at path (when non-empty and readable), then defaults. A missing or
// malformed file is logged and otherwise ignored.
func LoadFile(path string) Settings {
	defaults := Defaults()

	v := viper.New()
	v.SetDefault("domain_range_scale", defaults.DomainRangeScale)
	v.SetDefault("float_precision", string(defaults.FloatPrecision))
	v.SetDefault("ignore_numeric_warnings", defaults.IgnoreNumericWarnings)
	v.SetDefault("disable_caching", defaults.DisableCaching)
	v.SetDefault("disable_lazy_load", defaults.DisableLazyLoad)

	v.SetEnvPrefix("PRISM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.ErrorErr(log.CatConfig, "reading config file", err, "path", path)
		}
	}

	// Typed getters rather than Unmarshal: environment values arrive as
	// strings and the getters coerce them.
	s := Settings{
		DomainRangeScale:      v.GetString("domain_range_scale"),
		IgnoreNumericWarnings: v.GetBool("ignore_numeric_warnings"),
		DisableCaching:        v.GetBool("disable_caching"),
		DisableLazyLoad:       v.GetBool("disable_lazy_load"),
	}

	precision, err := ParsePrecision(v.GetString("float_precision"))
	if err != nil {
		log.Warn(log.CatConfig, "invalid float precision, using float64", "value", v.GetString("float_precision"))
	}
	s.FloatPrecision = precision

	return s
}

var (
	mu      sync.RWMutex
	current Settings
	loaded  bool
)

// Current returns the active settings, loading them on first use.
func Current() Settings {
	mu.RLock()
	if loaded {
		s := current
		mu.RUnlock()
		return s
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if !loaded {
		current = Load()
		loaded = true
	}
	return current
}

// Apply replaces the active settings.
func Apply(s Settings) {
	mu.Lock()
	current = s
	loaded = true
	mu.Unlock()
	log.Info(log.CatConfig, "settings applied",
		"scale", s.DomainRangeScale,
		"precision", s.FloatPrecision,
		"ignore_warnings", s.IgnoreNumericWarnings,
		"disable_caching", s.DisableCaching)
}

// SetIgnoreNumericWarnings toggles PrecisionWarning delivery.
func SetIgnoreNumericWarnings(ignore bool) {
	mu.Lock()
	defer mu.Unlock()
	if !loaded {
		current = Load()
		loaded = true
	}
	current.IgnoreNumericWarnings = ignore
}

// SetDisableCaching toggles memoization globally.
func SetDisableCaching(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	if !loaded {
		current = Load()
		loaded = true
	}
	current.DisableCaching = disable
}

// Reset discards the active settings so the next Current reloads them.
// Intended for tests.
func Reset() {
	mu.Lock()
	loaded = false
	current = Settings{}
	mu.Unlock()
}
