package relay

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/veloxquery"
)

// Default result sizes applied by NewWindow.
const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Config bounds the windows a connection may request.
//
// Example paging.yml:
//
//	default_limit: 20
//	max_limit: 100
//	cursor_prefix: "arrayconnection:"
type Config struct {
	// DefaultLimit caps the window when neither first nor last is given.
	// Zero returns the whole remaining range.
	DefaultLimit int `yaml:"default_limit"`

	// MaxLimit is the largest accepted first or last. Zero disables the check.
	MaxLimit int `yaml:"max_limit"`

	// CursorPrefix overrides the cursor namespace tag.
	CursorPrefix string `yaml:"cursor_prefix,omitempty"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: DefaultLimit,
		MaxLimit:     MaxLimit,
		CursorPrefix: DefaultPrefix,
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.DefaultLimit < 0 {
		errs = append(errs, veloxquery.NewValidationError("default_limit", errors.New("must not be negative")))
	}
	if c.MaxLimit < 0 {
		errs = append(errs, veloxquery.NewValidationError("max_limit", errors.New("must not be negative")))
	}
	if c.MaxLimit > 0 && c.DefaultLimit > c.MaxLimit {
		errs = append(errs, veloxquery.NewValidationError("default_limit",
			fmt.Errorf("%d exceeds max_limit %d", c.DefaultLimit, c.MaxLimit)))
	}
	return veloxquery.NewAggregateError(errs...)
}

// Codec returns the cursor codec described by the configuration.
func (c Config) Codec() (*Codec, error) {
	if c.CursorPrefix == "" || c.CursorPrefix == DefaultPrefix {
		return defaultCodec, nil
	}
	return NewCodec(WithPrefix(c.CursorPrefix))
}

// ParseConfig reads a YAML document on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("relay: parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the YAML configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("relay: reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
