package jwt

import "time"

// Config provides environment-based configuration for a Service.
type Config struct {
	Secret           string        `env:"JWT_SECRET"`
	Issuer           string        `env:"JWT_ISSUER" envDefault:""`
	Audience         string        `env:"JWT_AUDIENCE" envDefault:""`
	TTL              time.Duration `env:"JWT_TTL" envDefault:"1h"`
	Leeway           time.Duration `env:"JWT_LEEWAY" envDefault:"0s"`
	MaxTokenSize     int           `env:"JWT_MAX_TOKEN_SIZE" envDefault:"0"`
	StrictTimeClaims bool          `env:"JWT_STRICT_TIME_CLAIMS" envDefault:"false"`
}

// NewFromConfig creates a Service from configuration. Only non-zero config
// values are turned into options; opts are applied after them and win.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	configOpts := make([]Option, 0, len(opts)+3)

	if cfg.Leeway > 0 {
		configOpts = append(configOpts, WithLeeway(cfg.Leeway))
	}
	if cfg.MaxTokenSize > 0 {
		configOpts = append(configOpts, WithMaxTokenSize(cfg.MaxTokenSize))
	}
	if cfg.StrictTimeClaims {
		configOpts = append(configOpts, WithStrictTimeClaims())
	}

	configOpts = append(configOpts, opts...)

	return NewFromString(cfg.Secret, configOpts...)
}
