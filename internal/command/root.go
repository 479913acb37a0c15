// Package command provides the command definitions for jwtctl.
//
// It uses urfave/cli/v2 for command parsing. Signing secrets come from the
// --secret flag or JWT_SECRET (optionally via a .env file).
package command

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/jwtkit/core/config"
	"github.com/dmitrymomot/jwtkit/core/logger"
	"github.com/dmitrymomot/jwtkit/pkg/jwt"
	"github.com/dmitrymomot/jwtkit/pkg/secrets"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// ErrNoSecret is returned when neither --secret nor JWT_SECRET is set.
var ErrNoSecret = errors.New("no signing secret: pass --secret or set JWT_SECRET")

const loggerKey = "logger"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:     "jwtctl",
		Usage:    "Create, inspect and verify HS256 JSON Web Tokens",
		Version:  fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime),
		Flags:    globalFlags(),
		Metadata: map[string]any{},
		Commands: []*cli.Command{
			SecretCommand(),
			EncodeCommand(),
			DecodeCommand(),
			VerifyCommand(),
		},
		Before: func(c *cli.Context) error {
			opts := []logger.Option{
				logger.WithLevel(logger.ParseLevel(c.String("log-level"))),
				logger.WithOutput(c.App.ErrWriter),
				logger.WithAttr(logger.Component("jwtctl")),
			}
			switch c.String("log-format") {
			case "json":
				opts = append(opts, logger.WithJSONFormatter())
			case "text":
				opts = append(opts, logger.WithTextFormatter())
			default:
				return fmt.Errorf("unknown log format %q", c.String("log-format"))
			}
			c.App.Metadata[loggerKey] = logger.New(opts...)
			return nil
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level: debug, info, warn, error",
			EnvVars: []string{"JWTCTL_LOG_LEVEL"},
			Value:   "warn",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
			Value: "text",
		},
	}
}

// keyFlags are shared by every command that signs or verifies.
func keyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "secret",
			Aliases: []string{"s"},
			Usage:   "Signing secret (default: JWT_SECRET)",
		},
		&cli.StringFlag{
			Name:    "tenant",
			Aliases: []string{"t"},
			Usage:   "Derive a per-tenant signing key from the secret",
		},
	}
}

// getLogger retrieves the logger set up in Before.
func getLogger(c *cli.Context) *slog.Logger {
	if l, ok := c.App.Metadata[loggerKey].(*slog.Logger); ok {
		return l
	}
	return logger.Discard()
}

// loadConfig reads jwt.Config from the environment and applies --secret.
func loadConfig(c *cli.Context) (jwt.Config, error) {
	var cfg jwt.Config
	if err := config.Parse(&cfg); err != nil {
		return cfg, err
	}
	if s := c.String("secret"); s != "" {
		cfg.Secret = s
	}
	if cfg.Secret == "" {
		return cfg, ErrNoSecret
	}
	if tenant := c.String("tenant"); tenant != "" {
		key, err := secrets.Derive([]byte(cfg.Secret), tenant)
		if err != nil {
			return cfg, err
		}
		cfg.Secret = string(key)
	}
	return cfg, nil
}

// newService builds a codec from loadConfig.
func newService(c *cli.Context) (*jwt.Service, jwt.Config, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, cfg, err
	}
	s, err := jwt.NewFromConfig(cfg)
	if err != nil {
		return nil, cfg, err
	}
	return s, cfg, nil
}

// tokenArg returns the single positional TOKEN argument.
func tokenArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one TOKEN argument, got %d", c.NArg())
	}
	return c.Args().First(), nil
}
