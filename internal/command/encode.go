package command

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/jwtkit/core/logger"
	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

// EncodeCommand returns the encode subcommand.
func EncodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "Create a signed token",
		Flags: append(keyFlags(),
			&cli.StringFlag{Name: "sub", Usage: "Subject claim"},
			&cli.StringFlag{Name: "iss", Usage: "Issuer claim (default: JWT_ISSUER)"},
			&cli.StringFlag{Name: "aud", Usage: "Audience claim (default: JWT_AUDIENCE)"},
			&cli.StringFlag{Name: "jti", Usage: "Token ID claim"},
			&cli.BoolFlag{Name: "jti-auto", Usage: "Generate a random token ID"},
			&cli.DurationFlag{Name: "ttl", Usage: "Lifetime; 0 omits exp (default: JWT_TTL)"},
			&cli.DurationFlag{Name: "nbf", Usage: "Delay before the token becomes valid"},
			&cli.BoolFlag{Name: "no-iat", Usage: "Omit the iat claim"},
			&cli.StringSliceFlag{Name: "claim", Aliases: []string{"c"}, Usage: "Extra claim as key=value; JSON values are kept as JSON"},
			&cli.StringSliceFlag{Name: "header", Usage: "Extra header field as key=value"},
		),
		Action: encodeToken,
	}
}

func encodeToken(c *cli.Context) error {
	s, cfg, err := newService(c)
	if err != nil {
		return err
	}

	headers, err := parseFields(c.StringSlice("header"))
	if err != nil {
		return fmt.Errorf("header: %w", err)
	}
	claims, err := parseFields(c.StringSlice("claim"))
	if err != nil {
		return fmt.Errorf("claim: %w", err)
	}
	s.SetHeader(headers...)

	now := time.Now()
	if !c.Bool("no-iat") {
		s.Iat(now.Unix())
	}

	ttl := cfg.TTL
	if c.IsSet("ttl") {
		ttl = c.Duration("ttl")
	}
	if ttl > 0 {
		s.Exp(now.Add(ttl).Unix())
	}
	if c.IsSet("nbf") {
		s.Nbf(now.Add(c.Duration("nbf")).Unix())
	}

	iss := firstNonEmpty(c.String("iss"), cfg.Issuer)
	if iss != "" {
		s.Iss(iss)
	}
	if aud := firstNonEmpty(c.String("aud"), cfg.Audience); aud != "" {
		s.Aud(aud)
	}
	if sub := c.String("sub"); sub != "" {
		s.Sub(sub)
	}

	jti := c.String("jti")
	if jti == "" && c.Bool("jti-auto") {
		jti = jwt.NewID()
	}
	if jti != "" {
		s.Jti(jti)
	}

	token, err := s.Encode(claims...)
	if err != nil {
		return err
	}

	getLogger(c).Debug("token issued",
		logger.Action("encode"),
		logger.Subject(c.String("sub")),
		logger.Issuer(iss),
		logger.TokenID(jti),
	)

	_, err = fmt.Fprintln(c.App.Writer, token)
	return err
}

// parseFields turns key=value pairs into fields in flag order.
func parseFields(pairs []string) ([]jwt.Field, error) {
	fields := make([]jwt.Field, 0, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		fields = append(fields, jwt.F(key, parseValue(raw)))
	}
	return fields, nil
}

// parseValue returns raw as JSON when it is a complete JSON value and as a
// plain string otherwise.
func parseValue(raw string) any {
	if !json.Valid([]byte(raw)) {
		return raw
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return raw
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
