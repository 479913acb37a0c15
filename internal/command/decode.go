package command

import (
	"encoding/json"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

// DecodeCommand returns the decode subcommand.
func DecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Print the header, payload and signature of a token",
		ArgsUsage: "TOKEN",
		Flags: append(keyFlags(),
			&cli.BoolFlag{Name: "no-verify", Usage: "Skip signature and time claim checks; no secret needed"},
		),
		Action: decodeToken,
	}
}

func decodeToken(c *cli.Context) error {
	raw, err := tokenArg(c)
	if err != nil {
		return err
	}

	var tok *jwt.Token
	if c.Bool("no-verify") {
		tok, err = jwt.DecodeUnverified(raw)
	} else {
		tok, err = verifyToken(c, raw)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(tok)
}
