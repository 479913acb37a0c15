package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

// SecretCommand returns the secret subcommand.
func SecretCommand() *cli.Command {
	return &cli.Command{
		Name:  "secret",
		Usage: "Generate a random hex-encoded signing secret",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "bytes",
				Aliases: []string{"n"},
				Usage:   "Number of random bytes",
				Value:   jwt.DefaultSecretSize,
			},
		},
		Action: secretCreate,
	}
}

func secretCreate(c *cli.Context) error {
	secret, err := jwt.CreateSecret(c.Int("bytes"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, secret)
	return err
}
