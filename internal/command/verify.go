package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/jwtkit/core/logger"
	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

// VerifyCommand returns the verify subcommand.
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Check the signature and time claims of a token",
		ArgsUsage: "TOKEN",
		Flags:     keyFlags(),
		Action: func(c *cli.Context) error {
			raw, err := tokenArg(c)
			if err != nil {
				return err
			}
			if _, err := verifyToken(c, raw); err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, "valid")
			return err
		},
	}
}

// verifyToken decodes raw with full validation and logs rejections.
func verifyToken(c *cli.Context, raw string) (*jwt.Token, error) {
	s, _, err := newService(c)
	if err != nil {
		return nil, err
	}

	log := getLogger(c)
	tok, err := s.Verify(raw)
	if err != nil {
		log.Warn("token rejected",
			logger.Action(c.Command.Name),
			logger.Result("rejected"),
			logger.Reason(err),
			logger.Error(err),
		)
		return nil, err
	}

	log.Debug("token verified",
		logger.Action(c.Command.Name),
		logger.Result("valid"),
		logger.Claims(tok.Payload),
	)
	return tok, nil
}
