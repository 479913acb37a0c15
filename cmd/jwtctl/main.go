// Command jwtctl creates, inspects and verifies HS256 JSON Web Tokens.
package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/jwtkit/internal/command"
)

func main() {
	if err := command.App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
