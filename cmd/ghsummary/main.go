package main

import (
	"errors"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/ghsummary/cmd/ghsummary/commands"
	foundation "git.home.luguber.info/inful/ghsummary/internal/foundation/errors"
	"git.home.luguber.info/inful/ghsummary/internal/version"
)

func main() {
	g := commands.NewGlobal(os.Stdin, os.Stdout, os.Stderr)
	cli := &commands.CLI{}
	parser, err := commands.New(cli, g, kong.Vars{"version": version.String()})
	if err != nil {
		foundation.NewCLIErrorAdapter(false, g.Logger).HandleError(
			foundation.InternalError("invalid command line definition").WithCause(err).Build())
		return
	}

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) {
			parser.FatalIfErrorf(err)
		}
		foundation.NewCLIErrorAdapter(cli.Verbose, g.Logger).HandleError(err)
		return
	}
	if err := ctx.Run(); err != nil {
		foundation.NewCLIErrorAdapter(cli.Verbose, g.Logger).HandleError(err)
	}
}
