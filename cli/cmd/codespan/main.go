// Command codespan inspects the styles, glyphs and settings used to render diagnostics.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codespan.dev/cli/cmd/codespan/cmdutil"
	"codespan.dev/cli/cmd/codespan/root"
	"codespan.dev/internal/userconfig"
	"codespan.dev/pkg/termcolor"

	_ "codespan.dev/cli/cmd/codespan/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := root.Cmd.Execute(); err != nil {
		cmdutil.Fatal(err)
	}
}

// mustSettings returns the effective settings and the sink for stdout,
// exiting on error.
func mustSettings() (*userconfig.Config, termcolor.WriteColor) {
	cfg, err := root.Settings()
	if err != nil {
		cmdutil.Fatal(err)
	}
	out, err := root.Stdout(cfg)
	if err != nil {
		cmdutil.Fatal(err)
	}
	return cfg, out
}
