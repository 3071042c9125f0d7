// Package config implements the "codespan config" command.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"codespan.dev/cli/cmd/codespan/cmdutil"
	"codespan.dev/cli/cmd/codespan/root"
	"codespan.dev/internal/userconfig"
)

var (
	viewAllSettings bool
	viewTOML        bool
	viewPaths       bool
)

var autoCompleteConfigKeys = cmdutil.AutoCompleteFromStaticList(userconfig.Keys()...)

var longDocs = `Shows the settings used to render diagnostics.

Settings are read from the first files that exist of:

    ` + strings.Join(userconfig.UserPaths(), "\n    ") + `

followed by the file given with ` + bt("--config") + `, if any.

Use ` + bt("codespan config <key>") + ` to show a single setting,
` + bt("--all") + ` to show every setting and ` + bt("--toml") + ` to show them as a settings file.

Available settings are:

` + userconfig.Docs()

var errNoKey = errors.New("no settings key given")

var configCmd = &cobra.Command{
	Use:   "config [<key>]",
	Short: "Show a setting",
	Long:  longDocs,
	Args:  cobra.MaximumNArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		if viewPaths {
			for _, p := range userconfig.UserPaths() {
				fmt.Println(p)
			}
			return
		}

		cfg, err := root.Settings()
		if err != nil {
			cmdutil.Fatal(err)
		}
		err = show(os.Stdout, cfg, args)
		if errors.Is(err, errNoKey) {
			_ = cmd.Usage()
			os.Exit(1)
		} else if err != nil {
			cmdutil.Fatal(err)
		}
	},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return autoCompleteConfigKeys(cmd, args, toComplete)
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
}

func init() {
	configCmd.Flags().BoolVar(&viewAllSettings, "all", false, "view all settings")
	configCmd.Flags().BoolVar(&viewTOML, "toml", false, "view all settings as TOML")
	configCmd.Flags().BoolVar(&viewPaths, "paths", false, "list the settings files that are read")
	configCmd.MarkFlagsMutuallyExclusive("all", "toml", "paths")

	root.Cmd.AddCommand(configCmd)
}

func show(w io.Writer, cfg *userconfig.Config, args []string) error {
	if viewAllSettings || viewTOML {
		if len(args) > 0 {
			return errors.New("cannot specify a settings key when viewing all settings")
		}
		s := cfg.Render()
		if viewTOML {
			var err error
			if s, err = cfg.TOML(); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w, strings.TrimSuffix(s, "\n"))
		return err
	}

	if len(args) == 0 {
		return errNoKey
	}
	val, ok := cfg.GetByKey(args[0])
	if !ok {
		if suggestion, ok := userconfig.SuggestKey(args[0]); ok {
			return errors.Errorf("unknown key %q (did you mean %q?)", args[0], suggestion)
		}
		return errors.Errorf("unknown key %q", args[0])
	}
	_, err := fmt.Fprintf(w, "%v\n", val)
	return err
}

// bt renders a backtick-enclosed string.
func bt(val string) string {
	return fmt.Sprintf("`%s`", val)
}
