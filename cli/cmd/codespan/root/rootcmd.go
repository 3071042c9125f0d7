package root

import (
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"codespan.dev/cli/cmd/codespan/cmdutil"
	"codespan.dev/internal/userconfig"
	"codespan.dev/pkg/termcolor"
)

var (
	Verbosity int

	// ConfigFile is an extra settings file given with --config.
	ConfigFile string

	// ColorFlag is the --color override of the color.choice setting.
	ColorFlag = cmdutil.Oneof{
		Allowed:  termcolor.ColorChoiceNames(),
		Flag:     "color",
		Desc:     "When to color output, overriding the color.choice setting",
		TypeDesc: "when",
	}
)

var preRuns []func(cmd *cobra.Command, args []string)

// AddPreRun adds a function to be executed before the command runs.
func AddPreRun(f func(cmd *cobra.Command, args []string)) {
	preRuns = append(preRuns, f)
}

var Cmd = &cobra.Command{
	Use:           "codespan",
	Short:         "codespan shows how diagnostics are styled on this terminal",
	SilenceErrors: true, // errors are displayed by main
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if Verbosity == 1 {
			level = zerolog.DebugLevel
		} else if Verbosity >= 2 {
			level = zerolog.TraceLevel
		}
		log.Logger = log.Logger.Level(level)

		if ColorFlag.Value == termcolor.Never.String() {
			color.NoColor = true
		}

		for _, f := range preRuns {
			f(cmd, args)
		}
	},
}

func init() {
	Cmd.PersistentFlags().CountVarP(&Verbosity, "verbose", "v", "verbose output")
	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "settings file read after the user's settings files")
	ColorFlag.AddPersistentFlag(Cmd)
}

// Settings returns the effective settings: the user's settings files,
// then --config, then --color.
func Settings() (*userconfig.Config, error) {
	return settings(userconfig.Global)
}

// ReloadSettings is like Settings but reads the settings files again.
func ReloadSettings() (*userconfig.Config, error) {
	return settings(userconfig.Load)
}

// SettingsFiles lists the files Settings reads.
func SettingsFiles() []string {
	files := slices.Clone(userconfig.UserPaths())
	if ConfigFile != "" {
		files = append(files, ConfigFile)
	}
	return files
}

func settings(load func() (*userconfig.Config, error)) (*userconfig.Config, error) {
	var (
		cfg *userconfig.Config
		err error
	)
	if ConfigFile != "" {
		cfg, err = userconfig.WithFile(ConfigFile)
	} else {
		cfg, err = load()
	}
	if err != nil {
		return nil, err
	}

	// Global is shared; never modify it.
	out := *cfg
	if ColorFlag.Value != "" {
		out.ColorChoice = ColorFlag.Value
	}
	log.Debug().Str("color", out.ColorChoice).Msg("resolved settings")
	return &out, nil
}

// Stdout returns the color sink for standard output under cfg.
func Stdout(cfg *userconfig.Config) (termcolor.WriteColor, error) {
	choice, err := cfg.Color()
	if err != nil {
		return nil, err
	}
	return termcolor.NewStandardStream(os.Stdout, choice), nil
}
