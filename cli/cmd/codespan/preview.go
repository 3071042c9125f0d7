package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"codespan.dev/cli/cmd/codespan/cmdutil"
	"codespan.dev/cli/cmd/codespan/root"
	"codespan.dev/internal/userconfig"
	"codespan.dev/pkg/diagnostic"
	"codespan.dev/pkg/term"
	"codespan.dev/pkg/termcolor"
	"codespan.dev/pkg/watcher"
)

var (
	previewASCII   bool
	previewWatch   bool
	previewDisplay = cmdutil.Oneof{
		Allowed: []string{term.Rich.String(), term.Medium.String(), term.Short.String()},
		Flag:    "display",
		Desc:    "Display style, overriding the display.style setting",
	}
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a sample diagnostic with the effective settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		settings, out := mustSettings()
		if err := renderPreview(out, settings); err != nil {
			cmdutil.Fatal(err)
		}
		if !previewWatch {
			return
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		err := watchSettings(ctx, func() error {
			settings, err := root.ReloadSettings()
			if err != nil {
				// Keep watching; the file may be mid-edit.
				log.Error().Err(err).Msg("unable to load settings")
				return nil
			}
			if err := termcolor.ClearScreen(out); err != nil {
				return err
			}
			return renderPreview(out, settings)
		})
		if err != nil {
			cmdutil.Fatal(err)
		}
	},
}

func init() {
	previewCmd.Flags().BoolVar(&previewASCII, "ascii", false, "use the ascii character set")
	previewCmd.Flags().BoolVarP(&previewWatch, "watch", "w", false, "render again whenever a settings file changes")
	previewDisplay.AddFlag(previewCmd)
	root.Cmd.AddCommand(previewCmd)
}

// renderPreview renders the sample diagnostic to out under settings,
// applying the command's flags.
func renderPreview(out termcolor.WriteColor, settings *userconfig.Config) error {
	if previewDisplay.Value != "" {
		settings.DisplayStyle = previewDisplay.Value
	}
	if previewASCII {
		settings.Chars = term.ASCIIName
	}

	cfg, err := settings.TermConfig()
	if err != nil {
		return err
	}
	styles, err := settings.Styles()
	if err != nil {
		return err
	}

	sw := term.NewStylesWriter(out, &styles)
	if err := writePreview(sw, cfg); err != nil {
		return err
	}
	return sw.Flush()
}

// watchSettings calls render after every change to a settings file,
// until ctx is done.
func watchSettings(ctx context.Context, render func() error) error {
	w, err := watcher.New(100*time.Millisecond, root.SettingsFiles()...)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.EventsReady:
			batch := w.GetEventsBatch()
			if batch == nil {
				continue
			}
			for _, ev := range batch.Events() {
				log.Info().Str("path", ev.Path).Str("event", ev.EventType).Msg("settings changed")
			}
			if err := render(); err != nil {
				return err
			}
		}
	}
}

// The sample diagnostic. Columns are 1-based.
const (
	sampleFile      = "src/main.rs"
	sampleLine      = 2
	sampleSource    = `    let x: Int = "five";`
	sampleCode      = "error[E0308]"
	sampleMessage   = "mismatched types"
	sampleTypeCol   = 12
	sampleTypeLen   = 3
	sampleTypeLabel = "expected due to this"
	sampleValueCol  = 18
	sampleValueLen  = 6
	sampleLabel     = "expected `Int`, found `String`"
	sampleNote      = "help: convert the string with `parse`"
)

// printer writes styled segments to a WriteStyle, keeping the first error.
type printer struct {
	w   term.WriteStyle
	err error
}

func (p *printer) print(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) styled(set func() error, s string) {
	if p.err == nil {
		p.err = set()
	}
	p.print(s)
	if p.err == nil {
		p.err = p.w.Reset()
	}
}

// writePreview renders the sample diagnostic in the display style of cfg.
// The layout is fixed; only the characters and styles vary.
func writePreview(w term.WriteStyle, cfg term.Config) error {
	p := &printer{w: w}
	sev := diagnostic.Error
	location := sampleFile + ":" + strconv.Itoa(sampleLine) + ":" + strconv.Itoa(sampleValueCol)

	header := func() {
		p.styled(func() error { return w.SetHeader(sev) }, sampleCode)
		p.styled(w.SetHeaderMessage, ": "+sampleMessage)
		p.print("\n")
	}

	switch cfg.DisplayStyle {
	case term.Short:
		p.print(location + ": ")
		header()
		return p.err

	case term.Medium:
		p.print(location + ": ")
		header()
		p.styled(w.SetNoteBullet, string(cfg.Chars.NoteBullet))
		p.print(" " + sampleNote + "\n\n")
		return p.err
	}

	ch := cfg.Chars
	gutter := strings.Repeat(" ", len(strconv.Itoa(sampleLine))+1)
	border := func() { p.styled(w.SetSourceBorder, string(ch.SourceBorderLeft)) }
	indent := strings.Repeat(" ", sampleTypeCol-1)
	secondary := func() error { return w.SetLabel(sev, diagnostic.Secondary) }

	header()

	p.print(gutter)
	p.styled(w.SetSourceBorder, ch.SnippetStart)
	p.print(" " + location + "\n")

	p.print(gutter)
	border()
	p.print("\n")

	p.styled(w.SetLineNumber, strconv.Itoa(sampleLine))
	p.print(" ")
	border()
	p.print(" " + sampleSource + "\n")

	p.print(gutter)
	border()
	p.print(" " + indent)
	p.styled(secondary, strings.Repeat(string(ch.SingleSecondaryCaret), sampleTypeLen))
	p.print(strings.Repeat(" ", sampleValueCol-sampleTypeCol-sampleTypeLen))
	p.styled(func() error { return w.SetLabel(sev, diagnostic.Primary) },
		strings.Repeat(string(ch.SinglePrimaryCaret), sampleValueLen)+" "+sampleLabel)
	p.print("\n")

	p.print(gutter)
	border()
	p.print(" " + indent)
	p.styled(secondary, string(ch.PointerLeft))
	p.print("\n")

	p.print(gutter)
	border()
	p.print(" " + indent)
	p.styled(secondary, sampleTypeLabel)
	p.print("\n")

	p.print(gutter)
	border()
	p.print("\n")

	p.print(gutter)
	p.styled(w.SetNoteBullet, string(ch.NoteBullet))
	p.print(" " + sampleNote + "\n\n")
	return p.err
}
