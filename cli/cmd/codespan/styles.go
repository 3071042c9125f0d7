package main

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"codespan.dev/cli/cmd/codespan/cmdutil"
	"codespan.dev/cli/cmd/codespan/root"
	"codespan.dev/pkg/diagnostic"
	"codespan.dev/pkg/term"
	"codespan.dev/pkg/termcolor"
)

var (
	stylesAccent string
	stylesJSON   bool
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Show the style of every diagnostic element",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, out := mustSettings()
		if stylesAccent != "" {
			cfg.Accent = stylesAccent
		}
		styles, err := cfg.Styles()
		if err != nil {
			cmdutil.Fatal(err)
		}
		write := writeStyles
		if stylesJSON {
			write = func(w termcolor.WriteColor, styles *term.Styles) error { return writeStylesJSON(w, styles) }
		}
		if err := write(out, &styles); err != nil {
			cmdutil.Fatal(err)
		}
	},
}

func init() {
	stylesCmd.Flags().StringVar(&stylesAccent, "accent", "", "accent color overriding the color.accent setting")
	stylesCmd.Flags().BoolVar(&stylesJSON, "json", false, "print the palette as JSON")
	root.Cmd.AddCommand(stylesCmd)
}

type styleRole struct {
	name string
	set  func(sw *term.StylesWriter) error
	spec termcolor.ColorSpec
}

func styleRoles(styles *term.Styles) []styleRole {
	var roles []styleRole
	for _, sev := range diagnostic.Severities {
		roles = append(roles, styleRole{
			name: "header." + sev.String(),
			set:  func(sw *term.StylesWriter) error { return sw.SetHeader(sev) },
			spec: styles.Header(sev),
		})
	}
	roles = append(roles, styleRole{
		name: "header.message",
		set:  (*term.StylesWriter).SetHeaderMessage,
		spec: styles.HeaderMessageSpec(),
	})
	for _, sev := range diagnostic.Severities {
		roles = append(roles, styleRole{
			name: "label.primary." + sev.String(),
			set:  func(sw *term.StylesWriter) error { return sw.SetLabel(sev, diagnostic.Primary) },
			spec: styles.Label(sev, diagnostic.Primary),
		})
	}
	return append(roles,
		styleRole{
			name: "label.secondary",
			set:  func(sw *term.StylesWriter) error { return sw.SetLabel(diagnostic.Error, diagnostic.Secondary) },
			spec: styles.Label(diagnostic.Error, diagnostic.Secondary),
		},
		styleRole{name: "line_number", set: (*term.StylesWriter).SetLineNumber, spec: styles.LineNumberSpec()},
		styleRole{name: "source_border", set: (*term.StylesWriter).SetSourceBorder, spec: styles.SourceBorderSpec()},
		styleRole{name: "note_bullet", set: (*term.StylesWriter).SetNoteBullet, spec: styles.NoteBulletSpec()},
	)
}

// writeStyles writes one line per element: its name in its own style,
// followed by the style itself.
func writeStyles(w termcolor.WriteColor, styles *term.Styles) error {
	sw := term.NewStylesWriter(w, styles)
	roles := styleRoles(styles)

	width := 0
	for _, r := range roles {
		width = max(width, runewidth.StringWidth(r.name))
	}

	for _, r := range roles {
		if err := r.set(sw); err != nil {
			return err
		}
		if _, err := io.WriteString(sw, r.name); err != nil {
			return err
		}
		if err := sw.Reset(); err != nil {
			return err
		}
		pad := runewidth.FillRight("", width-runewidth.StringWidth(r.name))
		if _, err := fmt.Fprintf(sw, "%s  %s\n", pad, r.spec); err != nil {
			return err
		}
	}
	return sw.Flush()
}
