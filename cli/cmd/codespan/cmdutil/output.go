package cmdutil

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Oneof is a flag value restricted to a fixed list of names.
// An empty Value means the flag was not given.
type Oneof struct {
	Value     string
	Allowed   []string
	Flag      string
	FlagShort string
	Desc      string // usage desc
	TypeDesc  string // type description, defaults to the name of the flag
}

// AddFlag registers the flag on cmd.
func (o *Oneof) AddFlag(cmd *cobra.Command) {
	o.add(cmd, cmd.Flags())
}

// AddPersistentFlag registers the flag on cmd and all of its subcommands.
func (o *Oneof) AddPersistentFlag(cmd *cobra.Command) {
	o.add(cmd, cmd.PersistentFlags())
}

func (o *Oneof) add(cmd *cobra.Command, fs *pflag.FlagSet) {
	fs.AddFlag(&pflag.Flag{
		Name:      o.Flag,
		Shorthand: o.FlagShort,
		Usage:     o.Usage(),
		Value:     o,
		DefValue:  o.String(),
	})
	_ = cmd.RegisterFlagCompletionFunc(o.Flag, AutoCompleteFromStaticList(o.Allowed...))
}

func (o *Oneof) String() string {
	return o.Value
}

func (o *Oneof) Type() string {
	if o.TypeDesc != "" {
		return o.TypeDesc
	}
	return o.Flag
}

func (o *Oneof) Set(v string) error {
	if slices.Contains(o.Allowed, v) {
		o.Value = v
		return nil
	}

	var b strings.Builder
	b.WriteString("must be one of ")
	o.oneOf(&b)
	return errors.New(b.String())
}

func (o *Oneof) Usage() string {
	var b strings.Builder
	b.WriteString(o.Desc + ". One of (")
	o.oneOf(&b)
	b.WriteString(").")
	return b.String()
}

// Alternatives lists the alternatives in the format "a|b|c".
func (o *Oneof) Alternatives() string {
	return strings.Join(o.Allowed, "|")
}

func (o *Oneof) oneOf(b *strings.Builder) {
	n := len(o.Allowed)
	for i, s := range o.Allowed {
		if i > 0 {
			switch {
			case n == 2:
				b.WriteString(" or ")
			case i == n-1:
				b.WriteString(", or ")
			default:
				b.WriteString(", ")
			}
		}
		b.WriteString(strconv.Quote(s))
	}
}
