// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"quakemap/mapformat"
	"quakemap/model"
	"quakemap/pack"
)

type options struct {
	format  string
	to      string
	out     string
	report  string
	mode    string
	verbose bool
}

// Execute runs the command line.
func Execute() error {
	return NewCommand().Execute()
}

func NewCommand() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "quakemap",
		Short:         "quakemap reads and converts Quake engine .map files",
		Long:          `quakemap parses .map files of the Quake engine family, reports problems and converts between the map formats.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&o.format, "format", "f", "", "map format of the input, detected if empty")
	root.PersistentFlags().StringVar(&o.mode, "mode", "entities", "input content: entities, brushes or faces")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable verbose output")

	root.AddCommand(detectCommand(o))
	root.AddCommand(checkCommand(o))
	root.AddCommand(convertCommand(o))
	root.AddCommand(dumpCommand(o))
	root.AddCommand(listCommand(o))
	return root
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseFormat(name string) (mapformat.Format, error) {
	if name == "" {
		return mapformat.Unknown, nil
	}
	if f := mapformat.FromName(name); f != mapformat.Unknown {
		return f, nil
	}
	var names []string
	for _, f := range mapformat.Formats() {
		names = append(names, f.String())
	}
	return mapformat.Unknown, errors.Errorf("unknown map format %q, known formats are %s", name, strings.Join(names, ", "))
}

func parseMode(name string) (model.Mode, error) {
	for _, m := range []model.Mode{model.Entities, model.Brushes, model.Faces} {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown mode %q", name)
}

// readOptions returns the model options for the flags.
func (o *options) readOptions() (model.Options, error) {
	var r model.Options
	var err error
	if r.Mode, err = parseMode(o.mode); err != nil {
		return r, err
	}
	if r.Source, err = parseFormat(o.format); err != nil {
		return r, err
	}
	r.Target, err = parseFormat(o.to)
	return r, err
}

func readFile(name string) (string, error) {
	data, err := pack.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
