// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/yaml.v3"

	"quakemap/conlog"
	"quakemap/mapformat"
	"quakemap/mapwriter"
	"quakemap/model"
	"quakemap/pack"
)

func detectCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file]",
		Short: "Print the game and map format of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(o.mode)
			if err != nil {
				return err
			}
			text, err := readFile(args[0])
			if err != nil {
				return err
			}
			game, f := mapformat.Hints(text)
			how := "header"
			if f == mapformat.Unknown {
				var ok bool
				if f, ok = model.Sniff(text, mode); !ok {
					return errors.Errorf("%s: cannot detect the map format", args[0])
				}
				how = "content"
			}
			out := cmd.OutOrStdout()
			if game != "" {
				fmt.Fprintf(out, "game: %s\n", game)
			}
			fmt.Fprintf(out, "format: %v (from %s)\n", f, how)
			return nil
		},
	}
}

type report struct {
	File        string              `yaml:"file"`
	Format      string              `yaml:"format"`
	Stats       model.Stats         `yaml:"stats"`
	Diagnostics []conlog.Diagnostic `yaml:"diagnostics"`
}

func checkCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse a map file and report problems",
		Long:  `Parse a map file and print its size and every warning and error. Exits with an error if an error was reported.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.report != "text" && o.report != "yaml" {
				return errors.Errorf("unknown report format %q", o.report)
			}
			ro, err := o.readOptions()
			if err != nil {
				return err
			}
			var l *conlog.Log
			if o.verbose {
				l = conlog.New(args[0], o.logger(cmd.ErrOrStderr()))
			} else {
				l = conlog.New(args[0], nil)
			}
			text, err := readFile(args[0])
			if err != nil {
				return err
			}
			if ro.Source == mapformat.Unknown {
				if ro.Source, err = model.Detect(text, ro.Mode, l); err != nil {
					return errors.Wrapf(err, "File %s", args[0])
				}
			}
			m, err := model.Read(text, ro, l)
			if err != nil {
				return errors.Wrapf(err, "File %s", args[0])
			}
			r := report{
				File:        args[0],
				Format:      ro.Source.String(),
				Stats:       m.Stats(),
				Diagnostics: l.Diagnostics,
			}
			if err := writeReport(cmd.OutOrStdout(), o.report, l, r); err != nil {
				return err
			}
			if n := l.Errors(); n > 0 {
				return errors.Errorf("%s: %d errors", args[0], n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&o.report, "report", "text", "report format: text or yaml")
	return cmd
}

func writeReport(w io.Writer, format string, l *conlog.Log, r report) error {
	if format == "yaml" {
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(r); err != nil {
			return err
		}
		return e.Close()
	}
	s := r.Stats
	fmt.Fprintf(w, "%s: %d entities, %d brushes, %d patches, %d faces\n",
		r.File, s.Entities, s.Brushes, s.Patches, s.Faces)
	for _, d := range r.Diagnostics {
		fmt.Fprintln(w, l.Format(d))
	}
	return nil
}

func convertCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a map file to another map format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ro, err := o.readOptions()
			if err != nil {
				return err
			}
			if ro.Target == mapformat.Unknown {
				return errors.New("the target format is required")
			}
			log := o.logger(cmd.ErrOrStderr())
			text, err := readFile(args[0])
			if err != nil {
				return err
			}
			m, err := model.Read(text, ro, conlog.New(args[0], log))
			if err != nil {
				return errors.Wrapf(err, "File %s", args[0])
			}
			w := mapwriter.Writer{Format: ro.Target}
			if g, ok := mapformat.FindGame(mapformat.ReadGameComment(text)); ok && g.Supports(ro.Target) {
				w.Game = g.Name
			}
			log.Debug("converting", "file", args[0], "to", ro.Target, "entities", len(m.Entities))

			out := cmd.OutOrStdout()
			if o.out != "" {
				f, err := os.Create(o.out)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			if err := w.Write(out, m); err != nil {
				return errors.Wrapf(err, "cannot write %s", o.out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&o.to, "to", "t", "", "map format to convert to")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "output file, standard output if empty")
	return cmd
}

func dumpCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [file]",
		Short: "Print the parsed map as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ro, err := o.readOptions()
			if err != nil {
				return err
			}
			m, err := model.Load(args[0], ro, conlog.New(args[0], o.logger(cmd.ErrOrStderr())))
			if err != nil {
				return err
			}
			s, err := m.Struct()
			if err != nil {
				return err
			}
			b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}

func listCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [pak]",
		Short: "List the map files in a pak archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pack.NewPackReader(args[0])
			if err != nil {
				return err
			}
			defer p.Close()
			for _, n := range p.Names(".map") {
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s%s\n", args[0], pack.Separator, n)
			}
			return nil
		},
	}
}
