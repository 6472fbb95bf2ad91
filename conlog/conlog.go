// SPDX-License-Identifier: GPL-2.0-or-later

package conlog

import (
	"context"
	"fmt"
	"log/slog"
)

type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s Severity) level() slog.Level {
	if s == Error {
		return slog.LevelError
	}
	return slog.LevelWarn
}

type Diagnostic struct {
	Severity Severity `yaml:"severity"`
	Line     int      `yaml:"line"`
	Msg      string   `yaml:"message"`
}

// Log collects the diagnostics of one parse. Every diagnostic is also sent
// to the logger, if there is one.
type Log struct {
	Source      string
	Diagnostics []Diagnostic
	logger      *slog.Logger
}

func New(source string, l *slog.Logger) *Log {
	return &Log{Source: source, logger: l}
}

func (l *Log) add(s Severity, line int, msg string) {
	l.Diagnostics = append(l.Diagnostics, Diagnostic{Severity: s, Line: line, Msg: msg})
	if l.logger != nil {
		l.logger.Log(context.Background(), s.level(), msg, slog.String("file", l.Source), slog.Int("line", line))
	}
}

func (l *Log) Warn(line int, msg string) {
	l.add(Warning, line, msg)
}

func (l *Log) Error(line int, msg string) {
	l.add(Error, line, msg)
}

func (l *Log) count(s Severity) int {
	n := 0
	for _, d := range l.Diagnostics {
		if d.Severity == s {
			n++
		}
	}
	return n
}

func (l *Log) Warnings() int {
	return l.count(Warning)
}

func (l *Log) Errors() int {
	return l.count(Error)
}

// Format returns d in the "file:line: severity: message" form compilers use.
func (l *Log) Format(d Diagnostic) string {
	return fmt.Sprintf("%s:%d: %v: %s", l.Source, d.Line, d.Severity, d.Msg)
}
