/*
Copyright (c) 2022 PaddlePaddle Authors. All Rights Reserve.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/ghodss/yaml"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/jobpaste/jobpaste/pkg/flash"
	"github.com/jobpaste/jobpaste/pkg/model"
)

const (
	none = "-"

	outputTable = "table"
	outputYAML  = "yaml"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   outputTable,
		Usage:   "output format, table or yaml",
	}
}

type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) Table(header []string, rows [][]string) error {
	data := pterm.TableData{header}
	data = append(data, rows...)
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(p.w, out)
	return nil
}

// Fields prints label/value pairs, one per line.
func (p *printer) Fields(pairs [][2]string) error {
	data := make(pterm.TableData, 0, len(pairs))
	for _, pair := range pairs {
		data = append(data, []string{pair[0], pair[1]})
	}
	out, err := pterm.DefaultTable.WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(p.w, out)
	return nil
}

// Render prints v as yaml when asked to, and runs table otherwise. The yaml
// keys are the api field names.
func (p *printer) Render(c *cli.Context, v interface{}, table func() error) error {
	switch format := c.String("output"); format {
	case outputTable, "":
		return table()
	case outputYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Fprint(p.w, string(out))
		return nil
	default:
		return fmt.Errorf("output format[%s] not supported, must be %s or %s", format, outputTable, outputYAML)
	}
}

func (p *printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) Flash(store *flash.Store) {
	msg, ok := store.Consume()
	if !ok {
		return
	}
	var prefix pterm.PrefixPrinter
	switch msg.Level {
	case flash.LevelSuccess:
		prefix = pterm.Success
	case flash.LevelWarn:
		prefix = pterm.Warning
	case flash.LevelError:
		prefix = pterm.Error
	default:
		prefix = pterm.Info
	}
	fmt.Fprint(p.w, prefix.Sprintln(msg.Text))
}

func salary(job *model.Job) string {
	min, max := job.SalaryRange()
	switch {
	case min == 0 && max == 0:
		return none
	case max == 0:
		return humanize.Comma(min) + "+"
	case min == 0:
		return "≤ " + humanize.Comma(max)
	}
	return humanize.Comma(min) + " - " + humanize.Comma(max)
}

func str(s *string) string {
	if s == nil {
		return none
	}
	return orNone(*s)
}

func orNone(s string) string {
	if s == "" {
		return none
	}
	return s
}

func num(i *int) string {
	if i == nil {
		return none
	}
	return humanize.Comma(int64(*i))
}
