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

package logger

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// [2006-01-02T15:04:05Z07:00][INFO][router.go:10][requestID:abc] message
	defaultLogFormat       = "[%time%][%lvl%][%file%]%customFields% %msg%\n"
	defaultTimestampFormat = time.RFC3339Nano
)

// Formatter implements logrus.Formatter interface.
type Formatter struct {
	TimestampFormat string
	// LogFormat accepts %time%, %lvl%, %file%, %customFields% and %msg%.
	LogFormat string
}

func (f *Formatter) Format(entry *log.Entry) ([]byte, error) {
	output := f.LogFormat
	if output == "" {
		output = defaultLogFormat
	}
	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}

	output = strings.Replace(output, "%time%", entry.Time.Format(timestampFormat), 1)
	output = strings.Replace(output, "%msg%", entry.Message, 1)
	output = strings.Replace(output, "%lvl%", strings.ToUpper(entry.Level.String()), 1)

	caller := ""
	if entry.HasCaller() {
		caller = fmt.Sprintf("%s:%d", filepath.Base(entry.Caller.File), entry.Caller.Line)
	}
	output = strings.Replace(output, "%file%", caller, 1)
	output = strings.Replace(output, "%customFields%", formatFields(entry.Data), 1)
	return []byte(output), nil
}

// fields are sorted so that the same entry always renders the same line
func formatFields(data log.Fields) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		switch v := data[k].(type) {
		case string:
			fmt.Fprintf(&sb, "[%s:%s]", k, v)
		case int:
			fmt.Fprintf(&sb, "[%s:%s]", k, strconv.Itoa(v))
		case bool:
			fmt.Fprintf(&sb, "[%s:%s]", k, strconv.FormatBool(v))
		case nil:
			fmt.Fprintf(&sb, "[%s]", k)
		default:
			fmt.Fprintf(&sb, "[%s:%v]", k, v)
		}
	}
	return sb.String()
}
