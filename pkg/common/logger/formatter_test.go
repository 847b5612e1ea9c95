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
	"runtime"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Format(t *testing.T) {
	f := &Formatter{TimestampFormat: time.RFC3339}
	entry := &log.Entry{
		Time:    time.Date(2022, 5, 1, 8, 0, 0, 0, time.UTC),
		Level:   log.InfoLevel,
		Message: "navigate",
		Data: log.Fields{
			"route":    "about",
			"attempts": 2,
			"auth":     false,
		},
	}
	out, err := f.Format(entry)
	assert.NoError(t, err)
	assert.Equal(t, "[2022-05-01T08:00:00Z][INFO][][attempts:2][auth:false][route:about] navigate\n", string(out))
}

func TestFormatter_Caller(t *testing.T) {
	logger := log.New()
	f := &Formatter{LogFormat: "[%file%] %msg%"}
	entry := log.NewEntry(logger)
	entry.Message = "hi"
	entry.Caller = &runtime.Frame{File: "/a/b/router.go", Line: 42}
	logger.SetReportCaller(true)

	out, err := f.Format(entry)
	assert.NoError(t, err)
	assert.Equal(t, "[router.go:42] hi", string(out))
}

func TestInitFileLogger(t *testing.T) {
	tests := []struct {
		name    string
		conf    LogConfig
		wantErr bool
	}{
		{
			name: "console only",
			conf: LogConfig{Level: "debug"},
		},
		{
			name: "rotate file",
			conf: LogConfig{Level: "info", Dir: t.TempDir(), FilePrefix: "{HOSTNAME}.log", Formatter: "json"},
		},
		{
			name:    "bad level",
			conf:    LogConfig{Level: "loud"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := log.New()
			err := InitFileLogger(logger, &tt.conf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			level, _ := log.ParseLevel(tt.conf.Level)
			assert.Equal(t, level, logger.GetLevel())
		})
	}
}
