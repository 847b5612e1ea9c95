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
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	hostNameHolder = "{HOSTNAME}"

	FormatterJSON = "json"
	FormatterText = "text"
)

type LogConfig struct {
	// Dir is where rotated log files go. Empty means console only.
	Dir             string `yaml:"dir"`
	FilePrefix      string `yaml:"filePrefix"`
	Level           string `yaml:"level"`
	MaxKeepDays     int    `yaml:"maxKeepDays"`
	MaxFileNum      int    `yaml:"maxFileNum"`
	MaxFileSizeInMB int    `yaml:"maxFileSizeInMB"`
	IsCompress      bool   `yaml:"isCompress"`
	Formatter       string `yaml:"formatter"`
}

func DefaultLogConfig() LogConfig {
	return LogConfig{
		Dir:             "",
		FilePrefix:      "jobpaste.log",
		Level:           "warn",
		MaxKeepDays:     7,
		MaxFileNum:      10,
		MaxFileSizeInMB: 50,
		IsCompress:      true,
	}
}

/*
 * InitStandardFileLogger - initialize the standard logger of the process
 * PARAMS:
 *   - logConf: config of log
 * RETURNS:
 * 	nil, if succeed
 *  error, if fail
 */
func InitStandardFileLogger(logConf *LogConfig) error {
	return InitFileLogger(log.StandardLogger(), logConf)
}

/*
 * InitFileLogger - set level and formatter of logger, and attach a rotated
 * file hook when logConf.Dir is not empty. Console output goes to stderr so
 * that it never mixes with command output on stdout.
 */
func InitFileLogger(logger *log.Logger, logConf *LogConfig) error {
	level, err := log.ParseLevel(logConf.Level)
	if err != nil {
		return fmt.Errorf("failed to parse logger level[%s]: %v", logConf.Level, err)
	}
	logger.SetLevel(level)
	logger.SetReportCaller(true)
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(newFormatter(logConf.Formatter))

	if logConf.Dir == "" {
		return nil
	}
	writer, err := newRotateWriter(logConf)
	if err != nil {
		return err
	}
	lfHook := lfshook.NewHook(lfshook.WriterMap{
		log.ErrorLevel: writer,
		log.FatalLevel: writer,
		log.PanicLevel: writer,
		log.DebugLevel: writer,
		log.InfoLevel:  writer,
		log.WarnLevel:  writer,
		log.TraceLevel: writer,
	}, logger.Formatter)
	logger.AddHook(lfHook)
	return nil
}

func newFormatter(name string) log.Formatter {
	switch {
	case strings.EqualFold(name, FormatterJSON):
		return &log.JSONFormatter{}
	case strings.EqualFold(name, FormatterText):
		return &log.TextFormatter{}
	default:
		return &Formatter{TimestampFormat: time.RFC3339Nano}
	}
}

func newRotateWriter(logConf *LogConfig) (io.Writer, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to get hostname: %v", err)
	}
	if err := os.MkdirAll(logConf.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log dir[%s]: %v", logConf.Dir, err)
	}
	prefix := strings.Replace(logConf.FilePrefix, hostNameHolder, hostname, -1)
	return &lumberjack.Logger{
		Filename:   filepath.Join(logConf.Dir, prefix),
		MaxSize:    logConf.MaxFileSizeInMB,
		MaxAge:     logConf.MaxKeepDays,
		MaxBackups: logConf.MaxFileNum,
		LocalTime:  true,
		Compress:   logConf.IsCompress,
	}, nil
}
