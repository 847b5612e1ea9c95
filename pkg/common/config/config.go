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

package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/jobpaste/jobpaste/pkg/common/logger"
)

const (
	EnvAPIBaseURL = "JOBPASTE_API_BASE_URL"
	EnvAPIHost    = "JOBPASTE_API_HOST"
	EnvDataDir    = "JOBPASTE_DATA_DIR"
	EnvConfigPath = "JOBPASTE_CONFIG"

	DefaultAPIBaseURL       = "/api"
	DefaultAPIHost          = "http://127.0.0.1:8000"
	DefaultTimeoutInSeconds = 10

	StorageDriverDisk = "disk"
	StorageDriverMem  = "mem"

	LayoutNested = "nested"
	LayoutFlat   = "flat"
)

var (
	GlobalConfig *Config

	DefaultConfPath = "./config/jobpaste.yaml"
)

type Config struct {
	Log     logger.LogConfig `yaml:"log"`
	API     APIConfig        `yaml:"api"`
	Storage StorageConfig    `yaml:"storage"`
	Router  RouterConfig     `yaml:"router"`
	Web     WebConfig        `yaml:"web"`
}

type APIConfig struct {
	// Host is the origin a relative BaseURL is resolved against.
	Host             string `yaml:"host"`
	BaseURL          string `yaml:"baseURL"`
	TimeoutInSeconds int    `yaml:"timeoutInSeconds"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Dir    string `yaml:"dir"`
}

type RouterConfig struct {
	Layout      string `yaml:"layout"`
	LandingPath string `yaml:"landingPath"`
	CacheSize   int    `yaml:"cacheSize"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func Default() *Config {
	return &Config{
		Log: logger.DefaultLogConfig(),
		API: APIConfig{
			Host:             DefaultAPIHost,
			BaseURL:          DefaultAPIBaseURL,
			TimeoutInSeconds: DefaultTimeoutInSeconds,
		},
		Storage: StorageConfig{
			Driver: StorageDriverDisk,
			Dir:    defaultDataDir(),
		},
		Router: RouterConfig{
			Layout:    LayoutNested,
			CacheSize: 128,
		},
		Web: WebConfig{
			Host: "127.0.0.1",
			Port: 8765,
		},
	}
}

// Endpoint joins a relative BaseURL onto Host. An absolute BaseURL is used as is.
func (c APIConfig) Endpoint() (string, error) {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		base = DefaultAPIBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid api base url[%s]: %v", base, err)
	}
	if u.IsAbs() {
		return strings.TrimRight(u.String(), "/"), nil
	}
	host, err := url.Parse(c.Host)
	if err != nil || !host.IsAbs() {
		return "", fmt.Errorf("api base url[%s] is relative and api host[%s] is not an absolute url", base, c.Host)
	}
	return strings.TrimRight(host.ResolveReference(u).String(), "/"), nil
}

func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutInSeconds <= 0 {
		return DefaultTimeoutInSeconds * time.Second
	}
	return time.Duration(c.TimeoutInSeconds) * time.Second
}

func (c WebConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate checks enumerations and fills derived defaults.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverDisk, StorageDriverMem:
	default:
		return fmt.Errorf("storage driver[%s] not supported, must be %s or %s", c.Storage.Driver, StorageDriverDisk, StorageDriverMem)
	}
	if c.Storage.Driver == StorageDriverDisk && c.Storage.Dir == "" {
		return fmt.Errorf("storage dir is required by driver[%s]", StorageDriverDisk)
	}
	switch c.Router.Layout {
	case LayoutNested, LayoutFlat:
	case "":
		c.Router.Layout = LayoutNested
	default:
		return fmt.Errorf("router layout[%s] not supported, must be %s or %s", c.Router.Layout, LayoutNested, LayoutFlat)
	}
	if _, err := c.API.Endpoint(); err != nil {
		return err
	}
	return nil
}

func defaultDataDir() string {
	return filepath.Join(".", ".jobpaste")
}
