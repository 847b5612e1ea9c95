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

package flag

import (
	"github.com/urfave/cli/v2"

	"github.com/jobpaste/jobpaste/pkg/common/config"
)

func APIFlags(apiConf *config.APIConfig) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-host",
			Value:       apiConf.Host,
			Usage:       "origin a relative api base url is resolved against",
			Destination: &apiConf.Host,
		},
		&cli.StringFlag{
			Name:        "api-base-url",
			Value:       apiConf.BaseURL,
			Usage:       "api base url, absolute or relative to api-host",
			Destination: &apiConf.BaseURL,
		},
		&cli.IntFlag{
			Name:        "api-timeout-in-seconds",
			Value:       apiConf.TimeoutInSeconds,
			Usage:       "timeout of one api request",
			Destination: &apiConf.TimeoutInSeconds,
		},
	}
}

func StorageFlags(storageConf *config.StorageConfig) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-driver",
			Value:       storageConf.Driver,
			Usage:       "session storage driver, disk or mem",
			Destination: &storageConf.Driver,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Value:       storageConf.Dir,
			Usage:       "directory of the disk session storage",
			Destination: &storageConf.Dir,
		},
	}
}

func RouterFlags(routerConf *config.RouterConfig) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "layout",
			Value:       routerConf.Layout,
			Usage:       "route table layout, nested or flat",
			Destination: &routerConf.Layout,
		},
		&cli.StringFlag{
			Name:        "landing-path",
			Value:       routerConf.LandingPath,
			Usage:       "where logged in users land, the layout default if empty",
			Destination: &routerConf.LandingPath,
		},
		&cli.IntFlag{
			Name:        "route-cache-size",
			Value:       routerConf.CacheSize,
			Usage:       "number of resolved locations kept",
			Destination: &routerConf.CacheSize,
		},
	}
}

func WebFlags(webConf *config.WebConfig) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "web-host",
			Value:       webConf.Host,
			Usage:       "listen host of the web shell",
			Destination: &webConf.Host,
		},
		&cli.IntFlag{
			Name:        "web-port",
			Value:       webConf.Port,
			Usage:       "listen port of the web shell",
			Destination: &webConf.Port,
		},
	}
}

func ExpandFlags(compoundFlags [][]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, flag := range compoundFlags {
		flags = append(flags, flag...)
	}
	return flags
}
