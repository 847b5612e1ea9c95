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
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	_ "go.uber.org/automaxprocs"

	"github.com/jobpaste/jobpaste/cmd/jobpaste/flag"
	"github.com/jobpaste/jobpaste/pkg/common/config"
	"github.com/jobpaste/jobpaste/pkg/common/logger"
	"github.com/jobpaste/jobpaste/pkg/version"
)

func main() {
	if err := Main(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func Main(args []string) error {
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "version of jobpaste",
		Value: false,
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pterm.DisableColor()
	}

	conf, err := initConfig(configPathFromArgs(args))
	if err != nil {
		return err
	}
	return newApp(conf, os.Stdout).Run(args)
}

// initConfig layers the yaml file, .env files and the environment over the
// defaults. Flags are bound afterwards, so they win over all of these.
func initConfig(configPath string) (*config.Config, error) {
	conf := config.Default()
	if err := config.InitConfigFromYaml(conf, configPath); err != nil {
		log.Errorf("InitConfigFromYaml failed. configPath:[%s] error:[%s]", configPath, err.Error())
		return nil, err
	}
	if err := config.LoadEnv(conf); err != nil {
		return nil, err
	}
	config.GlobalConfig = conf
	return conf, nil
}

// configPathFromArgs finds --config ahead of flag parsing, since the file
// provides the flag defaults.
func configPathFromArgs(args []string) string {
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return os.Getenv(config.EnvConfigPath)
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return os.Getenv(config.EnvConfigPath)
}

func newApp(conf *config.Config, out io.Writer) *cli.App {
	compoundFlags := [][]cli.Flag{
		{&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "config yaml, " + config.DefaultConfPath + " if present",
			EnvVars: []string{config.EnvConfigPath},
		}},
		flag.APIFlags(&conf.API),
		flag.StorageFlags(&conf.Storage),
		flag.RouterFlags(&conf.Router),
		flag.WebFlags(&conf.Web),
		logger.LogFlags(&conf.Log),
	}
	r := &runner{conf: conf}
	return &cli.App{
		Name:                 "jobpaste",
		Usage:                "keep track of job openings, companies and categories",
		Version:              version.InfoStr(),
		Copyright:            "Apache License 2.0",
		HideHelpCommand:      true,
		EnableBashCompletion: true,
		Writer:               out,
		ErrWriter:            out,
		Flags:                flag.ExpandFlags(compoundFlags),
		Before: func(c *cli.Context) error {
			if err := logger.InitStandardFileLogger(&conf.Log); err != nil {
				return err
			}
			log.Debugf("config: %s", config.PrettyFormat(conf))
			return nil
		},
		Commands: []*cli.Command{
			r.serveCommand(),
			r.loginCommand(),
			r.signupCommand(),
			r.logoutCommand(),
			r.whoamiCommand(),
			r.navCommand(),
			r.dashboardCommand(),
			r.jobCommand(),
			r.companyCommand(),
			r.categoryCommand(),
		},
	}
}
