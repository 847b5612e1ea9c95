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
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/jobpaste/jobpaste/pkg/app"
	"github.com/jobpaste/jobpaste/pkg/common/config"
	"github.com/jobpaste/jobpaste/pkg/router"
)

var errLoginRequired = errors.New(router.LoginRequiredMessage)

type runner struct {
	conf *config.Config
}

type appAction func(c *cli.Context, a *app.App, p *printer) error

// withApp opens the application context for one command. On success the
// pending flash is printed; on failure the flash text becomes the error, as
// it is what the user would have been shown.
func (r *runner) withApp(fn appAction) cli.ActionFunc {
	return func(c *cli.Context) error {
		a, err := app.New(r.conf)
		if err != nil {
			return err
		}
		defer a.Close()

		p := newPrinter(c.App.Writer)
		if err := fn(c, a, p); err != nil {
			log.Debugf("command %s failed: %v", c.Command.FullName(), err)
			if msg, ok := a.Flash.Consume(); ok {
				return errors.New(msg.Text)
			}
			return err
		}
		p.Flash(a.Flash)
		return nil
	}
}

// visit navigates to the page backing a command, so that commands are
// guarded by the same rules as pages.
func visit(a *app.App, path string) (*router.Navigation, error) {
	nav, err := a.Router.Push(path)
	if err != nil {
		return nil, err
	}
	if nav.Redirected() && nav.Name() == router.RouteLogin {
		return nil, errLoginRequired
	}
	return nav, nil
}

func visitRoute(a *app.App, name string) (*router.Navigation, error) {
	path, err := a.Router.PathOf(name, nil)
	if err != nil {
		return nil, err
	}
	return visit(a, path)
}
