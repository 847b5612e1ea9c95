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
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/jobpaste/jobpaste/pkg/app"
	"github.com/jobpaste/jobpaste/pkg/model"
	"github.com/jobpaste/jobpaste/pkg/router"
	"github.com/jobpaste/jobpaste/pkg/web"
)

func (r *runner) serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the web shell until interrupted",
		Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
			server, err := web.NewServer(a)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()
			p.Line("web shell on http://%s", a.Config.Web.Address())
			return server.Run(ctx)
		}),
	}
}

func (r *runner) loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in and keep the session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Usage: "read from JOBPASTE_PASSWORD when unset", EnvVars: []string{"JOBPASTE_PASSWORD"}},
			&cli.StringFlag{Name: "redirect", Usage: "page to open after login"},
		},
		Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
			target, err := a.Views.Auth.Login(c.Context, c.String("email"), c.String("password"), c.String("redirect"))
			if err != nil {
				return err
			}
			p.Flash(a.Flash)
			return printNavigation(a, p, target)
		}),
	}
}

func (r *runner) signupCommand() *cli.Command {
	return &cli.Command{
		Name:  "signup",
		Usage: "create an account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", EnvVars: []string{"JOBPASTE_PASSWORD"}},
		},
		Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
			_, err := a.Views.Auth.Signup(c.Context, &model.SignupRequest{
				Name:     c.String("name"),
				Email:    c.String("email"),
				Password: c.String("password"),
			})
			return err
		}),
	}
}

func (r *runner) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "forget the saved session",
		Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
			return a.Views.Auth.Logout()
		}),
	}
}

func (r *runner) whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show who the saved token belongs to",
		Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
			if !a.Auth.IsLoggedIn() {
				return errLoginRequired
			}
			identity, err := a.Auth.Identity()
			if err != nil {
				// opaque tokens are still a session
				p.Line("logged in, token is not a jwt")
				return nil
			}
			expires := none
			if expiry := identity.Expiry(); !expiry.IsZero() {
				expires = expiry.Format(time.RFC3339) + " (" + humanize.Time(expiry) + ")"
			}
			pairs := [][2]string{
				{"subject", orNone(identity.Subject)},
				{"email", orNone(identity.Email)},
				{"name", orNone(identity.Name)},
				{"expires", expires},
			}
			return p.Fields(pairs)
		}),
	}
}

func (r *runner) navCommand() *cli.Command {
	return &cli.Command{
		Name:      "nav",
		Usage:     "navigate to a path and show where it lands",
		ArgsUsage: "<path>",
		Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
			if c.NArg() != 1 {
				return fmt.Errorf("nav takes exactly one path")
			}
			return printNavigation(a, p, c.Args().First())
		}),
	}
}

func (r *runner) dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "count jobs, companies and categories",
		Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
			if _, err := visit(a, a.Router.Landing()); err != nil {
				return err
			}
			summary, err := a.Views.Dashboard.Summary(c.Context)
			if err != nil {
				return err
			}
			return p.Table([]string{"Jobs", "Companies", "Categories"}, [][]string{{
				fmt.Sprint(summary.Jobs), fmt.Sprint(summary.Companies), fmt.Sprint(summary.Categories),
			}})
		}),
	}
}

func printNavigation(a *app.App, p *printer, path string) error {
	nav, err := a.Router.Push(path)
	if err != nil {
		return err
	}
	pairs := [][2]string{
		{"title", nav.Title},
		{"route", nav.Name()},
		{"path", nav.To.FullPath()},
	}
	if nav.Redirected() {
		pairs = append(pairs, [2]string{"from", nav.RedirectedFrom.FullPath()})
	}
	if nav.Name() == router.RouteNotFound {
		pairs = append(pairs, [2]string{"status", "not found"})
	}
	p.Flash(a.Flash)
	return p.Fields(pairs)
}
