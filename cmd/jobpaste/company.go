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
	"github.com/urfave/cli/v2"

	"github.com/jobpaste/jobpaste/pkg/app"
	"github.com/jobpaste/jobpaste/pkg/model"
	"github.com/jobpaste/jobpaste/pkg/router"
)

func companyPayloadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "url"},
		&cli.IntFlag{Name: "size", Usage: "number of employees"},
	}
}

func companyPayloadFromFlags(c *cli.Context) *model.CompanyPayload {
	payload := &model.CompanyPayload{}
	if c.IsSet("name") {
		payload.Name = model.StringPtr(c.String("name"))
	}
	if c.IsSet("description") {
		payload.Description = model.StringPtr(c.String("description"))
	}
	if c.IsSet("url") {
		payload.URL = model.StringPtr(c.String("url"))
	}
	if c.IsSet("size") {
		payload.Size = model.IntPtr(c.Int("size"))
	}
	return payload
}

func companyFields(company *model.Company) [][2]string {
	return [][2]string{
		{"id", company.ID},
		{"name", company.Name},
		{"description", str(company.Description)},
		{"url", str(company.URL)},
		{"size", num(company.Size)},
	}
}

func (r *runner) companyCommand() *cli.Command {
	return &cli.Command{
		Name:  "company",
		Usage: "manage companies",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: []cli.Flag{outputFlag()},
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					if _, err := visitRoute(a, router.RouteDashboardCompany); err != nil {
						return err
					}
					companies, err := a.Views.Companies.List(c.Context)
					if err != nil {
						return err
					}
					rows := make([][]string, 0, len(companies))
					for i := range companies {
						company := &companies[i]
						rows = append(rows, []string{company.ID, company.Name, num(company.Size), str(company.URL)})
					}
					return p.Render(c, companies, func() error {
						return p.Table([]string{"ID", "Name", "Size", "URL"}, rows)
					})
				}),
			},
			{
				Name:      "get",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{outputFlag()},
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					id, err := idArg(c, a, router.RouteDashboardCompany)
					if err != nil {
						return err
					}
					company, err := a.Views.Companies.Get(c.Context, id)
					if err != nil {
						return err
					}
					return p.Render(c, company, func() error { return p.Fields(companyFields(company)) })
				}),
			},
			{
				Name:  "create",
				Flags: companyPayloadFlags(),
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					if _, err := visitRoute(a, router.RouteDashboardCompany); err != nil {
						return err
					}
					company, err := a.Views.Companies.Create(c.Context, companyPayloadFromFlags(c))
					if err != nil {
						return err
					}
					return p.Fields(companyFields(company))
				}),
			},
			{
				Name:      "update",
				ArgsUsage: "<id>",
				Flags:     companyPayloadFlags(),
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					id, err := idArg(c, a, router.RouteDashboardCompany)
					if err != nil {
						return err
					}
					company, err := a.Views.Companies.Update(c.Context, id, companyPayloadFromFlags(c))
					if err != nil {
						return err
					}
					return p.Fields(companyFields(company))
				}),
			},
			{
				Name:      "delete",
				ArgsUsage: "<id>",
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					id, err := idArg(c, a, router.RouteDashboardCompany)
					if err != nil {
						return err
					}
					return a.Views.Companies.Delete(c.Context, id)
				}),
			},
		},
	}
}
