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

func categoryPayloadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "color", Usage: "label color, as #rrggbb"},
		&cli.StringFlag{Name: "description"},
	}
}

func categoryPayloadFromFlags(c *cli.Context) *model.CategoryPayload {
	payload := &model.CategoryPayload{}
	if c.IsSet("name") {
		payload.Name = model.StringPtr(c.String("name"))
	}
	if c.IsSet("color") {
		payload.Color = model.StringPtr(c.String("color"))
	}
	if c.IsSet("description") {
		payload.Description = model.StringPtr(c.String("description"))
	}
	return payload
}

func categoryRow(category *model.Category) []string {
	color := category.Color
	if color == "" {
		color = none
	}
	return []string{category.ID, category.Name, color, str(category.Description)}
}

func (r *runner) categoryCommand() *cli.Command {
	header := []string{"ID", "Name", "Color", "Description"}
	return &cli.Command{
		Name:  "category",
		Usage: "manage categories",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Flags: []cli.Flag{outputFlag()},
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					if _, err := visitRoute(a, router.RouteDashboardCategory); err != nil {
						return err
					}
					categories, err := a.Views.Categories.List(c.Context)
					if err != nil {
						return err
					}
					rows := make([][]string, 0, len(categories))
					for i := range categories {
						rows = append(rows, categoryRow(&categories[i]))
					}
					return p.Render(c, categories, func() error { return p.Table(header, rows) })
				}),
			},
			{
				Name:      "get",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{outputFlag()},
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					id, err := idArg(c, a, router.RouteDashboardCategory)
					if err != nil {
						return err
					}
					category, err := a.Views.Categories.Get(c.Context, id)
					if err != nil {
						return err
					}
					return p.Render(c, category, func() error { return p.Table(header, [][]string{categoryRow(category)}) })
				}),
			},
			{
				Name:  "create",
				Flags: categoryPayloadFlags(),
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					if _, err := visitRoute(a, router.RouteDashboardCategory); err != nil {
						return err
					}
					category, err := a.Views.Categories.Create(c.Context, categoryPayloadFromFlags(c))
					if err != nil {
						return err
					}
					return p.Table(header, [][]string{categoryRow(category)})
				}),
			},
			{
				Name:      "update",
				ArgsUsage: "<id>",
				Flags:     categoryPayloadFlags(),
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					id, err := idArg(c, a, router.RouteDashboardCategory)
					if err != nil {
						return err
					}
					category, err := a.Views.Categories.Update(c.Context, id, categoryPayloadFromFlags(c))
					if err != nil {
						return err
					}
					return p.Table(header, [][]string{categoryRow(category)})
				}),
			},
			{
				Name:      "delete",
				ArgsUsage: "<id>",
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					id, err := idArg(c, a, router.RouteDashboardCategory)
					if err != nil {
						return err
					}
					return a.Views.Categories.Delete(c.Context, id)
				}),
			},
		},
	}
}
