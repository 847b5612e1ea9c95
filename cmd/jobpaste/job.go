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
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/jobpaste/jobpaste/pkg/app"
	"github.com/jobpaste/jobpaste/pkg/model"
	"github.com/jobpaste/jobpaste/pkg/router"
)

const dateLayout = "2006-01-02"

func jobPayloadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "url"},
		&cli.IntFlag{Name: "tier", Usage: "interest level"},
		&cli.Int64Flag{Name: "min-salary", Usage: "minimum yearly salary"},
		&cli.Int64Flag{Name: "max-salary", Usage: "maximum yearly salary"},
		&cli.StringFlag{Name: "company-id"},
		&cli.StringFlag{Name: "applied-at", Usage: "date applied, " + dateLayout},
	}
}

// jobPayloadFromFlags only sets the fields whose flag was given.
func jobPayloadFromFlags(c *cli.Context) (*model.JobPayload, error) {
	payload := &model.JobPayload{}
	if c.IsSet("name") {
		payload.Name = model.StringPtr(c.String("name"))
	}
	if c.IsSet("description") {
		payload.Description = model.StringPtr(c.String("description"))
	}
	if c.IsSet("url") {
		payload.URL = model.StringPtr(c.String("url"))
	}
	if c.IsSet("tier") {
		payload.Tier = model.IntPtr(c.Int("tier"))
	}
	if c.IsSet("min-salary") {
		payload.MinYearlySalary = model.Int64Ptr(c.Int64("min-salary"))
	}
	if c.IsSet("max-salary") {
		payload.MaxYearlySalary = model.Int64Ptr(c.Int64("max-salary"))
	}
	if c.IsSet("company-id") {
		payload.CompanyID = model.StringPtr(c.String("company-id"))
	}
	if c.IsSet("applied-at") {
		appliedAt, err := time.Parse(dateLayout, c.String("applied-at"))
		if err != nil {
			return nil, fmt.Errorf("applied-at[%s] is not a %s date", c.String("applied-at"), dateLayout)
		}
		payload.AppliedAt = &appliedAt
	}
	return payload, nil
}

func (r *runner) jobCommand() *cli.Command {
	return &cli.Command{
		Name:  "job",
		Usage: "manage job openings",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list jobs with their company",
				Flags: []cli.Flag{outputFlag()},
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					if _, err := visitRoute(a, router.RouteDashboardJob); err != nil {
						return err
					}
					board, err := a.Views.Jobs.Load(c.Context)
					if err != nil {
						return err
					}
					rows := make([][]string, 0, len(board.Rows))
					for i := range board.Rows {
						row := &board.Rows[i]
						company := row.CompanyName
						if company == "" {
							company = none
						}
						rows = append(rows, []string{row.ID, row.Name, company, fmt.Sprint(row.Tier), salary(&row.Job), appliedAt(&row.Job)})
					}
					return p.Render(c, board.Rows, func() error {
						return p.Table([]string{"ID", "Name", "Company", "Tier", "Salary", "Applied"}, rows)
					})
				}),
			},
			{
				Name:      "get",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{outputFlag()},
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					id, err := idArg(c, a, router.RouteDashboardJob)
					if err != nil {
						return err
					}
					job, err := a.Views.Jobs.Get(c.Context, id)
					if err != nil {
						return err
					}
					return p.Render(c, job, func() error { return p.Fields(jobFields(job)) })
				}),
			},
			{
				Name:  "create",
				Flags: jobPayloadFlags(),
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					if _, err := visitRoute(a, router.RouteDashboardJob); err != nil {
						return err
					}
					payload, err := jobPayloadFromFlags(c)
					if err != nil {
						return err
					}
					job, err := a.Views.Jobs.Create(c.Context, payload)
					if err != nil {
						return err
					}
					return p.Fields(jobFields(job))
				}),
			},
			{
				Name:      "update",
				ArgsUsage: "<id>",
				Flags:     jobPayloadFlags(),
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					id, err := idArg(c, a, router.RouteDashboardJob)
					if err != nil {
						return err
					}
					payload, err := jobPayloadFromFlags(c)
					if err != nil {
						return err
					}
					job, err := a.Views.Jobs.Update(c.Context, id, payload)
					if err != nil {
						return err
					}
					return p.Fields(jobFields(job))
				}),
			},
			{
				Name:      "delete",
				ArgsUsage: "<id>",
				Action: r.withApp(func(c *cli.Context, a *app.App, p *printer) error {
					id, err := idArg(c, a, router.RouteDashboardJob)
					if err != nil {
						return err
					}
					return a.Views.Jobs.Delete(c.Context, id)
				}),
			},
		},
	}
}

// idArg guards the resource page, then returns the single id argument.
func idArg(c *cli.Context, a *app.App, route string) (string, error) {
	if _, err := visitRoute(a, route); err != nil {
		return "", err
	}
	if c.NArg() != 1 || c.Args().First() == "" {
		return "", fmt.Errorf("%s takes exactly one id", c.Command.FullName())
	}
	return c.Args().First(), nil
}

func jobFields(job *model.Job) [][2]string {
	return [][2]string{
		{"id", job.ID},
		{"name", job.Name},
		{"description", str(job.Description)},
		{"url", str(job.URL)},
		{"tier", fmt.Sprint(job.Tier)},
		{"salary", salary(job)},
		{"company", str(job.CompanyID)},
		{"applied", appliedAt(job)},
	}
}

func appliedAt(job *model.Job) string {
	if job.AppliedAt == nil {
		return none
	}
	return job.AppliedAt.Format(dateLayout) + " (" + humanize.Time(*job.AppliedAt) + ")"
}
