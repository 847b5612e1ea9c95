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

package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	v1 "github.com/jobpaste/jobpaste/pkg/client/v1"
)

type Summary struct {
	Jobs       int `json:"jobs"`
	Companies  int `json:"companies"`
	Categories int `json:"categories"`
}

type Dashboard struct {
	jobs       v1.JobInterface
	companies  v1.CompanyInterface
	categories v1.CategoryInterface
}

func NewDashboard(jobs v1.JobInterface, companies v1.CompanyInterface, categories v1.CategoryInterface) *Dashboard {
	return &Dashboard{jobs: jobs, companies: companies, categories: categories}
}

// Summary counts the three resources, fetched concurrently. A failed fetch does
// not cancel the others.
func (d *Dashboard) Summary(ctx context.Context) (*Summary, error) {
	s := &Summary{}
	var g errgroup.Group
	g.Go(func() error {
		jobs, err := d.jobs.List(ctx)
		s.Jobs = len(jobs)
		return err
	})
	g.Go(func() error {
		companies, err := d.companies.List(ctx)
		s.Companies = len(companies)
		return err
	})
	g.Go(func() error {
		categories, err := d.categories.List(ctx)
		s.Categories = len(categories)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}
