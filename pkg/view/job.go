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
	"github.com/jobpaste/jobpaste/pkg/flash"
	"github.com/jobpaste/jobpaste/pkg/model"
)

const (
	MsgJobCreated = "職缺已新增"
	MsgJobUpdated = "職缺已更新"
	MsgJobDeleted = "職缺已刪除"
)

// JobRow is a job with the name of its company resolved.
type JobRow struct {
	model.Job
	CompanyName string `json:"company_name"`
}

type JobBoard struct {
	Rows      []JobRow        `json:"rows"`
	Companies []model.Company `json:"companies"`
}

type JobDashboard struct {
	jobs      v1.JobInterface
	companies v1.CompanyInterface
	messages  FlashSink
}

func NewJobDashboard(jobs v1.JobInterface, companies v1.CompanyInterface, messages FlashSink) *JobDashboard {
	return &JobDashboard{jobs: jobs, companies: companies, messages: messages}
}

// Load fetches jobs and companies at the same time and joins company names.
// Both requests run to completion even when one of them fails.
func (d *JobDashboard) Load(ctx context.Context) (*JobBoard, error) {
	var jobs []model.Job
	var companies []model.Company
	var g errgroup.Group
	g.Go(func() (err error) {
		jobs, err = d.jobs.List(ctx)
		return
	})
	g.Go(func() (err error) {
		companies, err = d.companies.List(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(companies))
	for _, c := range companies {
		names[c.ID] = c.Name
	}
	rows := make([]JobRow, 0, len(jobs))
	for _, job := range jobs {
		row := JobRow{Job: job}
		if job.CompanyID != nil {
			row.CompanyName = names[*job.CompanyID]
		}
		rows = append(rows, row)
	}
	return &JobBoard{Rows: rows, Companies: companies}, nil
}

func (d *JobDashboard) Get(ctx context.Context, id string) (*model.Job, error) {
	return d.jobs.Get(ctx, id)
}

func (d *JobDashboard) Create(ctx context.Context, payload *model.JobPayload) (*model.Job, error) {
	job, err := d.jobs.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	d.messages.Set(MsgJobCreated, flash.LevelSuccess)
	return job, nil
}

func (d *JobDashboard) Update(ctx context.Context, id string, payload *model.JobPayload) (*model.Job, error) {
	job, err := d.jobs.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	d.messages.Set(MsgJobUpdated, flash.LevelSuccess)
	return job, nil
}

func (d *JobDashboard) Delete(ctx context.Context, id string) error {
	if err := d.jobs.Delete(ctx, id); err != nil {
		return err
	}
	d.messages.Set(MsgJobDeleted, flash.LevelSuccess)
	return nil
}
