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

	v1 "github.com/jobpaste/jobpaste/pkg/client/v1"
	"github.com/jobpaste/jobpaste/pkg/flash"
	"github.com/jobpaste/jobpaste/pkg/model"
)

const (
	MsgCompanyCreated = "公司已新增"
	MsgCompanyUpdated = "公司已更新"
	MsgCompanyDeleted = "公司已刪除"
)

type CompanyDashboard struct {
	companies v1.CompanyInterface
	messages  FlashSink
}

func NewCompanyDashboard(companies v1.CompanyInterface, messages FlashSink) *CompanyDashboard {
	return &CompanyDashboard{companies: companies, messages: messages}
}

func (d *CompanyDashboard) List(ctx context.Context) ([]model.Company, error) {
	return d.companies.List(ctx)
}

func (d *CompanyDashboard) Get(ctx context.Context, id string) (*model.Company, error) {
	return d.companies.Get(ctx, id)
}

func (d *CompanyDashboard) Create(ctx context.Context, payload *model.CompanyPayload) (*model.Company, error) {
	company, err := d.companies.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	d.messages.Set(MsgCompanyCreated, flash.LevelSuccess)
	return company, nil
}

func (d *CompanyDashboard) Update(ctx context.Context, id string, payload *model.CompanyPayload) (*model.Company, error) {
	company, err := d.companies.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	d.messages.Set(MsgCompanyUpdated, flash.LevelSuccess)
	return company, nil
}

func (d *CompanyDashboard) Delete(ctx context.Context, id string) error {
	if err := d.companies.Delete(ctx, id); err != nil {
		return err
	}
	d.messages.Set(MsgCompanyDeleted, flash.LevelSuccess)
	return nil
}
