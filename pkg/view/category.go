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
	MsgCategoryCreated = "分類已新增"
	MsgCategoryUpdated = "分類已更新"
	MsgCategoryDeleted = "分類已刪除"
)

type CategoryDashboard struct {
	categories v1.CategoryInterface
	messages   FlashSink
}

func NewCategoryDashboard(categories v1.CategoryInterface, messages FlashSink) *CategoryDashboard {
	return &CategoryDashboard{categories: categories, messages: messages}
}

func (d *CategoryDashboard) List(ctx context.Context) ([]model.Category, error) {
	return d.categories.List(ctx)
}

func (d *CategoryDashboard) Get(ctx context.Context, id string) (*model.Category, error) {
	return d.categories.Get(ctx, id)
}

func (d *CategoryDashboard) Create(ctx context.Context, payload *model.CategoryPayload) (*model.Category, error) {
	category, err := d.categories.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	d.messages.Set(MsgCategoryCreated, flash.LevelSuccess)
	return category, nil
}

func (d *CategoryDashboard) Update(ctx context.Context, id string, payload *model.CategoryPayload) (*model.Category, error) {
	category, err := d.categories.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	d.messages.Set(MsgCategoryUpdated, flash.LevelSuccess)
	return category, nil
}

func (d *CategoryDashboard) Delete(ctx context.Context, id string) error {
	if err := d.categories.Delete(ctx, id); err != nil {
		return err
	}
	d.messages.Set(MsgCategoryDeleted, flash.LevelSuccess)
	return nil
}
