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

package v1

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jobpaste/jobpaste/pkg/common/http/core"
	"github.com/jobpaste/jobpaste/pkg/model"
)

type category struct {
	client core.Client
}

func (r *category) List(ctx context.Context) (result []model.Category, err error) {
	result = []model.Category{}
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(CategoryApi).
		WithMethod(http.MethodGet).
		WithResult(&result).
		Do()
	if err != nil {
		return nil, err
	}
	return
}

func (r *category) Get(ctx context.Context, id string) (result *model.Category, err error) {
	result = &model.Category{}
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(CategoryApi + "/" + url.PathEscape(id)).
		WithMethod(http.MethodGet).
		WithResult(result).
		Do()
	if err != nil {
		return nil, err
	}
	return
}

func (r *category) Create(ctx context.Context, request *model.CategoryPayload) (result *model.Category, err error) {
	result = &model.Category{}
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(CategoryApi).
		WithMethod(http.MethodPost).
		WithBody(request).
		WithResult(result).
		Do()
	if err != nil {
		return nil, err
	}
	return
}

// Update sends a partial update, only the non-nil payload fields change.
func (r *category) Update(ctx context.Context, id string, request *model.CategoryPayload) (result *model.Category, err error) {
	result = &model.Category{}
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(CategoryApi + "/" + url.PathEscape(id)).
		WithMethod(http.MethodPatch).
		WithBody(request).
		WithResult(result).
		Do()
	if err != nil {
		return nil, err
	}
	return
}

func (r *category) Delete(ctx context.Context, id string) (err error) {
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(CategoryApi + "/" + url.PathEscape(id)).
		WithMethod(http.MethodDelete).
		Do()
	return
}

type CategoryGetter interface {
	Category() CategoryInterface
}

type CategoryInterface interface {
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, request *model.CategoryPayload) (*model.Category, error)
	Update(ctx context.Context, id string, request *model.CategoryPayload) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

func newCategory(c *APIV1Client) *category {
	return &category{
		client: c.RESTClient(),
	}
}
