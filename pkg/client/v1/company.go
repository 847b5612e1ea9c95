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

type company struct {
	client core.Client
}

func (r *company) List(ctx context.Context) (result []model.Company, err error) {
	result = []model.Company{}
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(CompanyApi).
		WithMethod(http.MethodGet).
		WithResult(&result).
		Do()
	if err != nil {
		return nil, err
	}
	return
}

func (r *company) Get(ctx context.Context, id string) (result *model.Company, err error) {
	result = &model.Company{}
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(CompanyApi + "/" + url.PathEscape(id)).
		WithMethod(http.MethodGet).
		WithResult(result).
		Do()
	if err != nil {
		return nil, err
	}
	return
}

func (r *company) Create(ctx context.Context, request *model.CompanyPayload) (result *model.Company, err error) {
	result = &model.Company{}
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(CompanyApi).
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
func (r *company) Update(ctx context.Context, id string, request *model.CompanyPayload) (result *model.Company, err error) {
	result = &model.Company{}
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(CompanyApi + "/" + url.PathEscape(id)).
		WithMethod(http.MethodPatch).
		WithBody(request).
		WithResult(result).
		Do()
	if err != nil {
		return nil, err
	}
	return
}

func (r *company) Delete(ctx context.Context, id string) (err error) {
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(CompanyApi + "/" + url.PathEscape(id)).
		WithMethod(http.MethodDelete).
		Do()
	return
}

type CompanyGetter interface {
	Company() CompanyInterface
}

type CompanyInterface interface {
	List(ctx context.Context) ([]model.Company, error)
	Get(ctx context.Context, id string) (*model.Company, error)
	Create(ctx context.Context, request *model.CompanyPayload) (*model.Company, error)
	Update(ctx context.Context, id string, request *model.CompanyPayload) (*model.Company, error)
	Delete(ctx context.Context, id string) error
}

func newCompany(c *APIV1Client) *company {
	return &company{
		client: c.RESTClient(),
	}
}
