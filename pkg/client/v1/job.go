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

type job struct {
	client core.Client
}

func (r *job) List(ctx context.Context) (result []model.Job, err error) {
	result = []model.Job{}
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(JobApi).
		WithMethod(http.MethodGet).
		WithResult(&result).
		Do()
	if err != nil {
		return nil, err
	}
	return
}

func (r *job) Get(ctx context.Context, id string) (result *model.Job, err error) {
	result = &model.Job{}
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(JobApi + "/" + url.PathEscape(id)).
		WithMethod(http.MethodGet).
		WithResult(result).
		Do()
	if err != nil {
		return nil, err
	}
	return
}

func (r *job) Create(ctx context.Context, request *model.JobPayload) (result *model.Job, err error) {
	result = &model.Job{}
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(JobApi).
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
func (r *job) Update(ctx context.Context, id string, request *model.JobPayload) (result *model.Job, err error) {
	result = &model.Job{}
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(JobApi + "/" + url.PathEscape(id)).
		WithMethod(http.MethodPatch).
		WithBody(request).
		WithResult(result).
		Do()
	if err != nil {
		return nil, err
	}
	return
}

func (r *job) Delete(ctx context.Context, id string) (err error) {
	err = core.NewRequestBuilder(r.client).
		WithContext(ctx).
		WithURL(JobApi + "/" + url.PathEscape(id)).
		WithMethod(http.MethodDelete).
		Do()
	return
}

type JobGetter interface {
	Job() JobInterface
}

type JobInterface interface {
	List(ctx context.Context) ([]model.Job, error)
	Get(ctx context.Context, id string) (*model.Job, error)
	Create(ctx context.Context, request *model.JobPayload) (*model.Job, error)
	Update(ctx context.Context, id string, request *model.JobPayload) (*model.Job, error)
	Delete(ctx context.Context, id string) error
}

func newJob(c *APIV1Client) *job {
	return &job{
		client: c.RESTClient(),
	}
}
