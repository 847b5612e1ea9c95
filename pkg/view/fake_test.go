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
	"errors"
	"sync"

	"github.com/jobpaste/jobpaste/pkg/model"
)

type fakeAuth struct {
	resp *model.LoginResponse
	err  error
	got  *model.LoginRequest
}

func (f *fakeAuth) Login(ctx context.Context, request *model.LoginRequest) (*model.LoginResponse, error) {
	f.got = request
	return f.resp, f.err
}

func (f *fakeAuth) Signup(ctx context.Context, request *model.SignupRequest) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.User{ID: "u1", Email: request.Email}, nil
}

type fakeSession struct {
	token     string
	logoutErr error
}

func (s *fakeSession) SetToken(token string) error {
	s.token = token
	return nil
}

func (s *fakeSession) Logout() error {
	if s.logoutErr != nil {
		return s.logoutErr
	}
	s.token = ""
	return nil
}

// fakeResource serves a fixed list and records mutations.
type fakeResource[T any] struct {
	mu      sync.Mutex
	items   []T
	err     error
	deleted []string
}

func (f *fakeResource[T]) List(ctx context.Context) ([]T, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeResource[T]) Get(ctx context.Context, id string) (*T, error) {
	if f.err != nil || len(f.items) == 0 {
		return nil, errors.New("not found")
	}
	return &f.items[0], nil
}

func (f *fakeResource[T]) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeJobs struct {
	fakeResource[model.Job]
}

func (f *fakeJobs) Create(ctx context.Context, p *model.JobPayload) (*model.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Job{ID: "new", Name: *p.Name}, nil
}

func (f *fakeJobs) Update(ctx context.Context, id string, p *model.JobPayload) (*model.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Job{ID: id}, nil
}

type fakeCompanies struct {
	fakeResource[model.Company]
}

func (f *fakeCompanies) Create(ctx context.Context, p *model.CompanyPayload) (*model.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Company{ID: "new", Name: *p.Name}, nil
}

func (f *fakeCompanies) Update(ctx context.Context, id string, p *model.CompanyPayload) (*model.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Company{ID: id}, nil
}

type fakeCategories struct {
	fakeResource[model.Category]
}

func (f *fakeCategories) Create(ctx context.Context, p *model.CategoryPayload) (*model.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Category{ID: "new", Name: *p.Name}, nil
}

func (f *fakeCategories) Update(ctx context.Context, id string, p *model.CategoryPayload) (*model.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Category{ID: id}, nil
}
