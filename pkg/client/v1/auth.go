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

	"github.com/jobpaste/jobpaste/pkg/common/http/core"
	"github.com/jobpaste/jobpaste/pkg/model"
)

type auth struct {
	client core.Client
}

func (a *auth) Login(ctx context.Context, request *model.LoginRequest) (result *model.LoginResponse, err error) {
	result = &model.LoginResponse{}
	err = core.NewRequestBuilder(a.client).
		WithContext(ctx).
		WithURL(LoginApi).
		WithMethod(http.MethodPost).
		WithBody(request).
		WithResult(result).
		Do()
	if err != nil {
		return nil, err
	}
	return
}

func (a *auth) Signup(ctx context.Context, request *model.SignupRequest) (result *model.User, err error) {
	result = &model.User{}
	err = core.NewRequestBuilder(a.client).
		WithContext(ctx).
		WithURL(SignupApi).
		WithMethod(http.MethodPost).
		WithBody(request).
		WithResult(result).
		Do()
	if err != nil {
		return nil, err
	}
	return
}

type AuthGetter interface {
	Auth() AuthInterface
}

type AuthInterface interface {
	Login(ctx context.Context, request *model.LoginRequest) (*model.LoginResponse, error)
	Signup(ctx context.Context, request *model.SignupRequest) (*model.User, error)
}

func newAuth(c *APIV1Client) *auth {
	return &auth{
		client: c.RESTClient(),
	}
}
