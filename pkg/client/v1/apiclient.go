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
	"github.com/jobpaste/jobpaste/pkg/common/http/core"
)

const (
	AuthApi     = "/auth"
	LoginApi    = AuthApi + "/login"
	SignupApi   = AuthApi + "/signup"
	JobApi      = "/jobs"
	CompanyApi  = "/companies"
	CategoryApi = "/categories"
)

type APIV1Interface interface {
	AuthGetter
	JobGetter
	CompanyGetter
	CategoryGetter
}

// APIV1Client is used to interact with the jobpaste api.
type APIV1Client struct {
	restClient core.Client
}

func (c *APIV1Client) Auth() AuthInterface {
	return newAuth(c)
}

func (c *APIV1Client) Job() JobInterface {
	return newJob(c)
}

func (c *APIV1Client) Company() CompanyInterface {
	return newCompany(c)
}

func (c *APIV1Client) Category() CategoryInterface {
	return newCategory(c)
}

// RESTClient returns the client that is used to communicate with the api.
func (c *APIV1Client) RESTClient() core.Client {
	if c == nil {
		return nil
	}
	return c.restClient
}

func NewForClient(client core.Client) *APIV1Client {
	return &APIV1Client{restClient: client}
}

var _ APIV1Interface = &APIV1Client{}
