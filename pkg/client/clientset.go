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

package client

import (
	"github.com/jobpaste/jobpaste/pkg/client/v1"
	"github.com/jobpaste/jobpaste/pkg/common/http/core"
)

type Interface interface {
	APIV1() v1.APIV1Interface
}

type ClientSet struct {
	rest  *core.APIClient
	apiV1 *v1.APIV1Client
}

func (c *ClientSet) APIV1() v1.APIV1Interface {
	return c.apiV1
}

// RESTClient exposes the underlying client to register interceptors.
func (c *ClientSet) RESTClient() *core.APIClient {
	return c.rest
}

var _ Interface = &ClientSet{}

// NewForConfig builds a ClientSet whose requests carry the bearer token of
// tokens and whose failures are written to sink.
func NewForConfig(config *core.ClientConfiguration, tokens TokenSource, sink FlashSink) *ClientSet {
	rest := core.NewAPIClient(config)
	if tokens != nil {
		rest.UseRequest(BearerToken(tokens))
	}
	if sink != nil {
		rest.UseError(FlashOnError(sink))
	}
	return &ClientSet{
		rest:  rest,
		apiV1: v1.NewForClient(rest),
	}
}
