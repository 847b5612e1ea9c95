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

package core

import (
	"context"
	"fmt"
	"net/url"
)

// RequestBuilder holds config data for an api request.
// Some of fields are required and the others are optional.
// The builder pattern can simplify the execution of requests.
type RequestBuilder struct {
	client Client

	ctx         context.Context
	url         string            // required
	method      string            // required
	queryParams url.Values        // optional
	headers     map[string]string // optional
	body        interface{}       // optional
	result      interface{}       // optional
}

// create RequestBuilder with the client.
func NewRequestBuilder(client Client) *RequestBuilder {
	return &RequestBuilder{
		client: client,
	}
}

func (b *RequestBuilder) WithContext(ctx context.Context) *RequestBuilder {
	b.ctx = ctx
	return b
}

func (b *RequestBuilder) WithURL(url string) *RequestBuilder {
	b.url = url
	return b
}

func (b *RequestBuilder) WithMethod(method string) *RequestBuilder {
	b.method = method
	return b
}

// set query param with the key/value directly.
func (b *RequestBuilder) WithQueryParam(key, value string) *RequestBuilder {
	if b.queryParams == nil {
		b.queryParams = url.Values{}
	}
	b.queryParams.Add(key, value)
	return b
}

// set query param with the key/value only when the value is not blank.
func (b *RequestBuilder) WithQueryParamFilter(key, value string) *RequestBuilder {
	if len(value) == 0 {
		return b
	}
	return b.WithQueryParam(key, value)
}

func (b *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	if b.headers == nil {
		b.headers = make(map[string]string)
	}
	b.headers[key] = value
	return b
}

func (b *RequestBuilder) WithBody(body interface{}) *RequestBuilder {
	b.body = body
	return b
}

func (b *RequestBuilder) WithResult(result interface{}) *RequestBuilder {
	b.result = result
	return b
}

// Do will send request to core and get result with the builder's parameters.
func (b *RequestBuilder) Do() error {
	if err := b.validate(); err != nil {
		return err
	}
	_, err := b.client.SendRequest(b.buildRequest())
	return err
}

// Validate if the required fields are providered.
func (b *RequestBuilder) validate() error {
	if len(b.url) == 0 {
		return fmt.Errorf("the url can't be null")
	}
	if len(b.method) == 0 {
		return fmt.Errorf("the method can't be null")
	}
	if b.client == nil {
		return fmt.Errorf("the client can't be null")
	}
	return nil
}

func (b *RequestBuilder) buildRequest() *Request {
	req := NewRequest(b.ctx, b.method, b.url)
	if b.headers != nil {
		req.SetHeaders(b.headers)
	}
	if b.queryParams != nil {
		req.SetParams(b.queryParams)
	}
	if b.body != nil {
		req.SetBody(b.body)
	}
	if b.result != nil {
		req.SetResult(b.result)
	}
	return req
}
