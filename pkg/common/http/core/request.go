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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	HeaderRequestID     = "X-Request-ID"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"

	ContentTypeJSON = "application/json"
)

// Request is one api call before it is turned into an *http.Request.
type Request struct {
	ctx       context.Context
	method    string
	uri       string
	params    url.Values
	headers   map[string]string
	body      interface{}
	result    interface{}
	requestID string
}

func NewRequest(ctx context.Context, method, uri string) *Request {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Request{
		ctx:       ctx,
		method:    method,
		uri:       uri,
		requestID: uuid.NewString(),
	}
}

func (r *Request) Method() string    { return r.method }
func (r *Request) URI() string       { return r.uri }
func (r *Request) RequestID() string { return r.requestID }

func (r *Request) SetParams(params url.Values) { r.params = params }

func (r *Request) SetHeaders(headers map[string]string) { r.headers = headers }

func (r *Request) SetBody(body interface{}) { r.body = body }

// SetResult sets where a successful json body is decoded into.
func (r *Request) SetResult(result interface{}) { r.result = result }

func (r *Request) String() string {
	return fmt.Sprintf("requestID=%s %s %s", r.requestID, r.method, r.uri)
}

func (r *Request) toHTTPRequest(endpoint, userAgent string) (*http.Request, error) {
	target := strings.TrimRight(endpoint, "/") + "/" + strings.TrimLeft(r.uri, "/")
	if len(r.params) > 0 {
		target += "?" + r.params.Encode()
	}

	var body io.Reader
	if r.body != nil {
		buf, err := NewRequestBodyWithStruct(r.body)
		if err != nil {
			return nil, err
		}
		body = buf
	}
	httpReq, err := http.NewRequestWithContext(r.ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build http request %s %s failed: %v", r.method, target, err)
	}
	httpReq.Header.Set(HeaderAccept, ContentTypeJSON)
	httpReq.Header.Set(HeaderRequestID, r.requestID)
	if userAgent != "" {
		httpReq.Header.Set(HeaderUserAgent, userAgent)
	}
	if r.body != nil {
		httpReq.Header.Set(HeaderContentType, ContentTypeJSON)
	}
	for k, v := range r.headers {
		httpReq.Header.Set(k, v)
	}
	return httpReq, nil
}

func NewRequestBodyWithStruct(body interface{}) (*bytes.Buffer, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body failed, error: %v, body: %v", err, body)
	}
	return bytes.NewBuffer(jsonBody), nil
}
