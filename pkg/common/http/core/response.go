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
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Response struct {
	statusCode int
	statusText string
	requestID  string
	header     http.Header
	body       []byte
	elapsed    time.Duration
}

func newResponse(httpResp *http.Response, requestID string, elapsed time.Duration) (*Response, error) {
	defer httpResp.Body.Close()
	body, err := ioutil.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}
	if id := httpResp.Header.Get(HeaderRequestID); id != "" {
		requestID = id
	}
	return &Response{
		statusCode: httpResp.StatusCode,
		statusText: httpResp.Status,
		requestID:  requestID,
		header:     httpResp.Header,
		body:       body,
		elapsed:    elapsed,
	}, nil
}

func (r *Response) IsFail() bool {
	return r.statusCode >= 400
}

func (r *Response) StatusCode() int {
	return r.statusCode
}

func (r *Response) StatusText() string {
	return r.statusText
}

func (r *Response) RequestID() string {
	return r.requestID
}

func (r *Response) Header(key string) string {
	return r.header.Get(key)
}

func (r *Response) Body() []byte {
	return r.body
}

func (r *Response) ElapsedTime() time.Duration {
	return r.elapsed
}

// ServiceError builds the *ResponseError of a failed response. A body that is
// not the expected json shape leaves Code empty and keeps the status text.
func (r *Response) ServiceError() *ResponseError {
	svcErr := NewResponseError(r.statusCode, "", http.StatusText(r.statusCode), r.requestID)
	svcErr.Status = r.statusText
	if len(bytes.TrimSpace(r.body)) == 0 {
		return svcErr
	}
	eb := errorBody{}
	if err := json.Unmarshal(r.body, &eb); err != nil {
		return svcErr
	}
	switch {
	case eb.Error != nil:
		svcErr.Code = strings.TrimSpace(eb.Error.Code)
		if eb.Error.Message != "" {
			svcErr.Message = eb.Error.Message
		}
	case eb.Message != "":
		svcErr.Message = eb.Message
	}
	return svcErr
}

// ParseJSONBody decodes the body into result. An empty body, as in 204, is not
// an error and leaves result untouched.
func (r *Response) ParseJSONBody(result interface{}) error {
	if result == nil || len(bytes.TrimSpace(r.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.body, result); err != nil {
		return errors.Wrapf(err, "decode response body of status %d failed", r.statusCode)
	}
	return nil
}
