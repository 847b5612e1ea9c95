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
	"fmt"
	"net/url"
)

// ResponseError is returned when the server answered with a status >= 400.
// Code and Message come from the {"error":{"code","message"}} body, if any.
type ResponseError struct {
	StatusCode int
	Status     string
	Code       string
	Message    string
	RequestID  string
}

func (e *ResponseError) Error() string {
	ret := fmt.Sprintf("[Status: %d", e.StatusCode)
	if e.Code != "" {
		ret += "; Code: " + e.Code
	}
	ret += "; Message: " + e.Message
	ret += "; RequestID: " + e.RequestID + "]"
	return ret
}

func NewResponseError(status int, code, msg, reqID string) *ResponseError {
	return &ResponseError{
		StatusCode: status,
		Code:       code,
		Message:    msg,
		RequestID:  reqID,
	}
}

// NetworkError is returned when a request was sent but no response came back.
type NetworkError struct {
	Method    string
	URL       string
	RequestID string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s failed without response: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Timeout() bool {
	if ue, ok := e.Err.(*url.Error); ok {
		return ue.Timeout()
	}
	return false
}

type errorBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}
