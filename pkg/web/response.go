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

package web

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/jobpaste/jobpaste/pkg/common/errcode"
	"github.com/jobpaste/jobpaste/pkg/common/http/core"
	"github.com/jobpaste/jobpaste/pkg/flash"
)

const (
	HeaderKeyRequestID = core.HeaderRequestID

	CodeMalformedJSON   = "MalformedJSON"
	CodeLoginRequired   = "LoginRequired"
	CodeNavigationError = "NavigationError"
)

type ErrorResponse struct {
	RequestID    string `json:"requestID"`
	ErrorCode    string `json:"code"`
	ErrorMessage string `json:"message"`
	Redirect     string `json:"redirect,omitempty"`
}

// Page is the state of one navigated page.
type Page struct {
	Title    string         `json:"title"`
	Route    string         `json:"route"`
	FullPath string         `json:"fullPath"`
	Flash    *flash.Message `json:"flash,omitempty"`
	Data     interface{}    `json:"data,omitempty"`
}

// ActionResponse answers a successful form action.
type ActionResponse struct {
	Flash *flash.Message `json:"flash,omitempty"`
	Data  interface{}    `json:"data,omitempty"`
}

func Render(w http.ResponseWriter, httpCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(httpCode)
	if data == nil {
		return
	}
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		log.Errorf("Render response requestID[%s], err[%s]", w.Header().Get(HeaderKeyRequestID), err.Error())
		return
	}
	w.Write(jsonBytes)
}

func RenderStatus(w http.ResponseWriter, httpCode int) {
	Render(w, httpCode, nil)
}

// RenderErr answers a failed api call with the upstream status and the
// message the error interceptor left in the flash store.
func RenderErr(w http.ResponseWriter, requestID string, err error, messages *flash.Store) {
	kind, message := errcode.Translate(err)
	if msg, ok := messages.Consume(); ok {
		message = msg.Text
	}
	code := kind.String()
	var respErr *core.ResponseError
	if errors.As(err, &respErr) && respErr.Code != "" {
		code = respErr.Code
	}
	Render(w, HTTPStatusOf(err), ErrorResponse{
		RequestID:    requestID,
		ErrorCode:    code,
		ErrorMessage: message,
	})
}

func RenderErrWithMessage(w http.ResponseWriter, httpCode int, requestID, code, message string) {
	Render(w, httpCode, ErrorResponse{
		RequestID:    requestID,
		ErrorCode:    code,
		ErrorMessage: message,
	})
}

// HTTPStatusOf maps an api failure onto the status the shell answers with.
func HTTPStatusOf(err error) int {
	var respErr *core.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}
	var netErr *core.NetworkError
	if errors.As(err, &netErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func consumeFlash(messages *flash.Store) *flash.Message {
	if msg, ok := messages.Consume(); ok {
		return &msg
	}
	return nil
}
