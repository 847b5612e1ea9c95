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

package errcode

import (
	"errors"
	"net/http"

	"github.com/jobpaste/jobpaste/pkg/common/http/core"
)

// Translate classifies a failed api call and picks the message shown to the
// user. Checks run in order: server error code, 401, 403, 404, 5xx, no
// response, anything else. An unknown server code shows the server's own
// message when it sent one.
func Translate(err error) (Kind, string) {
	if err == nil {
		return KindUnknown, ""
	}
	var respErr *core.ResponseError
	if errors.As(err, &respErr) {
		return translateResponse(respErr)
	}
	var netErr *core.NetworkError
	if errors.As(err, &netErr) {
		return KindNetwork, MsgNetwork
	}
	return KindUnknown, MsgUnexpected
}

func translateResponse(e *core.ResponseError) (Kind, string) {
	if e.Code != "" {
		kind, ok := errorKind[e.Code]
		if !ok {
			kind = kindOfStatus(e.StatusCode)
		}
		if msg, ok := Lookup(e.Code); ok {
			return kind, msg
		}
		if e.Message != "" && e.Message != http.StatusText(e.StatusCode) {
			return kind, e.Message
		}
		return kind, MsgUnexpected
	}
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return KindAuth, MsgUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return KindAuth, MsgForbidden
	case e.StatusCode == http.StatusNotFound:
		return KindNotFound, MsgNotFound
	case e.StatusCode >= http.StatusInternalServerError:
		return KindServer, MsgServer
	}
	return KindUnknown, MsgUnexpected
}

func kindOfStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= http.StatusInternalServerError:
		return KindServer
	case status >= http.StatusBadRequest:
		return KindValidation
	}
	return KindUnknown
}
