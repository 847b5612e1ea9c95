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
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/jobpaste/jobpaste/pkg/common/errcode"
	"github.com/jobpaste/jobpaste/pkg/common/http/core"
	"github.com/jobpaste/jobpaste/pkg/flash"
)

type TokenSource interface {
	Token() string
}

type FlashSink interface {
	Set(text string, level flash.Level)
}

// BearerToken sets the Authorization header when tokens holds a token, and
// leaves the request alone otherwise.
func BearerToken(tokens TokenSource) core.RequestInterceptor {
	return func(req *http.Request) error {
		if token := tokens.Token(); token != "" {
			req.Header.Set(core.HeaderAuthorization, "Bearer "+token)
		}
		return nil
	}
}

// FlashOnError writes the user facing message of every failed request to sink.
// The error itself is left for the caller.
func FlashOnError(sink FlashSink) core.ErrorInterceptor {
	return func(err error) error {
		kind, msg := errcode.Translate(err)
		log.Warnf("api request failed, kind: %s, err: %v", kind, err)
		sink.Set(msg, flash.LevelError)
		return nil
	}
}
