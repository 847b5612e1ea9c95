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
	"net/http"

	"github.com/jobpaste/jobpaste/pkg/common/logger"
)

func GetRequestContext(r *http.Request) logger.RequestContext {
	return logger.RequestContext{
		RequestID: r.Header.Get(HeaderKeyRequestID),
		Method:    r.Method,
		Path:      r.URL.Path,
	}
}

// BindJSON decodes the request body into data. An empty body leaves data as is.
func BindJSON(r *http.Request, data interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	return json.NewDecoder(r.Body).Decode(data)
}
