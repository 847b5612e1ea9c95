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
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func CheckRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID := req.Header.Get(HeaderKeyRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
			log.Debugf("request is null, generate request-id:%s", requestID)
		}
		req.Header.Set(HeaderKeyRequestID, requestID)
		w.Header().Set(HeaderKeyRequestID, requestID)
		next.ServeHTTP(w, req)
	})
}

func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, req)
		ctx := GetRequestContext(req)
		ctx.Logging().Infof("status %d, bytes %d, elapsed %s", ww.Status(), ww.BytesWritten(), time.Since(start))
	})
}

func NotFound(w http.ResponseWriter, req *http.Request) {
	RenderErrWithMessage(w, http.StatusNotFound, req.Header.Get(HeaderKeyRequestID), "PathNotFound", http.StatusText(http.StatusNotFound))
}

func MethodNotAllowed(w http.ResponseWriter, req *http.Request) {
	RenderErrWithMessage(w, http.StatusMethodNotAllowed, req.Header.Get(HeaderKeyRequestID), "MethodNotAllowed", http.StatusText(http.StatusMethodNotAllowed))
}
