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

package logger

import (
	log "github.com/sirupsen/logrus"
)

type RequestContext struct {
	RequestID string
	Method    string
	Path      string
}

func (ctx *RequestContext) Logging() *log.Entry {
	return log.WithFields(log.Fields{
		"requestID": ctx.RequestID,
		"method":    ctx.Method,
		"path":      ctx.Path,
	})
}

func LoggerForRoute(name, fullPath string) *log.Entry {
	return log.WithFields(log.Fields{
		"route":    name,
		"fullPath": fullPath,
	})
}

func LoggerForResource(resource, id string) *log.Entry {
	return log.WithFields(log.Fields{
		"resource": resource,
		"id":       id,
	})
}

func Logger() *log.Entry {
	return log.WithFields(log.Fields{})
}
