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
	"net/http"
)

// Get, Post, Patch and Delete are thin shortcuts over RequestBuilder that
// decode the response body into result, when result is not nil.

func Get(ctx context.Context, c Client, uri string, result interface{}) error {
	return NewRequestBuilder(c).WithContext(ctx).WithMethod(http.MethodGet).WithURL(uri).WithResult(result).Do()
}

func Post(ctx context.Context, c Client, uri string, body, result interface{}) error {
	return NewRequestBuilder(c).WithContext(ctx).WithMethod(http.MethodPost).WithURL(uri).WithBody(body).WithResult(result).Do()
}

func Patch(ctx context.Context, c Client, uri string, body, result interface{}) error {
	return NewRequestBuilder(c).WithContext(ctx).WithMethod(http.MethodPatch).WithURL(uri).WithBody(body).WithResult(result).Do()
}

func Delete(ctx context.Context, c Client, uri string, result interface{}) error {
	return NewRequestBuilder(c).WithContext(ctx).WithMethod(http.MethodDelete).WithURL(uri).WithResult(result).Do()
}
