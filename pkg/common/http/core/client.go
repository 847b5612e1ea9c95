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
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jobpaste/jobpaste/pkg/metrics"
)

// Client is the general interface which can perform sending request.
type Client interface {
	SendRequest(*Request) (*Response, error)
}

// RequestInterceptor may modify every outgoing request. A returned error aborts
// the request.
type RequestInterceptor func(req *http.Request) error

// ErrorInterceptor observes every failed request. It may return a replacement
// error; returning nil keeps the error it was given.
type ErrorInterceptor func(err error) error

type ClientConfiguration struct {
	// Endpoint is the absolute base url every request uri is joined onto.
	Endpoint  string
	Timeout   time.Duration
	UserAgent string
	// HTTPClient overrides the default transport, mainly for tests.
	HTTPClient *http.Client
}

type APIClient struct {
	Config     *ClientConfiguration
	httpClient *http.Client

	mu                  sync.RWMutex
	requestInterceptors []RequestInterceptor
	errorInterceptors   []ErrorInterceptor
}

func NewAPIClient(conf *ClientConfiguration) *APIClient {
	httpClient := conf.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: conf.Timeout}
	}
	return &APIClient{
		Config:     conf,
		httpClient: httpClient,
	}
}

func (c *APIClient) UseRequest(interceptors ...RequestInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestInterceptors = append(c.requestInterceptors, interceptors...)
}

func (c *APIClient) UseError(interceptors ...ErrorInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorInterceptors = append(c.errorInterceptors, interceptors...)
}

// SendRequest sends req and decodes a successful body into the request result.
// Every failure, from building the request to decoding the body, passes through
// the error interceptors before it is returned.
func (c *APIClient) SendRequest(req *Request) (*Response, error) {
	resp, err := c.send(req)
	if err != nil {
		return nil, c.intercept(err)
	}
	return resp, nil
}

func (c *APIClient) send(req *Request) (*Response, error) {
	httpReq, err := req.toHTTPRequest(c.Config.Endpoint, c.Config.UserAgent)
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	reqInterceptors := c.requestInterceptors
	c.mu.RUnlock()
	for _, interceptor := range reqInterceptors {
		if err := interceptor(httpReq); err != nil {
			return nil, errors.Wrapf(err, "intercept request %s", req)
		}
	}

	log.Debugf("send http request: %s", req)
	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.AddAPIRequestMetrics(req.method, metrics.StatusNetwork, time.Since(start))
		return nil, &NetworkError{
			Method:    req.method,
			URL:       httpReq.URL.String(),
			RequestID: req.requestID,
			Err:       err,
		}
	}
	resp, err := newResponse(httpResp, req.requestID, time.Since(start))
	if err != nil {
		metrics.AddAPIRequestMetrics(req.method, metrics.StatusNetwork, time.Since(start))
		return nil, &NetworkError{
			Method:    req.method,
			URL:       httpReq.URL.String(),
			RequestID: req.requestID,
			Err:       errors.Wrap(err, "read response body"),
		}
	}
	metrics.AddAPIRequestMetrics(req.method, strconv.Itoa(resp.StatusCode()), resp.ElapsedTime())
	log.Debugf("receive http response: requestID=%s status=%d elapsed=%s", resp.RequestID(), resp.StatusCode(), resp.ElapsedTime())

	if resp.IsFail() {
		return nil, resp.ServiceError()
	}
	if err := resp.ParseJSONBody(req.result); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *APIClient) intercept(err error) error {
	c.mu.RLock()
	errInterceptors := c.errorInterceptors
	c.mu.RUnlock()
	for _, interceptor := range errInterceptors {
		if next := interceptor(err); next != nil {
			err = next
		}
	}
	return err
}
