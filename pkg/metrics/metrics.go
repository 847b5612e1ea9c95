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

package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	MetricAPIRequestsTotal   = "jobpaste_api_requests_total"
	MetricAPIRequestDuration = "jobpaste_api_request_duration_seconds"
	MetricNavigationsTotal   = "jobpaste_navigations_total"

	MethodLabel  = "method"
	StatusLabel  = "status"
	RouteLabel   = "route"
	OutcomeLabel = "outcome"

	// StatusNetwork labels requests that never got a response.
	StatusNetwork = "network"

	OutcomeProceed  = "proceed"
	OutcomeRedirect = "redirect"
	OutcomeFailed   = "failed"
)

var (
	registry     *prometheus.Registry
	registryOnce sync.Once

	apiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricAPIRequestsTotal,
			Help: "count of api requests by method and response status",
		},
		[]string{MethodLabel, StatusLabel},
	)
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricAPIRequestDuration,
			Help:    "latency of api requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{MethodLabel},
	)
	navigations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNavigationsTotal,
			Help: "count of router navigations by resolved route and outcome",
		},
		[]string{RouteLabel, OutcomeLabel},
	)
)

func Registry() *prometheus.Registry {
	registryOnce.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(apiRequests, apiRequestDuration, navigations)
		registry.MustRegister(prometheus.NewGoCollector())
	})
	return registry
}

func AddAPIRequestMetrics(method, status string, elapsed time.Duration) {
	apiRequests.With(prometheus.Labels{
		MethodLabel: method,
		StatusLabel: status,
	}).Inc()
	apiRequestDuration.With(prometheus.Labels{
		MethodLabel: method,
	}).Observe(elapsed.Seconds())
}

func AddNavigationMetrics(route, outcome string) {
	navigations.With(prometheus.Labels{
		RouteLabel:   route,
		OutcomeLabel: outcome,
	}).Inc()
}

// Handler exposes the jobpaste registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(
		Registry(),
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	)
}
