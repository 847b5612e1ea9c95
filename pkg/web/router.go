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

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/jobpaste/jobpaste/pkg/app"
	"github.com/jobpaste/jobpaste/pkg/metrics"
	"github.com/jobpaste/jobpaste/pkg/router"
)

type IRouter interface {
	Name() string
	AddRouter(r chi.Router)
}

func RegisterRouters(r *chi.Mux, a *app.App) error {
	r.Use(CheckRequestID)
	r.Use(AccessLog)
	r.Use(middleware.Recoverer)
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	pages := &PageRouter{app: a}
	routers := []IRouter{&SystemRouter{}, &FlashRouter{app: a}, &SessionRouter{app: a, page: pages.page}}
	for _, res := range []struct {
		name string
		new  func(path string) IRouter
	}{
		{router.RouteDashboardJob, func(path string) IRouter { return newJobRouter(a, path, pages.page) }},
		{router.RouteDashboardCompany, func(path string) IRouter { return newCompanyRouter(a, path, pages.page) }},
		{router.RouteDashboardCategory, func(path string) IRouter { return newCategoryRouter(a, path, pages.page) }},
	} {
		path, err := a.Router.PathOf(res.name, nil)
		if err != nil {
			return err
		}
		routers = append(routers, res.new(path))
	}
	// the page catch-all goes last
	routers = append(routers, pages)
	for _, ir := range routers {
		AddRouter(r, ir)
	}
	return nil
}

func AddRouter(r chi.Router, router IRouter) {
	log.Infof("Add router[%s]", router.Name())
	router.AddRouter(r)
}

// SystemRouter serves liveness and metrics.
type SystemRouter struct{}

func (sr *SystemRouter) Name() string {
	return "SystemRouter"
}

func (sr *SystemRouter) AddRouter(r chi.Router) {
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		Render(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())
}
