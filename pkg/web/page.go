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
	"context"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/jobpaste/jobpaste/pkg/app"
	"github.com/jobpaste/jobpaste/pkg/common/errcode"
	"github.com/jobpaste/jobpaste/pkg/router"
)

// PageRouter answers every GET that is not an api of the shell by navigating
// the route table.
type PageRouter struct {
	app *app.App
}

func (pr *PageRouter) Name() string {
	return "PageRouter"
}

func (pr *PageRouter) AddRouter(r chi.Router) {
	r.Get("/", pr.page)
	r.Get("/*", pr.page)
}

// page runs the navigation guard. A redirected navigation answers 302 to the
// final location; otherwise the page state is rendered and the flash consumed.
func (pr *PageRouter) page(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	nav, err := pr.app.Router.Push(r.URL.RequestURI())
	if err != nil {
		ctx.Logging().Errorf("navigate failed: %v", err)
		RenderErrWithMessage(w, http.StatusInternalServerError, ctx.RequestID, CodeNavigationError, errcode.MsgUnexpected)
		return
	}
	if nav.Redirected() {
		ctx.Logging().Debugf("navigation redirected to %s", nav.To.FullPath())
		http.Redirect(w, r, nav.To.FullPath(), http.StatusFound)
		return
	}

	status := http.StatusOK
	if nav.Name() == router.RouteNotFound {
		status = http.StatusNotFound
	}
	data, err := pr.load(r.Context(), nav.Name())
	if err != nil {
		ctx.Logging().Warnf("load page %s failed: %v", nav.Name(), err)
		status = HTTPStatusOf(err)
		data = nil
	}
	Render(w, status, Page{
		Title:    nav.Title,
		Route:    nav.Name(),
		FullPath: nav.To.FullPath(),
		Flash:    consumeFlash(pr.app.Flash),
		Data:     data,
	})
}

func (pr *PageRouter) load(ctx context.Context, name string) (interface{}, error) {
	views := pr.app.Views
	switch name {
	case router.RouteDashboardJob:
		return views.Jobs.Load(ctx)
	case router.RouteDashboardCompany:
		return views.Companies.List(ctx)
	case router.RouteDashboardCategory:
		return views.Categories.List(ctx)
	case router.RouteDashboard:
		return views.Dashboard.Summary(ctx)
	}
	return nil, nil
}
