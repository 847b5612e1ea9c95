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

package router

import (
	"fmt"

	"github.com/jobpaste/jobpaste/pkg/common/config"
)

const (
	RouteHome              = "home"
	RouteDashboard         = "dashboard"
	RouteDashboardJob      = "DashboardJob"
	RouteDashboardCompany  = "DashboardCompany"
	RouteDashboardCategory = "DashboardCategory"
	RouteAbout             = "about"
	RouteLogin             = "login"
	RouteSignup            = "signup"
	RouteNotFound          = "not-found"

	LoginPath        = "/login"
	RedirectQueryKey = "redirect"
	CatchAllPath     = "/:pathMatch(.*)*"

	DefaultTitle         = "躺卷｜人生財務規劃輕鬆算"
	LoginRequiredMessage = "請登入已前往指定頁面"

	NestedLandingPath = "/dashboard"
	FlatLandingPath   = "/jobs"
)

type Meta struct {
	Title        string `json:"title,omitempty"`
	RequiresAuth bool   `json:"requiresAuth,omitempty"`
}

// merge lays child over parent: a set title replaces the parent's, and a
// protected parent keeps its children protected.
func (m Meta) merge(child Meta) Meta {
	merged := m
	if child.Title != "" {
		merged.Title = child.Title
	}
	merged.RequiresAuth = m.RequiresAuth || child.RequiresAuth
	return merged
}

// Route is one entry of the route table. A relative Path is joined onto the
// parent's path, and an empty one matches the parent path itself.
type Route struct {
	Path     string
	Name     string
	Redirect string
	Meta     Meta
	Children []Route
}

func NestedRoutes() []Route {
	return []Route{
		{Path: "/", Name: RouteHome},
		{
			Path: "/dashboard",
			Name: RouteDashboard,
			Meta: Meta{Title: "關於求職快貼", RequiresAuth: true},
			Children: []Route{
				{Path: "", Redirect: "/dashboard/job"},
				{Path: "job", Name: RouteDashboardJob},
				{Path: "company", Name: RouteDashboardCompany},
				{Path: "category", Name: RouteDashboardCategory},
			},
		},
		{Path: "/about", Name: RouteAbout, Meta: Meta{Title: "關於求職快貼"}},
		{Path: LoginPath, Name: RouteLogin, Meta: Meta{Title: "登入"}},
		{Path: "/signup", Name: RouteSignup, Meta: Meta{Title: "註冊"}},
		{Path: CatchAllPath, Name: RouteNotFound},
	}
}

// FlatRoutes exposes the dashboard tabs as top level routes. /dashboard is
// kept as a redirect so that old links still land somewhere.
func FlatRoutes() []Route {
	return []Route{
		{Path: "/", Name: RouteHome},
		{Path: "/dashboard", Redirect: FlatLandingPath},
		{Path: "/jobs", Name: RouteDashboardJob, Meta: Meta{Title: "職缺", RequiresAuth: true}},
		{Path: "/companies", Name: RouteDashboardCompany, Meta: Meta{Title: "公司", RequiresAuth: true}},
		{Path: "/categories", Name: RouteDashboardCategory, Meta: Meta{Title: "分類", RequiresAuth: true}},
		{Path: "/about", Name: RouteAbout, Meta: Meta{Title: "關於求職快貼"}},
		{Path: LoginPath, Name: RouteLogin, Meta: Meta{Title: "登入"}},
		{Path: "/signup", Name: RouteSignup, Meta: Meta{Title: "註冊"}},
		{Path: CatchAllPath, Name: RouteNotFound},
	}
}

// RoutesForLayout returns the table and the default landing path of layout.
func RoutesForLayout(layout string) ([]Route, string, error) {
	switch layout {
	case config.LayoutNested, "":
		return NestedRoutes(), NestedLandingPath, nil
	case config.LayoutFlat:
		return FlatRoutes(), FlatLandingPath, nil
	default:
		return nil, "", fmt.Errorf("router layout[%s] not supported", layout)
	}
}
