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

	"github.com/jobpaste/jobpaste/pkg/app"
	"github.com/jobpaste/jobpaste/pkg/model"
)

type CompanyRouter struct {
	app  *app.App
	path string
	page http.HandlerFunc
}

func newCompanyRouter(a *app.App, path string, page http.HandlerFunc) *CompanyRouter {
	return &CompanyRouter{app: a, path: path, page: page}
}

func (cr *CompanyRouter) Name() string {
	return "CompanyRouter"
}

func (cr *CompanyRouter) AddRouter(r chi.Router) {
	guarded := r.With(RequireSession(cr.app, cr.path))
	r.Get(cr.path, cr.page)
	guarded.Post(cr.path, cr.createCompany)
	r.Get(cr.path+"/{id}", cr.page)
	guarded.Patch(cr.path+"/{id}", cr.updateCompany)
	guarded.Delete(cr.path+"/{id}", cr.deleteCompany)
}

func (cr *CompanyRouter) createCompany(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	payload := model.CompanyPayload{}
	if err := BindJSON(r, &payload); err != nil {
		RenderErrWithMessage(w, http.StatusBadRequest, ctx.RequestID, CodeMalformedJSON, err.Error())
		return
	}
	company, err := cr.app.Views.Companies.Create(r.Context(), &payload)
	if err != nil {
		RenderErr(w, ctx.RequestID, err, cr.app.Flash)
		return
	}
	Render(w, http.StatusCreated, ActionResponse{Flash: consumeFlash(cr.app.Flash), Data: company})
}

func (cr *CompanyRouter) updateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	payload := model.CompanyPayload{}
	if err := BindJSON(r, &payload); err != nil {
		RenderErrWithMessage(w, http.StatusBadRequest, ctx.RequestID, CodeMalformedJSON, err.Error())
		return
	}
	company, err := cr.app.Views.Companies.Update(r.Context(), chi.URLParam(r, "id"), &payload)
	if err != nil {
		RenderErr(w, ctx.RequestID, err, cr.app.Flash)
		return
	}
	Render(w, http.StatusOK, ActionResponse{Flash: consumeFlash(cr.app.Flash), Data: company})
}

func (cr *CompanyRouter) deleteCompany(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	if err := cr.app.Views.Companies.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		RenderErr(w, ctx.RequestID, err, cr.app.Flash)
		return
	}
	Render(w, http.StatusOK, ActionResponse{Flash: consumeFlash(cr.app.Flash)})
}
