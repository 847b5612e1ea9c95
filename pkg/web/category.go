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

type CategoryRouter struct {
	app  *app.App
	path string
	page http.HandlerFunc
}

func newCategoryRouter(a *app.App, path string, page http.HandlerFunc) *CategoryRouter {
	return &CategoryRouter{app: a, path: path, page: page}
}

func (kr *CategoryRouter) Name() string {
	return "CategoryRouter"
}

func (kr *CategoryRouter) AddRouter(r chi.Router) {
	guarded := r.With(RequireSession(kr.app, kr.path))
	r.Get(kr.path, kr.page)
	guarded.Post(kr.path, kr.createCategory)
	r.Get(kr.path+"/{id}", kr.page)
	guarded.Patch(kr.path+"/{id}", kr.updateCategory)
	guarded.Delete(kr.path+"/{id}", kr.deleteCategory)
}

func (kr *CategoryRouter) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	payload := model.CategoryPayload{}
	if err := BindJSON(r, &payload); err != nil {
		RenderErrWithMessage(w, http.StatusBadRequest, ctx.RequestID, CodeMalformedJSON, err.Error())
		return
	}
	category, err := kr.app.Views.Categories.Create(r.Context(), &payload)
	if err != nil {
		RenderErr(w, ctx.RequestID, err, kr.app.Flash)
		return
	}
	Render(w, http.StatusCreated, ActionResponse{Flash: consumeFlash(kr.app.Flash), Data: category})
}

func (kr *CategoryRouter) updateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	payload := model.CategoryPayload{}
	if err := BindJSON(r, &payload); err != nil {
		RenderErrWithMessage(w, http.StatusBadRequest, ctx.RequestID, CodeMalformedJSON, err.Error())
		return
	}
	category, err := kr.app.Views.Categories.Update(r.Context(), chi.URLParam(r, "id"), &payload)
	if err != nil {
		RenderErr(w, ctx.RequestID, err, kr.app.Flash)
		return
	}
	Render(w, http.StatusOK, ActionResponse{Flash: consumeFlash(kr.app.Flash), Data: category})
}

func (kr *CategoryRouter) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	if err := kr.app.Views.Categories.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		RenderErr(w, ctx.RequestID, err, kr.app.Flash)
		return
	}
	Render(w, http.StatusOK, ActionResponse{Flash: consumeFlash(kr.app.Flash)})
}
