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
	"github.com/jobpaste/jobpaste/pkg/router"
)

// SessionRouter handles the login, signup and logout forms. A success
// answers 303 to the next page, whose GET shows the flash.
type SessionRouter struct {
	app  *app.App
	page http.HandlerFunc
}

func (sr *SessionRouter) Name() string {
	return "SessionRouter"
}

func (sr *SessionRouter) AddRouter(r chi.Router) {
	r.Get(router.LoginPath, sr.page)
	r.Post(router.LoginPath, sr.login)
	r.Get("/signup", sr.page)
	r.Post("/signup", sr.signup)
	r.Post("/logout", sr.logout)
}

func (sr *SessionRouter) login(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	request := model.LoginRequest{}
	if err := BindJSON(r, &request); err != nil {
		ctx.Logging().Errorf("bind login body failed: %v", err)
		RenderErrWithMessage(w, http.StatusBadRequest, ctx.RequestID, CodeMalformedJSON, err.Error())
		return
	}
	target, err := sr.app.Views.Auth.Login(r.Context(), request.Email, request.Password, r.URL.Query().Get(router.RedirectQueryKey))
	if err != nil {
		RenderErr(w, ctx.RequestID, err, sr.app.Flash)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (sr *SessionRouter) signup(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	request := model.SignupRequest{}
	if err := BindJSON(r, &request); err != nil {
		ctx.Logging().Errorf("bind signup body failed: %v", err)
		RenderErrWithMessage(w, http.StatusBadRequest, ctx.RequestID, CodeMalformedJSON, err.Error())
		return
	}
	if _, err := sr.app.Views.Auth.Signup(r.Context(), &request); err != nil {
		RenderErr(w, ctx.RequestID, err, sr.app.Flash)
		return
	}
	http.Redirect(w, r, router.LoginPath, http.StatusSeeOther)
}

func (sr *SessionRouter) logout(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	if err := sr.app.Views.Auth.Logout(); err != nil {
		ctx.Logging().Errorf("logout failed: %v", err)
		RenderErr(w, ctx.RequestID, err, sr.app.Flash)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
