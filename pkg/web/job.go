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
	"github.com/jobpaste/jobpaste/pkg/common/logger"
	"github.com/jobpaste/jobpaste/pkg/model"
)

type JobRouter struct {
	app  *app.App
	path string
	page http.HandlerFunc
}

func newJobRouter(a *app.App, path string, page http.HandlerFunc) *JobRouter {
	return &JobRouter{app: a, path: path, page: page}
}

func (jr *JobRouter) Name() string {
	return "JobRouter"
}

func (jr *JobRouter) AddRouter(r chi.Router) {
	guarded := r.With(RequireSession(jr.app, jr.path))
	r.Get(jr.path, jr.page)
	guarded.Post(jr.path, jr.createJob)
	r.Get(jr.path+"/{id}", jr.page)
	guarded.Patch(jr.path+"/{id}", jr.updateJob)
	guarded.Delete(jr.path+"/{id}", jr.deleteJob)
}

func (jr *JobRouter) createJob(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	payload := model.JobPayload{}
	if err := BindJSON(r, &payload); err != nil {
		ctx.Logging().Errorf("bind job body failed: %v", err)
		RenderErrWithMessage(w, http.StatusBadRequest, ctx.RequestID, CodeMalformedJSON, err.Error())
		return
	}
	job, err := jr.app.Views.Jobs.Create(r.Context(), &payload)
	if err != nil {
		RenderErr(w, ctx.RequestID, err, jr.app.Flash)
		return
	}
	logger.LoggerForResource("job", job.ID).Info("job created")
	Render(w, http.StatusCreated, ActionResponse{Flash: consumeFlash(jr.app.Flash), Data: job})
}

func (jr *JobRouter) updateJob(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	id := chi.URLParam(r, "id")
	payload := model.JobPayload{}
	if err := BindJSON(r, &payload); err != nil {
		ctx.Logging().Errorf("bind job body failed: %v", err)
		RenderErrWithMessage(w, http.StatusBadRequest, ctx.RequestID, CodeMalformedJSON, err.Error())
		return
	}
	job, err := jr.app.Views.Jobs.Update(r.Context(), id, &payload)
	if err != nil {
		RenderErr(w, ctx.RequestID, err, jr.app.Flash)
		return
	}
	Render(w, http.StatusOK, ActionResponse{Flash: consumeFlash(jr.app.Flash), Data: job})
}

func (jr *JobRouter) deleteJob(w http.ResponseWriter, r *http.Request) {
	ctx := GetRequestContext(r)
	id := chi.URLParam(r, "id")
	if err := jr.app.Views.Jobs.Delete(r.Context(), id); err != nil {
		RenderErr(w, ctx.RequestID, err, jr.app.Flash)
		return
	}
	logger.LoggerForResource("job", id).Info("job deleted")
	Render(w, http.StatusOK, ActionResponse{Flash: consumeFlash(jr.app.Flash)})
}
