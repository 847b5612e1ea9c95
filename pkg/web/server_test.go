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
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpaste/jobpaste/pkg/app"
	"github.com/jobpaste/jobpaste/pkg/common/config"
	"github.com/jobpaste/jobpaste/pkg/common/errcode"
	"github.com/jobpaste/jobpaste/pkg/router"
	"github.com/jobpaste/jobpaste/pkg/view"
)

func newFakeAPI(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"error":{"code":"INVALID_CREDENTIALS","message":"bad password"}}`)
			return
		}
		io.WriteString(w, `{"token":"tok-1"}`)
	})
	mux.HandleFunc("/api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"u1","email":"a@b.c"}`)
	})
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"id":"j2","name":"SRE","tier":2}`)
			return
		}
		io.WriteString(w, `[{"id":"j1","name":"Go developer","tier":1,"company_id":"c1"}]`)
	})
	mux.HandleFunc("/api/jobs/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/missing"):
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error":{"code":"JOB_NOT_FOUND","message":"no such job"}}`)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			io.WriteString(w, `{"id":"j1","name":"Senior Go developer","tier":1}`)
		}
	})
	mux.HandleFunc("/api/companies", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"c1","name":"Acme"}]`)
	})
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestServer(t *testing.T) (*Server, *app.App) {
	api := newFakeAPI(t)
	conf := config.Default()
	conf.API.BaseURL = api.URL + "/api"
	conf.Storage.Driver = config.StorageDriverMem
	a, err := app.New(conf)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	s, err := NewServer(a)
	require.NoError(t, err)
	return s, a
}

func do(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodePage(t *testing.T, rec *httptest.ResponseRecorder) Page {
	page := Page{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	return page
}

func TestServer_System(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderKeyRequestID))

	do(s, http.MethodGet, "/about", "")
	rec = do(s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jobpaste_navigations_total")
}

func TestServer_GuardRedirectsToLogin(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, http.MethodGet, "/dashboard/job", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?redirect=%2Fdashboard%2Fjob", rec.Header().Get("Location"))

	page := decodePage(t, do(s, http.MethodGet, rec.Header().Get("Location"), ""))
	assert.Equal(t, router.RouteLogin, page.Route)
	assert.Equal(t, "登入", page.Title)
	require.NotNil(t, page.Flash)
	assert.Equal(t, router.LoginRequiredMessage, page.Flash.Text)

	// the flash is shown once
	page = decodePage(t, do(s, http.MethodGet, "/login", ""))
	assert.Nil(t, page.Flash)
}

func TestServer_PublicPages(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		target    string
		wantCode  int
		wantRoute string
		wantTitle string
	}{
		{target: "/", wantCode: http.StatusOK, wantRoute: router.RouteHome, wantTitle: router.DefaultTitle},
		{target: "/about", wantCode: http.StatusOK, wantRoute: router.RouteAbout, wantTitle: "關於求職快貼"},
		{target: "/no/such/page", wantCode: http.StatusNotFound, wantRoute: router.RouteNotFound, wantTitle: router.DefaultTitle},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(s, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantCode, rec.Code)
			page := decodePage(t, rec)
			assert.Equal(t, tt.wantRoute, page.Route)
			assert.Equal(t, tt.wantTitle, page.Title)
		})
	}
}

func TestServer_LoginFlow(t *testing.T) {
	s, a := newTestServer(t)

	rec := do(s, http.MethodPost, "/login?redirect=/dashboard/company", `{"email":"a@b.c","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	errResp := ErrorResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, errcode.InvalidCredentials, errResp.ErrorCode)
	assert.Equal(t, "電子郵件或密碼錯誤", errResp.ErrorMessage)
	assert.False(t, a.Auth.IsLoggedIn())

	rec = do(s, http.MethodPost, "/login?redirect=/dashboard/company", `{"email":"a@b.c","password":"secret"}`)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/company", rec.Header().Get("Location"))
	assert.Equal(t, "tok-1", a.Auth.Token())

	page := decodePage(t, do(s, http.MethodGet, "/dashboard/company", ""))
	assert.Equal(t, router.RouteDashboardCompany, page.Route)
	require.NotNil(t, page.Flash)
	assert.Equal(t, view.MsgLoginSucceeded, page.Flash.Text)
	assert.NotNil(t, page.Data)

	// logged in users skip the home page, the landing route then picks its default tab
	rec = do(s, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard/job", rec.Header().Get("Location"))

	rec = do(s, http.MethodPost, "/logout", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.False(t, a.Auth.IsLoggedIn())
}

func TestServer_Signup(t *testing.T) {
	s, a := newTestServer(t)

	rec := do(s, http.MethodPost, "/signup", `{"email":"a@b.c","password":"secret"}`)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, router.LoginPath, rec.Header().Get("Location"))
	msg, ok := a.Flash.Peek()
	assert.True(t, ok)
	assert.Equal(t, view.MsgSignupSucceeded, msg.Text)

	rec = do(s, http.MethodPost, "/signup", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_PageWithUpstreamFailure(t *testing.T) {
	s, a := newTestServer(t)
	require.NoError(t, a.Auth.SetToken("tok-1"))

	rec := do(s, http.MethodGet, "/dashboard/category", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	page := decodePage(t, rec)
	assert.Equal(t, router.RouteDashboardCategory, page.Route)
	require.NotNil(t, page.Flash)
	assert.Equal(t, errcode.MsgNotFound, page.Flash.Text)
	assert.Nil(t, page.Data)
}

func TestServer_JobActions(t *testing.T) {
	s, a := newTestServer(t)

	rec := do(s, http.MethodPost, "/dashboard/job", `{"name":"SRE"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	errResp := ErrorResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, CodeLoginRequired, errResp.ErrorCode)
	assert.Equal(t, "/login?redirect=%2Fdashboard%2Fjob", errResp.Redirect)

	require.NoError(t, a.Auth.SetToken("tok-1"))

	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		wantCode  int
		wantFlash string
	}{
		{name: "create", method: http.MethodPost, target: "/dashboard/job", body: `{"name":"SRE","tier":2}`, wantCode: http.StatusCreated, wantFlash: view.MsgJobCreated},
		{name: "update", method: http.MethodPatch, target: "/dashboard/job/j1", body: `{"name":"Senior Go developer"}`, wantCode: http.StatusOK, wantFlash: view.MsgJobUpdated},
		{name: "delete", method: http.MethodDelete, target: "/dashboard/job/j1", wantCode: http.StatusOK, wantFlash: view.MsgJobDeleted},
		{name: "malformed body", method: http.MethodPost, target: "/dashboard/job", body: `{"name":`, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(s, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantFlash == "" {
				return
			}
			resp := ActionResponse{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Flash)
			assert.Equal(t, tt.wantFlash, resp.Flash.Text)
		})
	}

	rec = do(s, http.MethodDelete, "/dashboard/job/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	errResp = ErrorResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, errcode.JobNotFound, errResp.ErrorCode)
	assert.Equal(t, "找不到指定的職缺", errResp.ErrorMessage)
	_, ok := a.Flash.Peek()
	assert.False(t, ok)
}

func TestServer_JobBoardPage(t *testing.T) {
	s, a := newTestServer(t)
	require.NoError(t, a.Auth.SetToken("tok-1"))

	rec := do(s, http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard/job", rec.Header().Get("Location"))

	rec = do(s, http.MethodGet, "/dashboard/job", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"company_name":"Acme"`)
}
